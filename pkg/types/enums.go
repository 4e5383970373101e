package types

// Severity grades an incident or an aggregated report status.
type Severity string

// Severity values, ordered from worst to best.
const (
	SeverityUrgent         Severity = "URGENT"
	SeverityNeedsAttention Severity = "NEEDS_ATTENTION"
	SeverityAllGood        Severity = "ALL_GOOD"
)

// IncidentType identifies the class of anomaly a detector found.
type IncidentType string

// IncidentType values enumerate the detectable anomaly classes.
const (
	IncidentMissingFile     IncidentType = "Missing File"
	IncidentDuplicatedFile  IncidentType = "Duplicated File"
	IncidentUnexpectedEmpty IncidentType = "Unexpected Empty File"
	IncidentVolumeVariation IncidentType = "Unexpected Volume Variation"
	IncidentLateUpload      IncidentType = "File Upload After Schedule"
	IncidentPreviousFile    IncidentType = "Upload of Previous File"
)

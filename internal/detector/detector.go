// Package detector implements the anomaly detectors that audit a day's file
// batch against a source profile.
//
// Detectors are stateless and independent: each consumes the same (batch,
// profile, evaluation date) input and produces zero or more incidents. The
// engine runs every detector and concatenates results; suite order only
// affects presentation order in the final report.
package detector

import (
	"time"

	"github.com/batchwatch/batchwatch/pkg/types"
)

// Detector evaluates one class of anomaly against a day's file batch.
type Detector interface {
	// Name identifies the detector in logs and traces.
	Name() string

	// Detect returns the incidents found for the given batch. It is a pure
	// function of its inputs: no I/O, no wall clock, no shared state.
	Detect(files []types.FileRecord, profile *types.SourceProfile, day time.Time) []types.Incident
}

// Suite returns the full detector suite in presentation order.
func Suite() []Detector {
	return []Detector{
		MissingFile{},
		DuplicatedFailed{},
		UnexpectedEmpty{},
		VolumeVariation{},
		LateUpload{},
		PreviousFile{},
	}
}

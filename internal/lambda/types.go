package lambda

import "github.com/batchwatch/batchwatch/pkg/types"

// AuditorRequest is the input to the auditor Lambda. Date is the audit day
// in YYYY-MM-DD; an empty date means the current UTC day.
type AuditorRequest struct {
	Date string `json:"date,omitempty"`
}

// AuditorResponse summarizes the finished run for the invoker; the full
// report lives in the table and on the queue.
type AuditorResponse struct {
	ReportID  string         `json:"reportId"`
	Date      string         `json:"date"`
	Status    types.Severity `json:"status"`
	Sources   int            `json:"sources"`
	Incidents int            `json:"incidents"`
}

// Package metrics exposes runtime counters via expvar.
package metrics

import "expvar"

var (
	RunsTotal        = expvar.NewInt("runs_total")
	RunErrors        = expvar.NewInt("run_errors")
	SourcesAudited   = expvar.NewInt("sources_audited")
	SourcesSkipped   = expvar.NewInt("sources_skipped_no_profile")
	IncidentsTotal   = expvar.NewInt("incidents_total")
	ReportsPublished = expvar.NewInt("reports_published")
	PublishFailures  = expvar.NewInt("publish_failures")
)

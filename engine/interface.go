package engine

import (
	"context"
	"time"

	"github.com/mpetrache/psi-collector/common"
)

// Requester defines the interface for fetching one raw audit report from the
// remote audit API
type Requester interface {
	// RequestAudit performs the synchronous audit call for the given URL and
	// returns the raw JSON report body. Non-2xx responses and transport
	// failures return errors; there is no local URL validation and no retry.
	RequestAudit(ctx context.Context, testURL string) (common.RawReport, error)

	IsInterfaceNil() bool
}

// Extractor defines the interface for flattening a raw report into a metrics row
type Extractor interface {
	// Extract pulls the fixed metric set out of the report. Any missing or
	// non-numeric field fails the whole extraction.
	Extract(report common.RawReport) (common.MetricsRow, error)

	IsInterfaceNil() bool
}

// Inserter defines the interface for appending one metrics row to the warehouse
type Inserter interface {
	InsertRow(ctx context.Context, row *common.MetricsRow) error

	IsInterfaceNil() bool
}

// StatusMetricsHandler defines the pipeline counters the engine feeds
type StatusMetricsHandler interface {
	IncAuditsSubmitted()
	IncAuditFailure(stage string)
	IncRowsInserted()
	ObserveAuditDuration(d time.Duration)

	IsInterfaceNil() bool
}

package api

import (
	"context"
	"net/http"
)

// Engine defines the interface driving one submitted URL through the audit pipeline
type Engine interface {
	// RunAudit synchronously requests the audit, extracts the metrics row and
	// appends it to the warehouse. Any stage failure returns an error.
	RunAudit(ctx context.Context, testURL string) error

	IsInterfaceNil() bool
}

// StatusMetricsHandler defines the part of monitoring exposed over HTTP
type StatusMetricsHandler interface {
	Handler() http.Handler

	IsInterfaceNil() bool
}

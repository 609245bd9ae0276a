package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/mpetrache/psi-collector/config"
	"github.com/mpetrache/psi-collector/monitoring"
)

var log = logger.GetOrCreate("engine")

// auditEngine drives one submitted URL through request, extraction and insert
type auditEngine struct {
	config    config.Config
	requester Requester
	extractor Extractor
	inserter  Inserter
	metrics   StatusMetricsHandler
}

// NewAuditEngine creates a new engine instance
func NewAuditEngine(
	cfg config.Config,
	requester Requester,
	extractor Extractor,
	inserter Inserter,
	metrics StatusMetricsHandler,
) (*auditEngine, error) {
	if check.IfNil(requester) {
		return nil, errors.New("nil requester")
	}
	if check.IfNil(extractor) {
		return nil, errors.New("nil extractor")
	}
	if check.IfNil(inserter) {
		return nil, errors.New("nil inserter")
	}
	if check.IfNil(metrics) {
		return nil, errors.New("nil status metrics")
	}

	return &auditEngine{
		config:    cfg,
		requester: requester,
		extractor: extractor,
		inserter:  inserter,
		metrics:   metrics,
	}, nil
}

// RunAudit pushes one test URL through the whole pipeline, synchronously.
// Every stage failure propagates to the caller; nothing is retried and no
// partial result survives a failed stage.
func (e *auditEngine) RunAudit(ctx context.Context, testURL string) error {
	log.Debug("running audit", "url", testURL)

	e.metrics.IncAuditsSubmitted()
	startTime := time.Now()
	defer func() {
		e.metrics.ObserveAuditDuration(time.Since(startTime))
	}()

	report, err := e.requester.RequestAudit(ctx, testURL)
	if err != nil {
		e.metrics.IncAuditFailure(monitoring.StageRequest)
		return fmt.Errorf("audit request failed: %w", err)
	}

	row, err := e.extractor.Extract(report)
	if err != nil {
		e.metrics.IncAuditFailure(monitoring.StageExtract)
		return fmt.Errorf("audit extraction failed: %w", err)
	}

	insertTimeout := time.Duration(e.config.Warehouse.InsertTimeoutInSeconds) * time.Second
	insertCtx, cancelInsert := context.WithTimeout(ctx, insertTimeout)
	defer cancelInsert()

	err = e.inserter.InsertRow(insertCtx, &row)
	if err != nil {
		e.metrics.IncAuditFailure(monitoring.StageInsert)
		return fmt.Errorf("row insert failed: %w", err)
	}

	e.metrics.IncRowsInserted()
	log.Debug("audit stored", "url", row.URL, "date", row.Date.String())

	return nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (e *auditEngine) IsInterfaceNil() bool {
	return e == nil
}

package testsCommon

import "time"

// StatusMetricsStub -
type StatusMetricsStub struct {
	IncAuditsSubmittedHandler   func()
	IncAuditFailureHandler      func(stage string)
	IncRowsInsertedHandler      func()
	ObserveAuditDurationHandler func(d time.Duration)
}

// IncAuditsSubmitted -
func (stub *StatusMetricsStub) IncAuditsSubmitted() {
	if stub.IncAuditsSubmittedHandler != nil {
		stub.IncAuditsSubmittedHandler()
	}
}

// IncAuditFailure -
func (stub *StatusMetricsStub) IncAuditFailure(stage string) {
	if stub.IncAuditFailureHandler != nil {
		stub.IncAuditFailureHandler(stage)
	}
}

// IncRowsInserted -
func (stub *StatusMetricsStub) IncRowsInserted() {
	if stub.IncRowsInsertedHandler != nil {
		stub.IncRowsInsertedHandler()
	}
}

// ObserveAuditDuration -
func (stub *StatusMetricsStub) ObserveAuditDuration(d time.Duration) {
	if stub.ObserveAuditDurationHandler != nil {
		stub.ObserveAuditDurationHandler(d)
	}
}

// IsInterfaceNil -
func (stub *StatusMetricsStub) IsInterfaceNil() bool {
	return stub == nil
}

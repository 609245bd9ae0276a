package testsCommon

import "context"

// EngineStub -
type EngineStub struct {
	RunAuditHandler func(ctx context.Context, testURL string) error
}

// RunAudit -
func (stub *EngineStub) RunAudit(ctx context.Context, testURL string) error {
	if stub.RunAuditHandler != nil {
		return stub.RunAuditHandler(ctx, testURL)
	}

	return nil
}

// IsInterfaceNil -
func (stub *EngineStub) IsInterfaceNil() bool {
	return stub == nil
}

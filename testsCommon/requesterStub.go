package testsCommon

import (
	"context"

	"github.com/mpetrache/psi-collector/common"
)

// RequesterStub -
type RequesterStub struct {
	RequestAuditHandler func(ctx context.Context, testURL string) (common.RawReport, error)
}

// RequestAudit -
func (stub *RequesterStub) RequestAudit(ctx context.Context, testURL string) (common.RawReport, error) {
	if stub.RequestAuditHandler != nil {
		return stub.RequestAuditHandler(ctx, testURL)
	}

	return nil, nil
}

// IsInterfaceNil -
func (stub *RequesterStub) IsInterfaceNil() bool {
	return stub == nil
}

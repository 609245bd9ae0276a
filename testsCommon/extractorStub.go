package testsCommon

import (
	"github.com/mpetrache/psi-collector/common"
)

// ExtractorStub -
type ExtractorStub struct {
	ExtractHandler func(report common.RawReport) (common.MetricsRow, error)
}

// Extract -
func (stub *ExtractorStub) Extract(report common.RawReport) (common.MetricsRow, error) {
	if stub.ExtractHandler != nil {
		return stub.ExtractHandler(report)
	}

	return common.MetricsRow{}, nil
}

// IsInterfaceNil -
func (stub *ExtractorStub) IsInterfaceNil() bool {
	return stub == nil
}

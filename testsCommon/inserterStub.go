package testsCommon

import (
	"context"
	"sync"

	"github.com/mpetrache/psi-collector/common"
)

// InserterStub -
type InserterStub struct {
	InsertRowHandler func(ctx context.Context, row *common.MetricsRow) error

	mut          sync.Mutex
	insertedRows []common.MetricsRow
}

// InsertRow -
func (stub *InserterStub) InsertRow(ctx context.Context, row *common.MetricsRow) error {
	if stub.InsertRowHandler != nil {
		return stub.InsertRowHandler(ctx, row)
	}

	stub.mut.Lock()
	stub.insertedRows = append(stub.insertedRows, *row)
	stub.mut.Unlock()

	return nil
}

// InsertedRows returns a copy of the rows recorded by the default handler
func (stub *InserterStub) InsertedRows() []common.MetricsRow {
	stub.mut.Lock()
	defer stub.mut.Unlock()

	rows := make([]common.MetricsRow, len(stub.insertedRows))
	copy(rows, stub.insertedRows)

	return rows
}

// IsInterfaceNil -
func (stub *InserterStub) IsInterfaceNil() bool {
	return stub == nil
}

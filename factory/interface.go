package factory

import (
	"context"

	"github.com/mpetrache/psi-collector/common"
)

// Server defines the operation of an entity able to serve requests
type Server interface {
	Start()
	Address() string
	Close() error
}

// Store defines the interface for appending metric rows to the warehouse
type Store interface {
	InsertRow(ctx context.Context, row *common.MetricsRow) error
	Close() error
	IsInterfaceNil() bool
}

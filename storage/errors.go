package storage

import (
	"errors"
	"fmt"
)

var (
	errEmptyProjectID = errors.New("empty project ID")
	errNilRow         = errors.New("nil metrics row")
	errRowRejected    = errors.New("row rejected")
)

type errInvalidTableRef string

func (e errInvalidTableRef) Error() string {
	return fmt.Sprintf("invalid table reference '%s', expected <dataset>.<table>", string(e))
}

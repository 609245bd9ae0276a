package requester

import "fmt"

type errAuditRejected struct {
	statusCode int
	detail     string
}

func (e errAuditRejected) Error() string {
	return fmt.Sprintf("audit API error %d: %s", e.statusCode, e.detail)
}

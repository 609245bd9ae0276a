package extractor

import "errors"

var errEmptyReport = errors.New("empty audit report")

type errMissingField string

func (e errMissingField) Error() string {
	return "field not found in audit report: " + string(e)
}

type errNotANumber string

func (e errNotANumber) Error() string {
	return "field is not numeric in audit report: " + string(e)
}

package extractor

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mpetrache/psi-collector/common"
)

const (
	timestampPath = "analysisUTCTimestamp"
	finalURLPath  = "lighthouseResult.finalUrl"
	auditsPath    = "lighthouseResult.audits"
)

type metricsExtractor struct{}

// NewMetricsExtractor creates a new metrics extractor
func NewMetricsExtractor() *metricsExtractor {
	return &metricsExtractor{}
}

// Extract pulls the fixed set of audit metrics out of a raw report, along
// with the analysis timestamp and the final URL. Any missing or non-numeric
// field fails the whole extraction: no partial rows, no default values.
func (e *metricsExtractor) Extract(report common.RawReport) (common.MetricsRow, error) {
	if len(report) == 0 {
		return common.MetricsRow{}, errEmptyReport
	}

	timestamp := gjson.GetBytes(report, timestampPath)
	if !timestamp.Exists() {
		return common.MetricsRow{}, errMissingField(timestampPath)
	}

	date, err := time.Parse(time.RFC3339Nano, timestamp.String())
	if err != nil {
		return common.MetricsRow{}, fmt.Errorf("failed to parse analysis timestamp: %w", err)
	}

	finalURL := gjson.GetBytes(report, finalURLPath)
	if !finalURL.Exists() {
		return common.MetricsRow{}, errMissingField(finalURLPath)
	}

	row := common.MetricsRow{
		Date: date,
		URL:  finalURL.String(),
	}

	// Static remap table: audit identifier on the wire -> row field. The
	// destination column names are the bigquery tags on common.MetricsRow.
	audits := []struct {
		id  string
		dst *float64
	}{
		{"speed-index", &row.SpeedIndex},
		{"first-contentful-paint", &row.FirstContentfulPaint},
		{"first-meaningful-paint", &row.FirstMeaningfulPaint},
		{"server-response-time", &row.ServerResponseTime},
		{"network-server-latency", &row.NetworkServerLatency},
		{"cumulative-layout-shift", &row.CumulativeLayoutShift},
		{"interactive", &row.Interactive},
		{"largest-contentful-paint", &row.LargestContentfulPaint},
		{"total-blocking-time", &row.TotalBlockingTime},
		{"first-cpu-idle", &row.FirstCPUIdle},
		{"max-potential-fid", &row.MaxPotentialFID},
		{"total-byte-weight", &row.TotalByteWeight},
		{"estimated-input-latency", &row.EstimatedInputLatency},
	}

	for _, audit := range audits {
		path := auditsPath + "." + audit.id + ".numericValue"

		value := gjson.GetBytes(report, path)
		if !value.Exists() {
			return common.MetricsRow{}, errMissingField(path)
		}
		if value.Type != gjson.Number {
			return common.MetricsRow{}, errNotANumber(path)
		}

		*audit.dst = value.Num
	}

	return row, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (e *metricsExtractor) IsInterfaceNil() bool {
	return e == nil
}

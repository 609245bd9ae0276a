package common

import "time"

// RawReport holds the unparsed JSON body of one PageSpeed Insights audit.
// It is transient: the extractor consumes it and the bytes are discarded.
type RawReport []byte

// MetricsRow is one flat record appended to the analytics table, corresponding
// to one audit. The bigquery tags are the destination column names; the field
// set is closed and rows are immutable once constructed.
type MetricsRow struct {
	Date                   time.Time `bigquery:"date"`
	URL                    string    `bigquery:"url"`
	SpeedIndex             float64   `bigquery:"speed_index"`
	FirstContentfulPaint   float64   `bigquery:"first_contentful_paint"`
	FirstMeaningfulPaint   float64   `bigquery:"first_meaningful_paint"`
	ServerResponseTime     float64   `bigquery:"server_response_time"`
	NetworkServerLatency   float64   `bigquery:"network_server_latency"`
	CumulativeLayoutShift  float64   `bigquery:"cumulative_layout_shift"`
	Interactive            float64   `bigquery:"interactive"`
	LargestContentfulPaint float64   `bigquery:"largest_contentful_paint"`
	TotalBlockingTime      float64   `bigquery:"total_blocking_time"`
	FirstCPUIdle           float64   `bigquery:"first_cpu_idle"`
	MaxPotentialFID        float64   `bigquery:"max_potential_fid"`
	TotalByteWeight        float64   `bigquery:"total_byte_weight"`
	EstimatedInputLatency  float64   `bigquery:"estimated_input_latency"`
}

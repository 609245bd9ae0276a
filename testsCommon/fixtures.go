package testsCommon

import "encoding/json"

// AuditIDs lists the thirteen audit identifiers the extractor consumes
var AuditIDs = []string{
	"speed-index",
	"first-contentful-paint",
	"first-meaningful-paint",
	"server-response-time",
	"network-server-latency",
	"cumulative-layout-shift",
	"interactive",
	"largest-contentful-paint",
	"total-blocking-time",
	"first-cpu-idle",
	"max-potential-fid",
	"total-byte-weight",
	"estimated-input-latency",
}

// AuditValues returns a distinct numeric value for each audit identifier
func AuditValues() map[string]float64 {
	values := make(map[string]float64, len(AuditIDs))
	for i, id := range AuditIDs {
		values[id] = 1000 + float64(i)*11.5
	}

	return values
}

// CompleteAuditReport builds a well-formed PSI report body containing all the
// audits the extractor consumes
func CompleteAuditReport(timestamp string, finalURL string) []byte {
	return AuditReportWithout("", timestamp, finalURL)
}

// AuditReportWithout builds a PSI report body missing the given audit identifier
func AuditReportWithout(missingID string, timestamp string, finalURL string) []byte {
	audits := make(map[string]interface{})
	for id, value := range AuditValues() {
		if id == missingID {
			continue
		}

		audits[id] = map[string]interface{}{
			"id":           id,
			"title":        id,
			"numericValue": value,
		}
	}

	report := map[string]interface{}{
		"captchaResult":        "CAPTCHA_NOT_NEEDED",
		"kind":                 "pagespeedonline#result",
		"id":                   finalURL,
		"analysisUTCTimestamp": timestamp,
		"lighthouseResult": map[string]interface{}{
			"requestedUrl": finalURL,
			"finalUrl":     finalURL,
			"audits":       audits,
		},
	}

	body, _ := json.Marshal(report)

	return body
}

package requester

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/tidwall/gjson"

	"github.com/mpetrache/psi-collector/common"
	"github.com/mpetrache/psi-collector/config"
)

const errorDetailPath = "error.message"

var log = logger.GetOrCreate("requester")

type psiRequester struct {
	endpoint string
	category string
	strategy string
	apiKey   string
	client   *http.Client
}

// NewPSIRequester creates a new PageSpeed Insights audit requester. The
// category and strategy profile are fixed at construction time.
func NewPSIRequester(cfg config.PageSpeedConfig, apiKey string) *psiRequester {
	return &psiRequester{
		endpoint: cfg.Endpoint,
		category: cfg.Category,
		strategy: cfg.Strategy,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutInSeconds) * time.Second,
		},
	}
}

// RequestAudit submits a synchronous audit request for the given URL and
// returns the raw report. The URL is not validated locally, the remote API is
// the validator. Remote rejections are logged with their status code and
// error detail and returned as typed errors.
func (r *psiRequester) RequestAudit(ctx context.Context, testURL string) (common.RawReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.auditURL(testURL), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error requesting audit: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := errorDetail(body)
		log.Error("audit API call failed", "status", resp.StatusCode, "detail", detail)

		return nil, errAuditRejected{statusCode: resp.StatusCode, detail: detail}
	}

	return body, nil
}

func (r *psiRequester) auditURL(testURL string) string {
	query := url.Values{}
	query.Set("url", testURL)
	query.Set("category", r.category)
	query.Set("strategy", r.strategy)
	if len(r.apiKey) > 0 {
		query.Set("key", r.apiKey)
	}

	return r.endpoint + "?" + query.Encode()
}

// errorDetail pulls the error message out of a PSI error body
func errorDetail(body []byte) string {
	detail := gjson.GetBytes(body, errorDetailPath)
	if detail.Exists() {
		return detail.String()
	}

	return "no error detail in response"
}

// IsInterfaceNil returns true if the value under the interface is nil
func (r *psiRequester) IsInterfaceNil() bool {
	return r == nil
}

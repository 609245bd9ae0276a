package requester

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrache/psi-collector/config"
	"github.com/mpetrache/psi-collector/testsCommon"
)

const productionEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

func createTestPageSpeedConfig(endpoint string) config.PageSpeedConfig {
	return config.PageSpeedConfig{
		Endpoint:         endpoint,
		Category:         "PERFORMANCE",
		Strategy:         "MOBILE",
		TimeoutInSeconds: 5,
	}
}

func TestPSIRequester_RequestAudit(t *testing.T) {
	t.Run("should pass the audit parameters and return the raw report", func(t *testing.T) {
		expectedReport := testsCommon.CompleteAuditReport("2022-05-01T12:34:56.789012Z", "https://example.com/")

		req := NewPSIRequester(createTestPageSpeedConfig(productionEndpoint), "test-api-key")
		httpmock.ActivateNonDefault(req.client)
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder(http.MethodGet, productionEndpoint,
			func(request *http.Request) (*http.Response, error) {
				query := request.URL.Query()
				assert.Equal(t, "https://example.com", query.Get("url"))
				assert.Equal(t, "PERFORMANCE", query.Get("category"))
				assert.Equal(t, "MOBILE", query.Get("strategy"))
				assert.Equal(t, "test-api-key", query.Get("key"))

				return httpmock.NewBytesResponse(http.StatusOK, expectedReport), nil
			})

		report, err := req.RequestAudit(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, expectedReport, []byte(report))
	})
	t.Run("should omit the key parameter when no api key is configured", func(t *testing.T) {
		req := NewPSIRequester(createTestPageSpeedConfig(productionEndpoint), "")
		httpmock.ActivateNonDefault(req.client)
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder(http.MethodGet, productionEndpoint,
			func(request *http.Request) (*http.Response, error) {
				assert.False(t, request.URL.Query().Has("key"))

				return httpmock.NewStringResponse(http.StatusOK, "{}"), nil
			})

		_, err := req.RequestAudit(context.Background(), "https://example.com")
		require.NoError(t, err)
	})
	t.Run("api rejection should surface the status and error detail", func(t *testing.T) {
		req := NewPSIRequester(createTestPageSpeedConfig(productionEndpoint), "")
		httpmock.ActivateNonDefault(req.client)
		defer httpmock.DeactivateAndReset()

		errorBody := `{"error": {"code": 400, "message": "Invalid value 'not-an-url'"}}`
		httpmock.RegisterResponder(http.MethodGet, productionEndpoint,
			httpmock.NewStringResponder(http.StatusBadRequest, errorBody))

		report, err := req.RequestAudit(context.Background(), "not-an-url")
		assert.Nil(t, report)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "audit API error 400")
		assert.Contains(t, err.Error(), "Invalid value 'not-an-url'")
	})
	t.Run("api rejection without a JSON body should still fail", func(t *testing.T) {
		req := NewPSIRequester(createTestPageSpeedConfig(productionEndpoint), "")
		httpmock.ActivateNonDefault(req.client)
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder(http.MethodGet, productionEndpoint,
			httpmock.NewStringResponder(http.StatusInternalServerError, "backend exploded"))

		report, err := req.RequestAudit(context.Background(), "https://example.com")
		assert.Nil(t, report)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "audit API error 500")
		assert.Contains(t, err.Error(), "no error detail in response")
	})
	t.Run("network error should propagate wrapped", func(t *testing.T) {
		unreachableServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		unreachableServer.Close()

		req := NewPSIRequester(createTestPageSpeedConfig(unreachableServer.URL), "")

		report, err := req.RequestAudit(context.Background(), "https://example.com")
		assert.Nil(t, report)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network error requesting audit")
	})
	t.Run("should work against a live test server", func(t *testing.T) {
		expectedReport := testsCommon.CompleteAuditReport("2022-05-01T12:34:56.789012Z", "https://example.com/")
		psiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(expectedReport)
		}))
		defer psiServer.Close()

		req := NewPSIRequester(createTestPageSpeedConfig(psiServer.URL), "")

		report, err := req.RequestAudit(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, expectedReport, []byte(report))
	})
}

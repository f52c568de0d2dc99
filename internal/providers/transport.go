package providers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cfb-scout-service/internal/metrics"
)

// Doer abstracts the HTTP client implementation for easier testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultHTTPTimeout = 15 * time.Second

// ResolveHTTPClient returns the supplied client or a default with a bounded
// timeout. Every upstream call rides on this timeout; there is no retry.
func ResolveHTTPClient(client *http.Client) Doer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// NormalizeBaseURL trims a trailing slash, substituting fallback when empty.
func NormalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}

// DoJSON executes req, decodes a 2xx JSON body into dest, and converts any
// transport or status failure into an *UpstreamError carrying the upstream
// status. Each attempt is recorded against the provider name.
func DoJSON(client Doer, req *http.Request, provider string, rec *metrics.Recorder, logger *slog.Logger, dest any) error {
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		rec.RecordProviderAttempt(provider, time.Since(start), err)
		logWithProvider(req.Context(), logger, slog.LevelWarn, provider, "upstream request failed", "error", err)
		return &UpstreamError{Provider: provider, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		statusErr := &UpstreamError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
		rec.RecordProviderAttempt(provider, time.Since(start), statusErr)
		logWithProvider(req.Context(), logger, slog.LevelWarn, provider, "upstream returned error status",
			slog.Int("status_code", resp.StatusCode))
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		rec.RecordProviderAttempt(provider, time.Since(start), err)
		return &UpstreamError{Provider: provider, Message: "malformed upstream payload: " + err.Error()}
	}

	rec.RecordProviderAttempt(provider, time.Since(start), nil)
	return nil
}

// Package salary wraps the external salary-estimate HTTP service. The
// upstream response shape is not under our control, so the client probes a
// handful of known field names and degrades to a null estimate.
package salary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
	"github.com/ShaharSolema/TasksFlow/internal/infrastructure/config"
)

const requestTimeout = 10 * time.Second

// estimateFields are probed in order on the top-level payload, then under
// "data".
var estimateFields = []string{"estimated_salary", "salary", "estimate"}

type Client struct {
	baseURL string
	key     string
	header  string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a salary client from configuration. An unset URL or key
// leaves the client in an unconfigured state where every call returns
// ErrSalaryNotConfigured.
func NewClient(cfg config.SalaryConfig, log zerolog.Logger) *Client {
	header := cfg.Header
	if header == "" {
		header = "Authorization"
	}
	return &Client{
		baseURL: cfg.URL,
		key:     cfg.Key,
		header:  header,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

func (c *Client) Estimate(ctx context.Context, title, location, jobType string) (*ports.SalaryEstimate, error) {
	if c.baseURL == "" || c.key == "" {
		return nil, domain.ErrSalaryNotConfigured
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base URL", domain.ErrSalaryUpstream)
	}
	q := u.Query()
	q.Set("title", title)
	if location != "" {
		q.Set("location", location)
	}
	if jobType != "" {
		q.Set("jobType", jobType)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(c.header, "Authorization") {
		req.Header.Set(c.header, "Bearer "+c.key)
	} else {
		req.Header.Set(c.header, c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("salary API request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrSalaryUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrSalaryUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Msg("salary API returned non-2xx")
		return nil, fmt.Errorf("%w: status %d", domain.ErrSalaryUpstream, resp.StatusCode)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", domain.ErrSalaryUpstream, err)
	}

	return normalize(payload), nil
}

// normalize probes the payload for an estimate value and a currency,
// defaulting to a null estimate and USD.
func normalize(payload map[string]any) *ports.SalaryEstimate {
	estimate := probe(payload, estimateFields)
	if estimate == nil {
		if data, ok := payload["data"].(map[string]any); ok {
			estimate = probe(data, []string{"salary", "estimate"})
		}
	}

	currency := "USD"
	if c, ok := payload["currency"].(string); ok && c != "" {
		currency = c
	} else if data, ok := payload["data"].(map[string]any); ok {
		if c, ok := data["currency"].(string); ok && c != "" {
			currency = c
		}
	}

	return &ports.SalaryEstimate{Estimate: estimate, Currency: currency, Raw: payload}
}

func probe(m map[string]any, fields []string) any {
	for _, f := range fields {
		if v, ok := m[f]; ok && v != nil {
			return v
		}
	}
	return nil
}

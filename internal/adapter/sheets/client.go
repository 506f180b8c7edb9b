package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
)

// TokenSource supplies the bearer token attached to every call.
type TokenSource interface {
	AccessToken() (string, error)
}

// SpreadsheetSource supplies the spreadsheet the calls target.
type SpreadsheetSource interface {
	SpreadsheetID() (string, error)
}

// ValuesClient reads and overwrites A1-notation ranges.
type ValuesClient interface {
	Values(ctx context.Context, rng string) ([][]string, error)
	Update(ctx context.Context, rng string, values [][]string) error
}

// HTTPClient implements ValuesClient via the spreadsheet values REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
	sheets     SpreadsheetSource
	logger     *slog.Logger
}

// valueRange mirrors the ValueRange JSON resource.
type valueRange struct {
	Range          string     `json:"range,omitempty"`
	MajorDimension string     `json:"majorDimension,omitempty"`
	Values         [][]string `json:"values,omitempty"`
}

// NewHTTPClient creates a values API client.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, sheets SpreadsheetSource, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse sheets url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("sheets url must be absolute")
	}
	return &HTTPClient{
		baseURL:    parsed,
		tokens:     tokens,
		sheets:     sheets,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Values fetches rows of the range. A range without data yields an empty slice.
func (c *HTTPClient) Values(ctx context.Context, rng string) ([][]string, error) {
	var data valueRange
	if err := c.do(ctx, http.MethodGet, rng, nil, &data); err != nil {
		return nil, err
	}
	if data.Values == nil {
		return [][]string{}, nil
	}
	return data.Values, nil
}

// Update overwrites the range with values using RAW input.
func (c *HTTPClient) Update(ctx context.Context, rng string, values [][]string) error {
	body := valueRange{Range: rng, MajorDimension: "ROWS", Values: values}
	return c.do(ctx, http.MethodPut, rng, &body, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, rng string, in, out any) error {
	spreadsheetID, err := c.sheets.SpreadsheetID()
	if err != nil {
		return err
	}
	token, err := c.tokens.AccessToken()
	if err != nil {
		return err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v4/spreadsheets", spreadsheetID, "values", rng)

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
		query := endpoint.Query()
		query.Set("valueInputOption", "RAW")
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domainErrors.FetchError{Range: rng, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		level := slog.LevelError
		if resp.StatusCode == http.StatusUnauthorized {
			level = slog.LevelWarn
		}
		c.logger.Log(ctx, level, "sheets request failed",
			slog.String("method", method),
			slog.String("range", rng),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(payload)),
		)
		return &domainErrors.FetchError{Range: rng, StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domainErrors.FetchError{Range: rng, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

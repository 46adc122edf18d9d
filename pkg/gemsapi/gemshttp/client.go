// Package gemshttp provides a gemsapi.Client implementation backed by the
// GEMS backend's JSON API.
package gemshttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/pkg/gemsapi"
	"github.com/Ottocr/GEMS/pkg/logger"
	"github.com/Ottocr/GEMS/pkg/serrors"
)

// Options configure the backend client.
type Options struct {
	// BaseURL is the backend origin, e.g. "https://gems.example.com".
	BaseURL string
	// Token is the API token attached to every request. May be empty for
	// Login-only use.
	Token string
}

// Client talks to the GEMS backend REST API and fulfills the
// gemsapi.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New constructs a Client from the provided http.Client and options. When
// the token is a JWT (SSO-fronted deployments) and already expired, a
// warning is logged so the resulting 401s are diagnosable.
func New(ctx context.Context, httpClient *http.Client, opts Options) *Client {
	if exp, ok := TokenExpiry(opts.Token); ok && time.Now().After(exp) {
		logger.Warn(ctx, "configured API token is an expired JWT",
			zap.Time("expiredAt", exp))
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		token:      opts.Token,
	}
}

// TokenExpiry reports the expiry timestamp embedded in a JWT bearer token.
// The token is parsed unverified: the goal is diagnostics, not validation.
// Opaque tokens (the backend's native DRF tokens) report false.
func TokenExpiry(token string) (time.Time, bool) {
	if strings.Count(token, ".") != 2 {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

// do performs one request against the backend and returns the response
// body. Status codes map onto semantic error kinds: 401 is the
// cross-cutting authentication-expiry signal, everything else non-2xx is a
// domain-level fetch failure.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach backend")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, serrors.With(serrors.ErrUnauthorized, "authentication expired")
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "%s not found", path)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusBadRequest:
		return nil, serrors.With(serrors.ErrBadRequest, "%s %s rejected: %s",
			method, path, strings.TrimSpace(string(b)))
	case resp.StatusCode >= 500:
		return nil, serrors.With(serrors.ErrInternal, "%s %s failed with status %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%s %s failed with status %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	b, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// Login exchanges credentials for an API token via POST /api/token-auth/.
// The request is sent without an Authorization header.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	type loginReq struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	b, err := json.Marshal(loginReq{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost, c.baseURL+"/api/token-auth/", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not reach backend")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", serrors.With(serrors.ErrUnauthorized,
			"login failed: %s", strings.TrimSpace(string(body)))
	}

	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}

	return tokenResp.Token, nil
}

// DashboardData fetches the global summary via GET /api/dashboard/data/.
func (c *Client) DashboardData(ctx context.Context) (*gemsapi.DashboardResponse, error) {
	var out gemsapi.DashboardResponse
	if err := c.getJSON(ctx, "/api/dashboard/data/", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SecurityManagerData fetches the operated countries and, when countryID is
// non-zero, one country's assets and baseline assessments via
// GET /api/security-manager/data/.
func (c *Client) SecurityManagerData(ctx context.Context, countryID int64) (*gemsapi.SecurityManagerResponse, error) {
	path := "/api/security-manager/data/"
	if countryID != 0 {
		path += "?" + url.Values{"country_id": {strconv.FormatInt(countryID, 10)}}.Encode()
	}

	var out gemsapi.SecurityManagerResponse
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Assets fetches the flat asset list via GET /api/assets/.
func (c *Client) Assets(ctx context.Context) ([]gemsapi.AssetRecord, error) {
	var out struct {
		Assets []gemsapi.AssetRecord `json:"assets"`
	}
	if err := c.getJSON(ctx, "/api/assets/", &out); err != nil {
		return nil, err
	}

	return out.Assets, nil
}

// AssetDetail fetches one asset with barriers and risk matrix via
// GET /api/assets/{id}/.
func (c *Client) AssetDetail(ctx context.Context, assetID int64) (*gemsapi.AssetDetailResponse, error) {
	var out gemsapi.AssetDetailResponse
	path := fmt.Sprintf("/api/assets/%d/", assetID)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ReportBarrierIssue files a barrier issue via POST /api/barriers/report-issue/.
func (c *Client) ReportBarrierIssue(ctx context.Context, report gemsapi.BarrierIssueReport) error {
	_, err := c.do(ctx, http.MethodPost, "/api/barriers/report-issue/", report)

	return err
}

// UpdateVulnerabilityAnswer submits a questionnaire answer via
// POST /api/assets/{id}/update-vulnerability/.
func (c *Client) UpdateVulnerabilityAnswer(ctx context.Context, assetID, questionID int64, answer string) error {
	type answerReq struct {
		QuestionID     int64  `json:"question_id"`
		SelectedChoice string `json:"selected_choice"`
	}
	path := fmt.Sprintf("/api/assets/%d/update-vulnerability/", assetID)
	_, err := c.do(ctx, http.MethodPost, path, answerReq{QuestionID: questionID, SelectedChoice: answer})

	return err
}

// OperatedCountriesGeoJSON fetches the raw boundary payload via
// GET /api/countries/operated/geojson/. The body is returned verbatim;
// parsing is owned by the geo package.
func (c *Client) OperatedCountriesGeoJSON(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/api/countries/operated/geojson/", nil)
}

// Ensure Client conforms to the gemsapi.Client interface at compile time.
var _ gemsapi.Client = (*Client)(nil)

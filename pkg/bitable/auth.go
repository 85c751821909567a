package bitable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/robostride/website/pkg/config"
)

// ErrConfig indicates required credentials are not configured
var ErrConfig = errors.New("bitable credentials not configured")

// ErrAuth indicates both token acquisition paths are exhausted
var ErrAuth = errors.New("bitable token acquisition failed")

// TokenClient acquires bearer tokens for the open API. A tenant-scoped token
// is preferred when a tenant identifier is configured, with the
// application-scoped token as fallback. Tokens are not cached, every call
// re-acquires.
type TokenClient struct {
	cfg    config.BitableConfig
	client *http.Client
}

// NewTokenClient creates a token client bound to the given credentials
func NewTokenClient(cfg config.BitableConfig) *TokenClient {
	return &TokenClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.AuthTimeout},
	}
}

type tokenRequest struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
	TenantID  string `json:"tenant_id,omitempty"`
}

type tokenResponse struct {
	Code              int    `json:"code"`
	Msg               string `json:"msg"`
	TenantAccessToken string `json:"tenant_access_token"`
	AppAccessToken    string `json:"app_access_token"`
}

// Token returns a bearer token for the open API. Tenant-scoped acquisition
// failures are logged and fall through to the application-scoped path, only
// the exhaustion of both paths is an error.
func (t *TokenClient) Token(ctx context.Context) (string, error) {
	if t.cfg.AppID == "" || t.cfg.AppSecret == "" {
		return "", ErrConfig
	}

	if t.cfg.TenantID != "" {
		tok, err := t.acquire(ctx, "/open-apis/auth/v3/tenant_access_token/internal",
			tokenRequest{AppID: t.cfg.AppID, AppSecret: t.cfg.AppSecret, TenantID: t.cfg.TenantID})
		if err == nil && tok != "" {
			return tok, nil
		}
		log.Printf("[WARN] tenant token acquisition failed, falling back to app token: %v", err)
	}

	tok, err := t.acquire(ctx, "/open-apis/auth/v3/app_access_token/internal",
		tokenRequest{AppID: t.cfg.AppID, AppSecret: t.cfg.AppSecret})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if tok == "" {
		return "", fmt.Errorf("%w: empty token in response", ErrAuth)
	}
	return tok, nil
}

func (t *TokenClient) acquire(ctx context.Context, path string, body tokenRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var res tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if res.Code != 0 {
		return "", fmt.Errorf("token endpoint returned code %d: %s", res.Code, res.Msg)
	}

	if res.TenantAccessToken != "" {
		return res.TenantAccessToken, nil
	}
	return res.AppAccessToken, nil
}

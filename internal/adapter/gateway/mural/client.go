// Package mural is the REST gateway to the payout backend. It owns HTTP
// semantics, auth headers and error unwrapping; callers see typed
// responses and *APIError failures.
package mural

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// API is the gateway surface consumed by the flow steps.
type API interface {
	CreateOrganization(ctx context.Context, req OrganizationRequest) (*Organization, error)
	GetOrganization(ctx context.Context, orgID string) (*Organization, error)
	TosLink(ctx context.Context, orgID string) (string, error)
	KycLink(ctx context.Context, orgID string) (string, error)
	CreateAccount(ctx context.Context, req AccountRequest, orgID string) (*Account, error)
	GetAccount(ctx context.Context, accountID, orgID string) (*Account, error)
	ListAccounts(ctx context.Context, orgID string) ([]Account, error)
	InitiateChallenge(ctx context.Context, req ChallengeRequest, orgID string) (*Challenge, error)
	CreatePayout(ctx context.Context, req PayoutRequest, orgID string) (*Payout, error)
	PayoutRequestBody(ctx context.Context, payoutID, orgID string) (json.RawMessage, error)
	ExecutePayout(ctx context.Context, payoutID, signature, orgID string) (*PayoutExecution, error)
}

// APIError is the uniform error for non-2xx backend responses. The
// message is surfaced to the operator verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Client implements API over net/http.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a gateway client for the given base URL and API key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one request. orgID, when non-empty, is sent as the
// on-behalf-of header that scopes the call to an organization. POST
// requests carry an idempotency key so a manual re-trigger after a
// transport failure cannot double-create resources.
func (c *Client) do(ctx context.Context, method, path, orgID string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if orgID != "" {
		req.Header.Set("on-behalf-of", orgID)
	}
	if method == http.MethodPost {
		req.Header.Set("Idempotency-Key", uuid.New().String())
	}

	c.log.Debug("api request", zap.String("method", method), zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Debug("api error response",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return decodeError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if acct, ok := out.(*Account); ok {
		acct.Raw = data
	}
	return nil
}

// decodeError converts an error body to *APIError. Bodies come back as
// {message} or {status_code, message}; anything undecodable degrades to
// a generic message.
func decodeError(status int, body []byte) error {
	var payload struct {
		Message    string `json:"message"`
		StatusCode int    `json:"status_code"`
	}
	msg := "unknown error"
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}
	return &APIError{StatusCode: status, Message: msg}
}

// CreateOrganization creates an individual or business organization.
func (c *Client) CreateOrganization(ctx context.Context, req OrganizationRequest) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodPost, "/api/organizations", "", req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// GetOrganization fetches organization detail including TOS and KYC
// status.
func (c *Client) GetOrganization(ctx context.Context, orgID string) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodGet, "/api/organizations/"+orgID, "", nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// TosLink returns the hosted Terms of Service URL for an organization.
func (c *Client) TosLink(ctx context.Context, orgID string) (string, error) {
	var resp tosLinkResponse
	if err := c.do(ctx, http.MethodGet, "/api/organizations/"+orgID+"/tos-link", "", nil, &resp); err != nil {
		return "", err
	}
	return resp.TosLink, nil
}

// KycLink returns the hosted identity-verification URL for an
// organization.
func (c *Client) KycLink(ctx context.Context, orgID string) (string, error) {
	var resp kycLinkResponse
	if err := c.do(ctx, http.MethodGet, "/api/organizations/"+orgID+"/kyc-link", "", nil, &resp); err != nil {
		return "", err
	}
	return resp.KycLink, nil
}

// CreateAccount creates a payment account scoped to the organization.
func (c *Client) CreateAccount(ctx context.Context, req AccountRequest, orgID string) (*Account, error) {
	var acct Account
	if err := c.do(ctx, http.MethodPost, "/api/accounts", orgID, req, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// GetAccount fetches one account by id.
func (c *Client) GetAccount(ctx context.Context, accountID, orgID string) (*Account, error) {
	var acct Account
	if err := c.do(ctx, http.MethodGet, "/api/accounts/"+accountID, orgID, nil, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// ListAccounts fetches all accounts for the organization.
func (c *Client) ListAccounts(ctx context.Context, orgID string) ([]Account, error) {
	var accts []Account
	if err := c.do(ctx, http.MethodGet, "/api/accounts", orgID, nil, &accts); err != nil {
		return nil, err
	}
	return accts, nil
}

// InitiateChallenge submits the wallet public key for an approver and
// starts email-code verification.
func (c *Client) InitiateChallenge(ctx context.Context, req ChallengeRequest, orgID string) (*Challenge, error) {
	var ch Challenge
	if err := c.do(ctx, http.MethodPost, "/api/approvers/end-user-custodial/initiate-challenge", orgID, req, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// CreatePayout submits a payout request.
func (c *Client) CreatePayout(ctx context.Context, req PayoutRequest, orgID string) (*Payout, error) {
	var p Payout
	if err := c.do(ctx, http.MethodPost, "/api/payouts/payout", orgID, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PayoutRequestBody fetches the canonical unsigned payload for a payout.
// The document is returned undecoded; the signer consumes it as-is.
func (c *Client) PayoutRequestBody(ctx context.Context, payoutID, orgID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/payouts/payout/end-user-custodial/body-to-sign/"+payoutID, orgID, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ExecutePayout submits the signature for execution.
func (c *Client) ExecutePayout(ctx context.Context, payoutID, signature, orgID string) (*PayoutExecution, error) {
	body := map[string]string{"signature": signature}
	var exec PayoutExecution
	if err := c.do(ctx, http.MethodPost, "/api/payouts/payout/end-user-custodial/execute/"+payoutID, orgID, body, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}

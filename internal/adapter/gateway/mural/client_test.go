package mural_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payflow/internal/adapter/gateway/mural"
)

func TestCreateOrganization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/organizations", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Empty(t, r.Header.Get("on-behalf-of"))
			assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

			var req mural.OrganizationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "nonCustodialIndividual", req.Type)
			assert.Equal(t, "Jane", req.FirstName)

			_ = json.NewEncoder(w).Encode(mural.Organization{
				ID:       "org-1",
				Approver: &mural.ApproverRecord{ID: "ap-1"},
			})
		},
	))
	defer server.Close()

	client := mural.New(server.URL, "test-key")
	org, err := client.CreateOrganization(context.Background(), mural.OrganizationRequest{
		Type:      "nonCustodialIndividual",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "org-1", org.ID)
	require.NotNil(t, org.Approver)
	assert.Equal(t, "ap-1", org.Approver.ID)
}

func TestOrgScopedCallsCarryOnBehalfOf(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "org-1", r.Header.Get("on-behalf-of"))
			_ = json.NewEncoder(w).Encode(mural.Account{ID: "acct-1"})
		},
	))
	defer server.Close()

	client := mural.New(server.URL, "test-key")
	acct, err := client.CreateAccount(context.Background(),
		mural.AccountRequest{Name: "Demo Account"}, "org-1")

	require.NoError(t, err)
	assert.Equal(t, "acct-1", acct.ID)
}

func TestGetAccountKeepsRawBody(t *testing.T) {
	body := `{"id":"acct-1","status":"ACTIVE","accountDetails":{"walletDetails":{"walletAddress":"0xabc"}}}`
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/accounts/acct-1", r.URL.Path)
			_, _ = w.Write([]byte(body))
		},
	))
	defer server.Close()

	client := mural.New(server.URL, "test-key")
	acct, err := client.GetAccount(context.Background(), "acct-1", "org-1")

	require.NoError(t, err)
	assert.Equal(t, "acct-1", acct.ID)
	assert.Equal(t, "ACTIVE", acct.Status)
	assert.Equal(t, "0xabc", mural.ExtractWalletAddress(acct.Raw))
}

func TestTosAndKycLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/organizations/org-1/tos-link":
				_, _ = w.Write([]byte(`{"tosLink":"https://tos.example/1"}`))
			case "/api/organizations/org-1/kyc-link":
				_, _ = w.Write([]byte(`{"kycLink":"https://kyc.example/1"}`))
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		},
	))
	defer server.Close()

	client := mural.New(server.URL, "test-key")

	tos, err := client.TosLink(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, "https://tos.example/1", tos)

	kyc, err := client.KycLink(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, "https://kyc.example/1", kyc)
}

func TestPayoutRequestBodyIsReturnedVerbatim(t *testing.T) {
	body := `{"sourceAccountId":"acct-1","payouts":[{"amount":{"tokenAmount":2,"tokenSymbol":"USDC"}}]}`
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/payouts/payout/end-user-custodial/body-to-sign/p-1", r.URL.Path)
			_, _ = w.Write([]byte(body))
		},
	))
	defer server.Close()

	client := mural.New(server.URL, "test-key")
	raw, err := client.PayoutRequestBody(context.Background(), "p-1", "org-1")

	require.NoError(t, err)
	assert.JSONEq(t, body, string(raw))
}

func TestExecutePayout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/payouts/payout/end-user-custodial/execute/p-1", r.URL.Path)
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "sig-1", req["signature"])
			_ = json.NewEncoder(w).Encode(mural.PayoutExecution{Status: "PENDING"})
		},
	))
	defer server.Close()

	client := mural.New(server.URL, "test-key")
	exec, err := client.ExecutePayout(context.Background(), "p-1", "sig-1", "org-1")

	require.NoError(t, err)
	assert.Equal(t, "PENDING", exec.Status)
}

func TestErrorResponsesBecomeAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "message surfaced verbatim",
			status:      http.StatusBadRequest,
			body:        `{"message":"approver not found"}`,
			wantMessage: "approver not found",
		},
		{
			name:        "undecodable body",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantMessage: "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				},
			))
			defer server.Close()

			client := mural.New(server.URL, "test-key")
			_, err := client.GetOrganization(context.Background(), "org-1")

			var apiErr *mural.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

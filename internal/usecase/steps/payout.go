package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"payflow/internal/adapter/gateway/mural"
	"payflow/internal/domain/flow"
)

// demoPayout is the fixed sandbox payout: 2 USDC settled to a US bank
// account over ACH. The recipient data is test data accepted by the
// sandbox environment.
func demoPayout(sourceAccountID string) mural.PayoutRequest {
	return mural.PayoutRequest{
		SourceAccountID: sourceAccountID,
		Memo:            "Demo payout",
		Payouts: []mural.PayoutItem{{
			Amount: mural.TokenAmount{
				TokenAmount: 2,
				TokenSymbol: "USDC",
			},
			PayoutDetails: mural.PayoutDetails{
				Type:             "fiat",
				BankName:         "Chase",
				BankAccountOwner: "John Smith",
				FiatAndRailDetails: mural.FiatAndRailDetails{
					Type:              "usd",
					Symbol:            "USD",
					AccountType:       "CHECKING",
					BankAccountNumber: "1234567890",
					BankRoutingNumber: "021000021",
				},
			},
			RecipientInfo: mural.RecipientInfo{
				Type:        "individual",
				FirstName:   "John",
				LastName:    "Smith",
				Email:       "john.smith@example.com",
				DateOfBirth: "1990-01-01",
				PhysicalAddress: mural.PhysicalAddress{
					Address1: "123 Main St",
					Country:  "US",
					State:    "NY",
					City:     "New York",
					Zip:      "10001",
				},
			},
		}},
	}
}

// CreatePayout runs step 11, submitting the fixed demo payout funded
// from the flow's account. The payout is created unsigned; signing and
// execution are separate steps.
func (r *Runner) CreatePayout(ctx context.Context) error {
	if r.state.OrgID == "" {
		return r.failValidation("please create an organization first")
	}
	if r.state.AccountID == "" {
		return r.failValidation("please create an account first")
	}

	r.state.SetBusy(flow.StepCreatePayout, true)
	defer r.state.SetBusy(flow.StepCreatePayout, false)

	r.journal.Infof("step 11: creating payout request")

	payout, err := r.api.CreatePayout(ctx, demoPayout(r.state.AccountID), r.state.OrgID)
	if err != nil {
		return r.failCollaborator("create payout", err)
	}

	r.journal.Successf("payout request created: %s", payout.ID)
	r.state.PayoutID = payout.ID
	r.state.Complete(flow.StepCreatePayout)
	r.journal.Infof("next: get the payout body to sign")
	return nil
}

// GetPayoutBody runs step 12, fetching the canonical unsigned document.
// The body is kept verbatim: the signature in step 13 must cover the
// exact bytes the backend produced.
func (r *Runner) GetPayoutBody(ctx context.Context) error {
	if r.state.PayoutID == "" {
		return r.failValidation("please create a payout first")
	}

	r.state.SetBusy(flow.StepGetPayoutBody, true)
	defer r.state.SetBusy(flow.StepGetPayoutBody, false)

	r.journal.Infof("step 12: getting payout body to sign")

	body, err := r.api.PayoutRequestBody(ctx, r.state.PayoutID, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("get payout body", err)
	}

	r.state.PayoutPayload = body
	r.journal.Successf("payout body retrieved (%d bytes)", len(body))
	if pretty := indentJSON(body); pretty != "" {
		r.journal.Infof("body to sign:\n%s", pretty)
	}
	r.state.Complete(flow.StepGetPayoutBody)
	r.journal.Infof("next: sign the payout")
	return nil
}

// SignPayout runs step 13. A payload that is not valid JSON is a local
// validation failure, not an agent failure: the agent is never asked to
// sign a document the backend could not have produced.
func (r *Runner) SignPayout(ctx context.Context) error {
	if r.agent == nil {
		return r.failValidation("please initialize the wallet agent first")
	}
	if len(r.state.PayoutPayload) == 0 {
		return r.failValidation("please get the payout body first")
	}
	if !json.Valid(r.state.PayoutPayload) {
		return r.failValidation("payout body is not valid JSON")
	}

	r.state.SetBusy(flow.StepSignPayout, true)
	defer r.state.SetBusy(flow.StepSignPayout, false)

	r.journal.Infof("step 13: signing payout body")

	signature, err := r.agent.SignPayoutPayload(ctx, r.state.PayoutPayload)
	if err != nil {
		return r.failCollaborator("sign payout", err)
	}
	if signature == "" {
		// An empty signature cannot be executed; the agent misbehaved
		// even though it reported success.
		return r.failCollaborator("sign payout", errors.New("agent returned an empty signature"))
	}

	r.state.Signature = signature
	r.journal.Successf("payout signed: %s", abbreviate(signature))
	r.state.Complete(flow.StepSignPayout)
	r.journal.Infof("next: execute the payout")
	return nil
}

// ExecutePayout runs step 14, the terminal step.
func (r *Runner) ExecutePayout(ctx context.Context) error {
	if r.state.PayoutID == "" {
		return r.failValidation("please create a payout first")
	}
	if r.state.Signature == "" {
		return r.failValidation("please sign the payout first")
	}

	r.state.SetBusy(flow.StepExecutePayout, true)
	defer r.state.SetBusy(flow.StepExecutePayout, false)

	r.journal.Infof("step 14: executing payout")

	exec, err := r.api.ExecutePayout(ctx, r.state.PayoutID, r.state.Signature, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("execute payout", err)
	}

	r.state.PayoutFinalStatus = exec.Status
	r.journal.Successf("payout executed, status: %s", exec.Status)
	r.state.Complete(flow.StepExecutePayout)
	r.journal.Successf("flow complete")
	return nil
}

func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return ""
	}
	return buf.String()
}

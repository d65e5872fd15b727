package steps

import (
	"context"

	"payflow/internal/adapter/gateway/mural"
	"payflow/internal/domain/flow"
)

// CreateAccount runs step 9. Account provisioning is asynchronous on
// the backend, so the creation response may not carry a wallet address
// yet. The step still completes; the operator fetches details until the
// address appears.
func (r *Runner) CreateAccount(ctx context.Context, name, description string) error {
	if r.state.OrgID == "" {
		return r.failValidation("please create an organization first")
	}
	if name == "" {
		return r.failValidation("account name is required")
	}

	r.state.SetBusy(flow.StepCreateAccount, true)
	defer r.state.SetBusy(flow.StepCreateAccount, false)

	r.journal.Infof("step 9: creating account %q", name)

	account, err := r.api.CreateAccount(ctx, mural.AccountRequest{
		Name:        name,
		Description: description,
	}, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("create account", err)
	}

	r.journal.Successf("account created: %s (status: %s)", account.ID, account.Status)
	r.state.AccountID = account.ID
	r.state.AccountAddress = mural.ExtractWalletAddress(account.Raw)
	if r.state.AccountAddress != "" {
		r.journal.Successf("wallet address: %s", r.state.AccountAddress)
	} else {
		r.journal.Warnf("wallet address not available yet, the account is still initializing")
	}
	r.state.Complete(flow.StepCreateAccount)
	r.journal.Infof("next: fund the account, fetch account details if the address is missing")
	return nil
}

// GetAccountDetails is not a numbered step. It re-reads the account so
// the operator can pick up the wallet address once provisioning
// finishes.
func (r *Runner) GetAccountDetails(ctx context.Context) error {
	if r.state.AccountID == "" {
		return r.failValidation("please create an account first")
	}
	if r.state.OrgID == "" {
		return r.failValidation("please create an organization first")
	}

	r.journal.Infof("fetching account details for %s", r.state.AccountID)

	account, err := r.api.GetAccount(ctx, r.state.AccountID, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("get account details", err)
	}

	r.journal.Successf("account status: %s", account.Status)
	if addr := mural.ExtractWalletAddress(account.Raw); addr != "" {
		r.state.AccountAddress = addr
		r.journal.Successf("wallet address: %s", addr)
	} else {
		r.journal.Warnf("wallet address not available yet, try again shortly")
	}
	return nil
}

// ListAccounts is not a numbered step. It enumerates the organization's
// accounts so the operator can verify what exists on the backend.
func (r *Runner) ListAccounts(ctx context.Context) error {
	if r.state.OrgID == "" {
		return r.failValidation("please create an organization first")
	}

	r.journal.Infof("listing accounts")

	accounts, err := r.api.ListAccounts(ctx, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("list accounts", err)
	}

	if len(accounts) == 0 {
		r.journal.Warnf("no accounts exist yet")
		return nil
	}
	r.journal.Successf("%d account(s):", len(accounts))
	for _, a := range accounts {
		r.journal.Infof("  %s (status: %s)", a.ID, a.Status)
	}
	return nil
}

// ProceedToFunding runs step 10. Funding happens outside the client, so
// this is a pure gate: the operator confirms the account received test
// funds and the flow moves on. No collaborator is called and the step
// is never busy.
func (r *Runner) ProceedToFunding() error {
	if r.state.AccountID == "" {
		return r.failValidation("please create an account first")
	}
	if r.state.AccountAddress == "" {
		return r.failValidation("wallet address is not known yet, fetch account details first")
	}

	r.journal.Infof("step 10: fund the account")
	r.journal.Warnf("send test USDC to %s before executing the payout", r.state.AccountAddress)
	r.journal.Successf("funding acknowledged")
	r.state.Complete(flow.StepProceedToFunding)
	r.journal.Infof("next: create a payout")
	return nil
}

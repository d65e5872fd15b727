package steps

import (
	"context"
	"strings"

	"payflow/internal/adapter/gateway/mural"
	"payflow/internal/domain/flow"
)

// InitializeWalletAgent runs step 4. The agent is constructed lazily
// here rather than at session start so a misconfigured agent kind only
// surfaces when the operator actually needs it.
func (r *Runner) InitializeWalletAgent(ctx context.Context) error {
	r.state.SetBusy(flow.StepInitializeWalletAgent, true)
	defer r.state.SetBusy(flow.StepInitializeWalletAgent, false)

	r.journal.Infof("step 4: initializing wallet agent")

	agent := r.agent
	if agent == nil {
		var err error
		agent, err = r.newAgent()
		if err != nil {
			return r.failCollaborator("construct wallet agent", err)
		}
	}
	if err := agent.Initialize(ctx); err != nil {
		return r.failCollaborator("initialize wallet agent", err)
	}
	r.agent = agent

	if pk, err := agent.PublicKey(); err == nil {
		r.journal.Successf("wallet agent initialized, public key: %s", abbreviate(pk))
	} else {
		r.journal.Successf("wallet agent initialized")
	}
	r.state.Complete(flow.StepInitializeWalletAgent)
	r.journal.Infof("next: initiate the authentication challenge")
	return nil
}

// InitiateChallenge runs step 5, registering the agent's public key for
// the selected approver. The backend emails the approver a verification
// code and returns the authenticator id that step 6 pairs with it.
func (r *Runner) InitiateChallenge(ctx context.Context) error {
	if r.agent == nil {
		return r.failValidation("please initialize the wallet agent first")
	}
	approverID := r.state.ApproverID()
	if approverID == "" {
		return r.failValidation("no approver available, please create an organization first")
	}

	r.state.SetBusy(flow.StepInitiateChallenge, true)
	defer r.state.SetBusy(flow.StepInitiateChallenge, false)

	r.journal.Infof("step 5: initiating authentication challenge")

	publicKey, err := r.agent.PublicKey()
	if err != nil {
		return r.failCollaborator("read wallet public key", err)
	}

	challenge, err := r.api.InitiateChallenge(ctx, mural.ChallengeRequest{
		PublicKey:  publicKey,
		ApproverID: approverID,
	}, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("initiate challenge", err)
	}

	r.state.AuthenticatorID = challenge.AuthenticatorID
	r.journal.Successf("challenge initiated, authenticator: %s", challenge.AuthenticatorID)
	r.state.Complete(flow.StepInitiateChallenge)
	r.journal.Warnf("a verification code has been emailed to the approver")
	r.journal.Infof("next: enter the code to start the session")
	return nil
}

// StartSession runs step 6, exchanging the emailed verification code
// for a signing session inside the agent.
func (r *Runner) StartSession(ctx context.Context, code string) error {
	if r.agent == nil {
		return r.failValidation("please initialize the wallet agent first")
	}
	if r.state.AuthenticatorID == "" {
		return r.failValidation("please initiate the authentication challenge first")
	}
	if strings.TrimSpace(code) == "" {
		return r.failValidation("verification code is required")
	}

	r.state.SetBusy(flow.StepStartSession, true)
	defer r.state.SetBusy(flow.StepStartSession, false)

	r.journal.Infof("step 6: starting wallet session")

	if err := r.agent.StartSession(ctx, strings.TrimSpace(code), r.state.AuthenticatorID); err != nil {
		return r.failCollaborator("start wallet session", err)
	}

	r.state.SessionEstablished = true
	if exp := r.agent.SessionExpiry(); exp != nil {
		r.journal.Successf("wallet session established, expires %s", exp.Format("15:04:05"))
	} else {
		r.journal.Successf("wallet session established")
	}
	r.state.Complete(flow.StepStartSession)
	r.journal.Infof("next: get the KYC link")
	return nil
}

// abbreviate shortens long base64 keys for the journal.
func abbreviate(s string) string {
	if len(s) <= 24 {
		return s
	}
	return s[:12] + "..." + s[len(s)-8:]
}

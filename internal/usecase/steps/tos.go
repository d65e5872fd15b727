package steps

import (
	"context"
	"fmt"

	"payflow/internal/domain/flow"
)

// GetTosLink runs step 2. Completion means "link obtained": accepting
// the terms happens on the hosted page and is verified by step 3.
func (r *Runner) GetTosLink(ctx context.Context) error {
	if r.state.OrgID == "" {
		return r.failValidation("please create an organization first")
	}

	r.state.SetBusy(flow.StepGetTosLink, true)
	defer r.state.SetBusy(flow.StepGetTosLink, false)

	r.journal.Infof("step 2: getting Terms of Service link")

	link, err := r.api.TosLink(ctx, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("get TOS link", err)
	}

	r.journal.Successf("TOS link retrieved: %s", link)
	r.state.TosLink = link
	r.state.TosLinkVisible = true
	r.state.Complete(flow.StepGetTosLink)
	r.journal.Warnf("open the TOS link and complete the acceptance process")
	r.journal.Infof("next: accept the Terms of Service, then check the status")
	return nil
}

// CheckTosStatus runs step 3, a manual poll of the organization detail.
// NEEDS_REVIEW is a pending state, not a failure; anything other than
// ACCEPTED leaves the step incomplete.
func (r *Runner) CheckTosStatus(ctx context.Context) error {
	if r.state.OrgID == "" {
		return r.failValidation("please create an organization first")
	}

	r.state.SetBusy(flow.StepCheckTosStatus, true)
	defer r.state.SetBusy(flow.StepCheckTosStatus, false)

	r.journal.Infof("step 3: checking Terms of Service acceptance status")

	org, err := r.api.GetOrganization(ctx, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("check TOS status", err)
	}

	switch org.TosStatus {
	case "ACCEPTED":
		r.state.Tos = flow.TosAccepted
		r.journal.Successf("Terms of Service have been accepted")
		r.state.Complete(flow.StepCheckTosStatus)
		r.journal.Infof("next: initialize the wallet agent")
		return nil
	case "NEEDS_REVIEW":
		r.state.Tos = flow.TosNeedsReview
		return r.failPending(org.TosStatus,
			"Terms of Service are pending review, please wait for approval")
	default:
		r.journal.Errorf("Terms of Service have not been accepted yet, status: %s", org.TosStatus)
		r.journal.Warnf("open the TOS link and complete the acceptance process")
		return &flow.CollaboratorError{Op: "check TOS status",
			Err: fmt.Errorf("terms of service not accepted, status: %s", org.TosStatus)}
	}
}

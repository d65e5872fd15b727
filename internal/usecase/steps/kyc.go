package steps

import (
	"context"
	"fmt"

	"payflow/internal/domain/flow"
)

// GetKycLink runs step 7. Like the TOS link, completion means the link
// was obtained; the verification itself happens on the hosted page.
func (r *Runner) GetKycLink(ctx context.Context) error {
	if r.state.OrgID == "" {
		return r.failValidation("please create an organization first")
	}

	r.state.SetBusy(flow.StepGetKycLink, true)
	defer r.state.SetBusy(flow.StepGetKycLink, false)

	r.journal.Infof("step 7: getting KYC link")

	link, err := r.api.KycLink(ctx, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("get KYC link", err)
	}

	r.journal.Successf("KYC link retrieved: %s", link)
	r.state.KycLink = link
	r.state.KycLinkVisible = true
	r.state.Complete(flow.StepGetKycLink)
	r.journal.Warnf("open the KYC link and complete the verification process")
	r.journal.Infof("next: complete KYC, then check the status")
	return nil
}

// CheckKycStatus runs step 8, another manual poll. KYC has two distinct
// pending shapes: pending (provider still reviewing) and submitted
// (documents in, decision outstanding). Both are warnings, not errors.
func (r *Runner) CheckKycStatus(ctx context.Context) error {
	if r.state.OrgID == "" {
		return r.failValidation("please create an organization first")
	}

	r.state.SetBusy(flow.StepCheckKycStatus, true)
	defer r.state.SetBusy(flow.StepCheckKycStatus, false)

	r.journal.Infof("step 8: checking KYC status")

	org, err := r.api.GetOrganization(ctx, r.state.OrgID)
	if err != nil {
		return r.failCollaborator("check KYC status", err)
	}

	switch org.KycStatus.Type {
	case "approved":
		r.state.Kyc = flow.KycApproved
		r.journal.Successf("KYC has been approved")
		r.state.Complete(flow.StepCheckKycStatus)
		r.journal.Infof("next: create an account")
		return nil
	case "pending":
		r.state.Kyc = flow.KycPending
		return r.failPending(org.KycStatus.Type,
			"KYC verification is pending, please complete the verification process")
	case "submitted":
		r.state.Kyc = flow.KycSubmitted
		return r.failPending(org.KycStatus.Type,
			"KYC has been submitted and is awaiting review")
	default:
		r.journal.Errorf("KYC has not been approved yet, status: %s", org.KycStatus.Type)
		if org.KycStatus.Message != "" {
			r.journal.Infof("KYC message: %s", org.KycStatus.Message)
		}
		r.journal.Warnf("open the KYC link and complete the verification process")
		return &flow.CollaboratorError{Op: "check KYC status",
			Err: fmt.Errorf("kyc not approved, status: %s", org.KycStatus.Type)}
	}
}

package steps

import (
	"context"
	"fmt"

	"payflow/internal/adapter/gateway/mural"
	"payflow/internal/domain/flow"
)

// CreateOrganization runs step 1. The request shape and the approver
// handling diverge per organization variant: individuals become their
// own sole approver, businesses get the server's approver roster with
// placeholder names where the server omits them.
func (r *Runner) CreateOrganization(ctx context.Context, spec flow.OrganizationSpec) error {
	if err := spec.Validate(); err != nil {
		r.journal.Errorf("%v", err)
		return err
	}

	req := mural.OrganizationRequest{Type: spec.Kind().String()}
	switch org := spec.(type) {
	case flow.Individual:
		req.FirstName = org.FirstName
		req.LastName = org.LastName
		req.Email = org.Email
	case flow.Business:
		roster, err := org.ApproverList()
		if err != nil {
			r.journal.Errorf("%v", err)
			return err
		}
		req.BusinessName = org.Name
		req.Email = org.Email
		for _, a := range roster {
			req.Approvers = append(req.Approvers, mural.ApproverRequest(a))
		}
	default:
		return r.failValidation(fmt.Sprintf("unsupported organization kind: %s", spec.Kind()))
	}

	r.state.SetBusy(flow.StepCreateOrganization, true)
	defer r.state.SetBusy(flow.StepCreateOrganization, false)

	r.journal.Infof("step 1: creating %s organization", spec.Kind())

	result, err := r.api.CreateOrganization(ctx, req)
	if err != nil {
		return r.failCollaborator("create organization", err)
	}

	r.journal.Successf("organization created: %s", result.ID)
	r.state.OrgID = result.ID
	r.state.Approvers = buildApproverCandidates(spec, result)
	r.state.SelectedApprover = 0

	switch len(r.state.Approvers) {
	case 0:
		r.journal.Warnf("no approvers returned for organization")
	case 1:
		r.journal.Successf("approver: %s (%s)", r.state.Approvers[0].Name, r.state.Approvers[0].ID)
	default:
		r.journal.Successf("%d approvers available:", len(r.state.Approvers))
		for i, a := range r.state.Approvers {
			r.journal.Infof("  %d. %s (%s) - %s", i+1, a.Name, a.Email, a.ID)
		}
	}

	r.state.Complete(flow.StepCreateOrganization)
	r.journal.Infof("next: get the Terms of Service link")
	return nil
}

// buildApproverCandidates maps the creation response to the candidate
// list used by the challenge step.
func buildApproverCandidates(spec flow.OrganizationSpec, result *mural.Organization) []flow.Approver {
	if org, ok := spec.(flow.Individual); ok {
		// The individual is the sole approver; the response only
		// supplies the id.
		if result.Approver == nil || result.Approver.ID == "" {
			return nil
		}
		return []flow.Approver{{
			ID:    result.Approver.ID,
			Name:  org.FirstName + " " + org.LastName,
			Email: org.Email,
		}}
	}

	business, _ := spec.(flow.Business)
	if len(result.Approvers) > 0 {
		out := make([]flow.Approver, 0, len(result.Approvers))
		for i, a := range result.Approvers {
			name := a.Name
			if name == "" {
				name = fmt.Sprintf("Approver %d", i+1)
			}
			email := a.Email
			if email == "" {
				email = "No email"
			}
			out = append(out, flow.Approver{ID: a.ID, Name: name, Email: email})
		}
		return out
	}

	// Some responses fall back to a singular approver even for
	// business organizations.
	if result.Approver != nil && result.Approver.ID != "" {
		name := result.Approver.Name
		if name == "" {
			name = "Business Approver"
		}
		email := result.Approver.Email
		if email == "" {
			email = business.Email
		}
		return []flow.Approver{{ID: result.Approver.ID, Name: name, Email: email}}
	}
	return nil
}

package flow

import "encoding/json"

// OrgKind discriminates the two organization variants.
type OrgKind string

const (
	OrgKindIndividual OrgKind = "nonCustodialIndividual"
	OrgKindBusiness   OrgKind = "nonCustodialBusiness"
)

// IsValid validates the organization kind.
func (k OrgKind) IsValid() bool {
	switch k {
	case OrgKindIndividual, OrgKindBusiness:
		return true
	default:
		return false
	}
}

func (k OrgKind) String() string {
	return string(k)
}

// OrganizationSpec is the tagged union over the two organization variants.
// The required fields diverge per variant, so each carries its own
// validation instead of sharing a string-discriminated bag of fields.
type OrganizationSpec interface {
	Kind() OrgKind
	Validate() error
}

// Individual describes a single-person organization. The individual is
// also the sole approver.
type Individual struct {
	FirstName string
	LastName  string
	Email     string
}

func (Individual) Kind() OrgKind { return OrgKindIndividual }

// Validate checks that all individual fields are present.
func (o Individual) Validate() error {
	if o.FirstName == "" || o.LastName == "" || o.Email == "" {
		return NewValidationError("please fill in all individual fields")
	}
	return nil
}

// Business describes a business organization with an optional approver
// roster supplied by the operator as a JSON array.
type Business struct {
	Name          string
	Email         string
	ApproversJSON string
}

func (Business) Kind() OrgKind { return OrgKindBusiness }

// Validate checks that business name and email are present. The approver
// JSON is validated separately by ApproverList.
func (o Business) Validate() error {
	if o.Name == "" || o.Email == "" {
		return NewValidationError("please fill in business name and email")
	}
	return nil
}

// ApproverInput is one entry of the operator-supplied approver roster.
type ApproverInput struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ApproverList parses the operator-supplied approver JSON. An empty
// string yields an empty roster; malformed JSON is a validation failure,
// never a crash.
func (o Business) ApproverList() ([]ApproverInput, error) {
	if o.ApproversJSON == "" {
		return nil, nil
	}
	var list []ApproverInput
	if err := json.Unmarshal([]byte(o.ApproversJSON), &list); err != nil {
		return nil, NewValidationError("invalid JSON for approvers")
	}
	return list, nil
}

// Approver is a candidate authorized to answer authentication challenges
// for the organization.
type Approver struct {
	ID    string
	Name  string
	Email string
}

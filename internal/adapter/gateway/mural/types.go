package mural

import "encoding/json"

// OrganizationRequest is the creation payload for either organization
// variant. Individual fields and business fields are mutually exclusive;
// the backend discriminates on Type.
type OrganizationRequest struct {
	Type string `json:"type"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`

	BusinessName string            `json:"businessName,omitempty"`
	Approvers    []ApproverRequest `json:"approvers,omitempty"`
}

// ApproverRequest is one approver entry of a business creation payload.
type ApproverRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ApproverRecord is an approver as returned by the backend.
type ApproverRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// KycStatus is the nested verification status of an organization.
type KycStatus struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// Organization is the backend's organization representation. Individual
// organizations carry a single Approver; business organizations usually
// carry an Approvers list, but some responses fall back to the singular
// field.
type Organization struct {
	ID        string           `json:"id"`
	TosStatus string           `json:"tosStatus,omitempty"`
	KycStatus KycStatus        `json:"kycStatus,omitempty"`
	Approver  *ApproverRecord  `json:"approver,omitempty"`
	Approvers []ApproverRecord `json:"approvers,omitempty"`
}

// AccountRequest creates a payment account under an organization.
type AccountRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Account is the backend's account representation. Raw retains the
// undecoded body because the wallet address location varies between
// response shapes; see ExtractWalletAddress.
type Account struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// ChallengeRequest starts email-code authentication for an approver. The
// public key comes from the wallet agent, not from the backend.
type ChallengeRequest struct {
	PublicKey  string `json:"publicKey"`
	ApproverID string `json:"approverId"`
}

// Challenge correlates the submitted public key with a pending email
// verification.
type Challenge struct {
	AuthenticatorID string `json:"authenticatorId"`
}

// PayoutRequest submits one or more payouts funded from a source account.
type PayoutRequest struct {
	SourceAccountID string       `json:"sourceAccountId"`
	Memo            string       `json:"memo,omitempty"`
	Payouts         []PayoutItem `json:"payouts"`
}

// PayoutItem is a single payout instruction.
type PayoutItem struct {
	Amount        TokenAmount   `json:"amount"`
	PayoutDetails PayoutDetails `json:"payoutDetails"`
	RecipientInfo RecipientInfo `json:"recipientInfo"`
}

// TokenAmount is an on-chain amount in a given token.
type TokenAmount struct {
	TokenAmount float64 `json:"tokenAmount"`
	TokenSymbol string  `json:"tokenSymbol"`
}

// PayoutDetails describes the fiat rail for a payout.
type PayoutDetails struct {
	Type               string             `json:"type"`
	BankName           string             `json:"bankName"`
	BankAccountOwner   string             `json:"bankAccountOwner"`
	FiatAndRailDetails FiatAndRailDetails `json:"fiatAndRailDetails"`
}

// FiatAndRailDetails carries the bank routing information.
type FiatAndRailDetails struct {
	Type              string `json:"type"`
	Symbol            string `json:"symbol"`
	AccountType       string `json:"accountType"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankRoutingNumber string `json:"bankRoutingNumber"`
}

// RecipientInfo identifies the payout recipient.
type RecipientInfo struct {
	Type            string          `json:"type"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	DateOfBirth     string          `json:"dateOfBirth,omitempty"`
	PhysicalAddress PhysicalAddress `json:"physicalAddress"`
}

// PhysicalAddress is the recipient's postal address.
type PhysicalAddress struct {
	Address1 string `json:"address1"`
	Country  string `json:"country"`
	State    string `json:"state"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
}

// Payout is the created payout request.
type Payout struct {
	ID string `json:"id"`
}

// PayoutExecution is the result of submitting a signed payout.
type PayoutExecution struct {
	Status string `json:"status"`
}

type tosLinkResponse struct {
	TosLink string `json:"tosLink"`
}

type kycLinkResponse struct {
	KycLink string `json:"kycLink"`
}

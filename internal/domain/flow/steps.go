package flow

// Step identifies one of the fourteen flow steps. Steps are 0-based
// internally; the active-step pointer exposed to the UI is 1-based.
type Step int

const (
	StepCreateOrganization Step = iota
	StepGetTosLink
	StepCheckTosStatus
	StepInitializeWalletAgent
	StepInitiateChallenge
	StepStartSession
	StepGetKycLink
	StepCheckKycStatus
	StepCreateAccount
	StepProceedToFunding
	StepCreatePayout
	StepGetPayoutBody
	StepSignPayout
	StepExecutePayout
)

// StepCount is the number of steps in the flow.
const StepCount = 14

// DoneStep is the 1-based active-step value after the terminal step
// completes.
const DoneStep = StepCount + 1

var stepTitles = [StepCount]string{
	"Create organization",
	"Get Terms of Service link",
	"Check Terms of Service status",
	"Initialize wallet agent",
	"Initiate authentication challenge",
	"Start session",
	"Get KYC link",
	"Check KYC status",
	"Create account",
	"Fund account",
	"Create payout",
	"Get payout body to sign",
	"Sign payout",
	"Execute payout",
}

// IsValid reports whether s is a defined flow step.
func (s Step) IsValid() bool {
	return s >= 0 && s < StepCount
}

// Title returns the human-readable step title.
func (s Step) Title() string {
	if !s.IsValid() {
		return "unknown step"
	}
	return stepTitles[s]
}

// Number returns the 1-based step number shown to the operator.
func (s Step) Number() int {
	return int(s) + 1
}

func (s Step) String() string {
	return s.Title()
}

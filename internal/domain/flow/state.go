package flow

// TosState tracks Terms of Service acceptance as reported by the backend.
type TosState string

const (
	TosNotStarted  TosState = "NOT_STARTED"
	TosNeedsReview TosState = "NEEDS_REVIEW"
	TosAccepted    TosState = "ACCEPTED"
)

// KycState tracks identity verification as reported by the backend.
type KycState string

const (
	KycNotStarted KycState = "NOT_STARTED"
	KycPending    KycState = "PENDING"
	KycSubmitted  KycState = "SUBMITTED"
	KycApproved   KycState = "APPROVED"
)

// StatusLevel classifies the single-line status banner.
type StatusLevel string

const (
	StatusReady   StatusLevel = "ready"
	StatusWarning StatusLevel = "warning"
	StatusError   StatusLevel = "error"
)

// StatusLine is the one-line flow status shown above the step list.
type StatusLine struct {
	Message string
	Level   StatusLevel
}

// State is the single mutable record for one flow session. It lives for
// the duration of the process and is never persisted. All mutation
// happens from the one goroutine driving the flow, so no locking is
// required beyond sequential access.
type State struct {
	activeStep int
	completed  [StepCount]bool
	busy       [StepCount]bool

	Status StatusLine

	// Produced by the steps, write-once-then-read-many.
	OrgID            string
	Approvers        []Approver
	SelectedApprover int
	AuthenticatorID  string

	SessionEstablished bool

	TosLink        string
	TosLinkVisible bool
	Tos            TosState

	KycLink        string
	KycLinkVisible bool
	Kyc            KycState

	AccountID      string
	AccountAddress string

	PayoutID          string
	PayoutPayload     []byte
	Signature         string
	PayoutFinalStatus string
}

// NewState creates an empty session state positioned at step one.
func NewState() *State {
	return &State{
		activeStep: 1,
		Tos:        TosNotStarted,
		Kyc:        KycNotStarted,
		Status: StatusLine{
			Message: "Ready to start the non-custodial payout flow",
			Level:   StatusReady,
		},
	}
}

// ActiveStep returns the 1-based pointer to the step awaiting action.
// DoneStep means the whole flow has finished.
func (s *State) ActiveStep() int {
	return s.activeStep
}

// Done reports whether the terminal step has completed.
func (s *State) Done() bool {
	return s.activeStep == DoneStep
}

// Completed reports whether the given step has completed. Completion is
// monotonic: once set it is never reset within a session.
func (s *State) Completed(step Step) bool {
	return step.IsValid() && s.completed[step]
}

// Busy reports whether the given step's action is in flight.
func (s *State) Busy(step Step) bool {
	return step.IsValid() && s.busy[step]
}

// SetBusy flips the in-flight flag for a step. It has no effect on
// completion or the active pointer.
func (s *State) SetBusy(step Step, busy bool) {
	if !step.IsValid() {
		return
	}
	s.busy[step] = busy
}

// Complete marks a step complete, clears its busy flag and advances the
// active pointer past it. Completing an already-completed step is a
// no-op on the completion flag and never rewinds the pointer.
func (s *State) Complete(step Step) {
	if !step.IsValid() {
		return
	}
	s.completed[step] = true
	s.busy[step] = false
	if next := int(step) + 2; next > s.activeStep {
		s.activeStep = next
	}
}

// FirstIncomplete derives the 1-based pointer from the completion flags:
// the first incomplete step, or DoneStep when everything is done. The
// stored active pointer always equals this value outside initialization.
func (s *State) FirstIncomplete() int {
	for i := 0; i < StepCount; i++ {
		if !s.completed[i] {
			return i + 1
		}
	}
	return DoneStep
}

// UpdateStatus replaces the status banner.
func (s *State) UpdateStatus(message string, level StatusLevel) {
	s.Status = StatusLine{Message: message, Level: level}
}

// SelectApprover picks the approver candidate used for the challenge.
// Out-of-range indexes are ignored.
func (s *State) SelectApprover(index int) {
	if index < 0 || index >= len(s.Approvers) {
		return
	}
	s.SelectedApprover = index
}

// ApproverID returns the id of the currently selected approver, or ""
// when no candidates exist yet.
func (s *State) ApproverID() string {
	if len(s.Approvers) == 0 {
		return ""
	}
	return s.Approvers[s.SelectedApprover].ID
}

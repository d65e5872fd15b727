// Package steps implements the fourteen actions of the non-custodial
// payout walkthrough. Each action validates its preconditions locally,
// calls the API gateway and/or the wallet agent, journals every
// significant transition and marks its step complete on success.
//
// Failures never propagate past an action as panics and never leave a
// step busy: the returned error is classified (validation, collaborator
// or pending) and has already been journaled when the action returns.
package steps

import (
	"go.uber.org/zap"

	"payflow/internal/adapter/gateway/mural"
	"payflow/internal/adapter/gateway/wallet"
	"payflow/internal/domain/flow"
)

// AgentFactory constructs the wallet agent when the operator reaches the
// initialization step. Injected so tests can substitute a mock.
type AgentFactory func() (wallet.Agent, error)

// Runner drives one flow session. It owns the session state and the
// activity journal; only one action runs at a time, driven by the
// operator, so no locking discipline is needed.
type Runner struct {
	state    *flow.State
	journal  *flow.Journal
	api      mural.API
	newAgent AgentFactory
	agent    wallet.Agent
	log      *zap.Logger
}

// NewRunner creates a session positioned at the first step.
func NewRunner(api mural.API, newAgent AgentFactory, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		state:    flow.NewState(),
		journal:  flow.NewJournal(),
		api:      api,
		newAgent: newAgent,
		log:      log,
	}
}

// State exposes the session state for rendering.
func (r *Runner) State() *flow.State { return r.state }

// Journal exposes the session activity log.
func (r *Runner) Journal() *flow.Journal { return r.journal }

// Agent returns the wallet agent handle, nil before the initialization
// step has run.
func (r *Runner) Agent() wallet.Agent { return r.agent }

// failValidation journals a precondition failure and returns it as a
// classified error. Busy and completion flags are deliberately left
// untouched: a validation failure is a no-op on the sequencer.
func (r *Runner) failValidation(reason string) error {
	r.journal.Errorf("%s", reason)
	return flow.NewValidationError("%s", reason)
}

// failCollaborator journals a gateway or agent failure verbatim.
func (r *Runner) failCollaborator(what string, err error) error {
	r.journal.Errorf("failed to %s: %v", what, err)
	r.log.Warn("collaborator call failed", zap.String("op", what), zap.Error(err))
	return &flow.CollaboratorError{Op: what, Err: err}
}

// failPending journals a not-yet-ready status as a warning. The step
// stays incomplete and the operator re-checks manually.
func (r *Runner) failPending(status, reason string) error {
	r.journal.Warnf("%s", reason)
	return &flow.PendingError{Status: status, Reason: reason}
}

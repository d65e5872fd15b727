package ui

import (
	"fmt"
	"strings"

	"payflow/internal/adapter/gateway/wallet"
	"payflow/internal/domain/flow"
)

// Tracker renders the step list with completion markers and the active
// pointer. Busy never survives an action, so the tracker only
// distinguishes done, active and pending.
func Tracker(state *flow.State) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Non-custodial payout flow"))
	sb.WriteString("\n")
	sb.WriteString(Status(state.Status))
	sb.WriteString("\n\n")

	for s := flow.Step(0); s.IsValid(); s++ {
		line := fmt.Sprintf("%2d. %s", s.Number(), s.Title())
		switch {
		case state.Completed(s):
			sb.WriteString(SuccessStyle.Render("  ✓ " + line))
		case s.Number() == state.ActiveStep():
			sb.WriteString(AccentStyle.Render("  → " + line))
		default:
			sb.WriteString(MutedStyle.Render("    " + line))
		}
		sb.WriteString("\n")
	}

	if state.Done() {
		sb.WriteString("\n")
		sb.WriteString(SuccessStyle.Render("All steps complete."))
		sb.WriteString("\n")
	}
	return sb.String()
}

// AgentStatus renders a one-line summary of the wallet agent.
func AgentStatus(status wallet.Status) string {
	if !status.Initialized {
		return MutedStyle.Render("  Wallet agent: not initialized")
	}
	if !status.SessionActive {
		return MutedStyle.Render("  Wallet agent: initialized, no session")
	}
	line := "  Wallet agent: session active"
	if status.SessionExpiry != nil {
		line += ", expires " + status.SessionExpiry.Format("15:04:05")
	}
	return SuccessStyle.Render(line)
}

// Details renders the identifiers the flow has produced so far.
func Details(state *flow.State) string {
	type pair struct{ k, v string }
	pairs := []pair{
		{"Organization", state.OrgID},
		{"Authenticator", state.AuthenticatorID},
		{"Account", state.AccountID},
		{"Wallet address", state.AccountAddress},
		{"Payout", state.PayoutID},
		{"Final status", state.PayoutFinalStatus},
	}
	var sb strings.Builder
	for _, p := range pairs {
		if p.v == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", MutedStyle.Render(p.k+":"), p.v))
	}
	return sb.String()
}

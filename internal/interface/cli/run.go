package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payflow/internal/adapter/gateway/mural"
	"payflow/internal/adapter/gateway/wallet"
	"payflow/internal/app/logging"
	"payflow/internal/domain/flow"
	"payflow/internal/interface/cli/ui"
	"payflow/internal/usecase/steps"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the interactive payout walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel())
			if err != nil {
				return err
			}
			defer log.Sync()

			client := mural.New(cfg.APIURL(), cfg.APIKey(), mural.WithLogger(log))
			factory := func() (wallet.Agent, error) {
				return wallet.NewAgent(cfg.WalletAgent())
			}
			runner := steps.NewRunner(client, factory, log)

			session := &runSession{
				runner:      runner,
				log:         log,
				journalPath: cfg.JournalPath(),
			}
			return session.loop(cmd.Context())
		},
	}
}

// menu item labels that are not step actions.
const (
	actionAccountDetails = "Fetch account details"
	actionListAccounts   = "List accounts"
	actionSelectApprover = "Select approver"
	actionShowJournal    = "Show full journal"
	actionClearJournal   = "Clear journal"
	actionQuit           = "Quit"
)

type runSession struct {
	runner        *steps.Runner
	log           *zap.Logger
	journalPath   string
	printed       int
	completeShown bool
}

// loop renders the tracker, offers the next action plus auxiliary ones,
// and executes the choice until the operator quits. Step failures are
// already journaled, so the loop prints the new journal entries and
// keeps going.
func (s *runSession) loop(ctx context.Context) error {
	for {
		state := s.runner.State()
		fmt.Println()
		fmt.Println(ui.Tracker(state))
		if details := ui.Details(state); details != "" {
			fmt.Println(details)
		}
		if agent := s.runner.Agent(); agent != nil {
			fmt.Println(ui.AgentStatus(wallet.StatusOf(agent)))
		}

		items := s.menuItems(state)
		sel := promptui.Select{
			Label: "Action",
			Items: items,
			Size:  len(items),
		}
		_, choice, err := sel.Run()
		if err != nil {
			// Ctrl-C or closed stdin ends the session.
			return s.finish()
		}

		if choice == actionQuit {
			return s.finish()
		}
		s.dispatch(ctx, choice)
		s.printNewEntries()

		if banner := s.completionBanner(); banner != "" {
			fmt.Println()
			fmt.Println(banner)
		}
	}
}

// completionBanner returns the terminal banner exactly once, on the
// iteration where the flow finished.
func (s *runSession) completionBanner() string {
	if !s.runner.State().Done() || s.completeShown {
		return ""
	}
	s.completeShown = true
	return ui.SuccessStyle.Render("Flow complete.")
}

func (s *runSession) menuItems(state *flow.State) []string {
	var items []string
	if !state.Done() {
		active := flow.Step(state.ActiveStep() - 1)
		items = append(items, fmt.Sprintf("Step %d: %s", active.Number(), active.Title()))
	}
	if state.AccountID != "" {
		items = append(items, actionAccountDetails)
	}
	if state.OrgID != "" {
		items = append(items, actionListAccounts)
	}
	if len(state.Approvers) > 1 && !state.Completed(flow.StepInitiateChallenge) {
		items = append(items, actionSelectApprover)
	}
	items = append(items, actionShowJournal, actionClearJournal, actionQuit)
	return items
}

func (s *runSession) dispatch(ctx context.Context, choice string) {
	switch choice {
	case actionAccountDetails:
		s.runner.GetAccountDetails(ctx)
	case actionListAccounts:
		s.runner.ListAccounts(ctx)
	case actionSelectApprover:
		s.selectApprover()
	case actionShowJournal:
		s.showJournal()
	case actionClearJournal:
		s.runner.Journal().Clear()
		s.printed = 0
	default:
		s.runStep(ctx)
	}
}

// runStep executes the active step, prompting for whatever local input
// it needs. Returned errors are ignored on purpose: every failure is
// already in the journal and the loop prints it.
func (s *runSession) runStep(ctx context.Context) {
	state := s.runner.State()
	if state.Done() {
		return
	}
	switch flow.Step(state.ActiveStep() - 1) {
	case flow.StepCreateOrganization:
		spec, err := promptOrganization()
		if err != nil {
			return
		}
		s.runner.CreateOrganization(ctx, spec)
	case flow.StepGetTosLink:
		s.runner.GetTosLink(ctx)
	case flow.StepCheckTosStatus:
		s.runner.CheckTosStatus(ctx)
	case flow.StepInitializeWalletAgent:
		s.runner.InitializeWalletAgent(ctx)
	case flow.StepInitiateChallenge:
		s.runner.InitiateChallenge(ctx)
	case flow.StepStartSession:
		code, err := promptLine("Verification code", "")
		if err != nil {
			return
		}
		s.runner.StartSession(ctx, code)
	case flow.StepGetKycLink:
		s.runner.GetKycLink(ctx)
	case flow.StepCheckKycStatus:
		s.runner.CheckKycStatus(ctx)
	case flow.StepCreateAccount:
		name, err := promptLine("Account name", "Main Account")
		if err != nil {
			return
		}
		description, err := promptLine("Description (optional)", "")
		if err != nil {
			return
		}
		s.runner.CreateAccount(ctx, name, description)
	case flow.StepProceedToFunding:
		s.runner.ProceedToFunding()
	case flow.StepCreatePayout:
		s.runner.CreatePayout(ctx)
	case flow.StepGetPayoutBody:
		s.runner.GetPayoutBody(ctx)
	case flow.StepSignPayout:
		s.runner.SignPayout(ctx)
	case flow.StepExecutePayout:
		s.runner.ExecutePayout(ctx)
	}
}

func (s *runSession) selectApprover() {
	state := s.runner.State()
	items := make([]string, len(state.Approvers))
	for i, a := range state.Approvers {
		items[i] = fmt.Sprintf("%s (%s)", a.Name, a.Email)
	}
	sel := promptui.Select{Label: "Approver", Items: items}
	idx, _, err := sel.Run()
	if err != nil {
		return
	}
	state.SelectApprover(idx)
	s.runner.Journal().Infof("selected approver: %s", state.Approvers[idx].Name)
}

func (s *runSession) showJournal() {
	for _, e := range s.runner.Journal().Entries() {
		fmt.Println(ui.Entry(e))
	}
	s.printed = s.runner.Journal().Len()
}

// printNewEntries prints what the last action appended.
func (s *runSession) printNewEntries() {
	for _, e := range s.runner.Journal().Since(s.printed) {
		fmt.Println(ui.Entry(e))
	}
	s.printed = s.runner.Journal().Len()
}

// finish exports the journal when an export path is configured.
func (s *runSession) finish() error {
	if s.journalPath == "" {
		return nil
	}
	if err := s.runner.Journal().Export(afero.NewOsFs(), s.journalPath); err != nil {
		s.log.Warn("journal export failed", zap.Error(err))
		return err
	}
	fmt.Println(ui.Muted("journal exported to " + s.journalPath))
	return nil
}

// promptOrganization collects the organization variant and its fields.
func promptOrganization() (flow.OrganizationSpec, error) {
	sel := promptui.Select{
		Label: "Organization type",
		Items: []string{"Individual", "Business"},
	}
	idx, _, err := sel.Run()
	if err != nil {
		return nil, err
	}

	if idx == 0 {
		first, err := promptLine("First name", "")
		if err != nil {
			return nil, err
		}
		last, err := promptLine("Last name", "")
		if err != nil {
			return nil, err
		}
		email, err := promptLine("Email", "")
		if err != nil {
			return nil, err
		}
		return flow.Individual{FirstName: first, LastName: last, Email: email}, nil
	}

	name, err := promptLine("Business name", "")
	if err != nil {
		return nil, err
	}
	email, err := promptLine("Business email", "")
	if err != nil {
		return nil, err
	}
	approvers, err := promptLine("Approvers JSON (optional)", "")
	if err != nil {
		return nil, err
	}
	return flow.Business{Name: name, Email: email, ApproversJSON: approvers}, nil
}

func promptLine(label, def string) (string, error) {
	p := promptui.Prompt{Label: label, Default: def}
	val, err := p.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(val), nil
}

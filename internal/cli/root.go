package cli

import (
	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/cli/formatter"
	"github.com/artscollective/grantbook/internal/config"
	"github.com/artscollective/grantbook/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Budget    service.BudgetService
	Adjust    service.AdjustmentService
	Snapshots service.SnapshotService
	Import    service.ImportService

	// Use-case overrides. When nil, the services above are used.
	BudgetView        app.BudgetViewUseCase
	FinalReport       app.FinalReportUseCase
	Adjustments       app.AdjustmentUseCase
	ProposalSnapshots app.SnapshotUseCase
	ImportProject     app.ImportProjectUseCase

	Settings     config.Settings
	SettingsPath string

	// IsInteractive reports whether prompts and the browser may be shown.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "grantbook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "grantbook",
		Short:         "Budgets, ticket projections and reports for arts projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newImportCmd(app),
		newBudgetCmd(app),
		newTicketsCmd(app),
		newActualsCmd(app),
		newSalesCmd(app),
		newVenuesCmd(app),
		newReportCmd(app),
		newAdjustCmd(app),
		newSnapshotCmd(app),
		newBrowseCmd(app),
		newConfigCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// display returns the presentation settings with every default filled in.
func (a *App) display() formatter.Display {
	s := a.Settings
	s.ApplyDefaults()
	return formatter.Display{Currency: s.General.CurrencySymbol, Labels: s}
}

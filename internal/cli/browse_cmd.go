package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse PROJECT",
		Short: "Browse a project's budget interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(context.Background(), a, args[0])
			if err != nil {
				return err
			}
			if !a.interactive() {
				return fmt.Errorf("browse needs an interactive terminal")
			}
			m := newBrowseModel(a.budgetViewUseCase(), projectID, a.display())
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

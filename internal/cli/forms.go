package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artscollective/grantbook/internal/cli/formatter"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func grantbookHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateAmount accepts a money amount, or blank when allowBlank is set.
func validateAmount(allowBlank bool) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			if allowBlank {
				return nil
			}
			return fmt.Errorf("an amount is required")
		}
		d, err := parseMoney(s)
		if err != nil {
			return err
		}
		if d.IsNegative() {
			return fmt.Errorf("amount must not be negative")
		}
		return nil
	}
}

func amountForm(title, description string, allowBlank bool, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Placeholder("0.00").
				Value(value).
				Validate(validateAmount(allowBlank)),
		),
	).WithTheme(grantbookHuhTheme()).WithShowHelp(false)
}

func statusForm(value *domain.BudgetItemStatus) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.BudgetItemStatus]().
				Title("Status").
				Options(
					huh.NewOption("Pending", domain.StatusPending),
					huh.NewOption("Approved", domain.StatusApproved),
					huh.NewOption("Denied", domain.StatusDenied),
				).
				Value(value),
		),
	).WithTheme(grantbookHuhTheme()).WithShowHelp(false)
}

// runForm runs f, mapping a user abort to a plain error.
func runForm(f *huh.Form) error {
	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("cancelled")
		}
		return err
	}
	return nil
}

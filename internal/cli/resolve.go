package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/repository"
)

// resolveProjectID accepts a full project UUID or a unique prefix of one.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("project ID is required")
	}
	p, err := app.Projects.Resolve(ctx, input)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "", fmt.Errorf("project not found: %q", input)
	case errors.Is(err, repository.ErrAmbiguous):
		return "", fmt.Errorf("project ID prefix %q is ambiguous", input)
	case err != nil:
		return "", err
	}
	return p.ID, nil
}

// resolveItemID matches a budget line by full ID or unique ID prefix.
func resolveItemID(b domain.DetailedBudget, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("budget item ID is required")
	}
	if _, ok := b.FindItem(input); ok {
		return input, nil
	}

	var matches []string
	collect := func(items []domain.BudgetItem) {
		for _, it := range items {
			if strings.HasPrefix(it.ID, input) {
				matches = append(matches, it.ID)
			}
		}
	}
	for _, cat := range domain.ItemRevenueCategories {
		collect(b.RevenueItems(cat))
	}
	for _, cat := range domain.ExpenseCategories {
		collect(b.ExpenseItems(cat))
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("budget item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("budget item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBudgetView struct {
	inner app.BudgetViewUseCase
	calls int
}

func (c *countingBudgetView) GetBudgetView(ctx context.Context, req app.BudgetViewRequest) (*app.BudgetViewResponse, error) {
	c.calls++
	return c.inner.GetBudgetView(ctx, req)
}

type failingBudgetView struct{}

func (failingBudgetView) GetBudgetView(context.Context, app.BudgetViewRequest) (*app.BudgetViewResponse, error) {
	return nil, errors.New("database is locked")
}

func browseDriver(t *testing.T) (*teatest.Driver, *countingBudgetView) {
	t.Helper()
	a := testApp(t)
	id := seedFestival(t, a)
	uc := &countingBudgetView{inner: a.Budget}
	return teatest.New(t, newBrowseModel(uc, id, a.display()), 120, 60), uc
}

func TestBrowse_OpensOnSummary(t *testing.T) {
	d, uc := browseDriver(t)

	assert.Equal(t, 1, uc.calls)
	d.RequireContains("Summer Festival")
	d.RequireContains("PROJECTED")
	d.RequireContains("$9,200.00")
	d.RequireContains("tab next")
}

func TestBrowse_TabsCycle(t *testing.T) {
	d, _ := browseDriver(t)

	d.Press("tab")
	d.RequireContains("Arts Council")
	d.RequireContains("projected from events")

	d.Press("tab")
	d.RequireContains("Artist fees")
	d.RequireContains("VENUES")

	d.Press("right")
	d.RequireContains("Projected audience")

	d.Press("l")
	d.RequireContains("Shop")

	d.Press("tab")
	d.RequireContains("PROJECTED")

	d.Press("shift+tab")
	d.RequireContains("Shop")
}

func TestBrowse_NumberKeysJump(t *testing.T) {
	d, _ := browseDriver(t)

	d.Press("4")
	d.RequireContains("Projected audience")
	d.Press("2")
	d.RequireContains("Arts Council")
	d.Press("1")
	d.RequireContains("PROJECTED")
}

func TestBrowse_ReloadRecomputes(t *testing.T) {
	d, uc := browseDriver(t)

	d.Press("r")
	assert.Equal(t, 2, uc.calls)
	d.RequireContains("$9,200.00")
}

func TestBrowse_Quit(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			d, _ := browseDriver(t)
			require.False(t, d.Quit())
			d.Press(k)
			assert.True(t, d.Quit())
		})
	}
}

func TestBrowse_ShowsLoadError(t *testing.T) {
	d := teatest.New(t, newBrowseModel(failingBudgetView{}, "p", testApp(t).display()), 80, 20)
	d.RequireContains("Error: database is locked")
}

func TestBrowse_LoadingBeforeData(t *testing.T) {
	m := newBrowseModel(failingBudgetView{}, "p", testApp(t).display())
	assert.Contains(t, m.content(), "Loading")
}

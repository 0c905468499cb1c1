package cli

import (
	"context"
	"strings"

	"github.com/artscollective/grantbook/internal/app"
	"github.com/artscollective/grantbook/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type browseTab int

const (
	tabSummary browseTab = iota
	tabRevenue
	tabExpenses
	tabTickets
	tabSales
)

var browseTabNames = []string{"Summary", "Revenue", "Expenses", "Tickets", "Sales"}

// budgetLoadedMsg carries a freshly computed budget view.
type budgetLoadedMsg struct {
	view *app.BudgetViewResponse
	err  error
}

type browseKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Jump   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Jump, k.Reload, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// browseModel is a tabbed, scrollable view of one project's budget.
type browseModel struct {
	useCase   app.BudgetViewUseCase
	projectID string
	display   formatter.Display

	keys     browseKeyMap
	help     help.Model
	viewport viewport.Model

	tab     browseTab
	view    *app.BudgetViewResponse
	err     error
	loading bool
}

// Rows taken by the tab bar and the help footer.
const browseChromeHeight = 4

func newBrowseModel(uc app.BudgetViewUseCase, projectID string, d formatter.Display) *browseModel {
	return &browseModel{
		useCase:   uc,
		projectID: projectID,
		display:   d,
		keys:      defaultBrowseKeys(),
		help:      help.New(),
		viewport:  viewport.New(0, 0),
		loading:   true,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load()
}

func (m *browseModel) load() tea.Cmd {
	uc, projectID := m.useCase, m.projectID
	return func() tea.Msg {
		view, err := uc.GetBudgetView(context.Background(), app.BudgetViewRequest{ProjectID: projectID})
		return budgetLoadedMsg{view: view, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-browseChromeHeight, 1)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case budgetLoadedMsg:
		m.loading = false
		m.view, m.err = msg.view, msg.err
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectTab((m.tab + 1) % browseTab(len(browseTabNames)))
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectTab((m.tab + browseTab(len(browseTabNames)) - 1) % browseTab(len(browseTabNames)))
			return m, nil
		case key.Matches(msg, m.keys.Jump):
			m.selectTab(browseTab(msg.String()[0] - '1'))
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			m.refresh()
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *browseModel) selectTab(t browseTab) {
	m.tab = t
	m.refresh()
	m.viewport.GotoTop()
}

func (m *browseModel) refresh() {
	m.viewport.SetContent(m.content())
}

func (m *browseModel) content() string {
	switch {
	case m.err != nil:
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	case m.loading || m.view == nil:
		return formatter.Dim("Loading…")
	}

	d, v := m.display, m.view
	switch m.tab {
	case tabRevenue:
		return formatter.FormatRevenueLines(d, v.Budget, v.Evaluation)
	case tabExpenses:
		return formatter.FormatExpenseLines(d, v.Budget, v.Evaluation) + "\n" +
			formatter.Header("Venues") + "\n" + formatter.FormatVenueCosts(d, v.Evaluation.VenueCosts)
	case tabTickets:
		return formatter.FormatTickets(d, v.Evaluation.Tickets)
	case tabSales:
		return formatter.FormatSales(d, v.Evaluation.Sales)
	default:
		return formatter.Bold(v.Project.Name) + "\n\n" + formatter.FormatSummary(d, v.Evaluation)
	}
}

var (
	activeTabStyle   = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

func (m *browseModel) View() string {
	tabs := make([]string, len(browseTabNames))
	for i, name := range browseTabNames {
		if browseTab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return strings.Join(tabs, "   ") + "\n\n" + m.viewport.View() + "\n" + m.help.View(m.keys)
}

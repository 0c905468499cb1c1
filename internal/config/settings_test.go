package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/artscollective/grantbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, "$", s.General.CurrencySymbol)
	assert.Equal(t, "Ticket Sales", s.RevenueLabel(domain.RevenueTickets))
	assert.Equal(t, "Professional Development", s.ExpenseLabel(domain.ExpenseProfessionalDevelopment))
}

func TestLoad_PartialFileKeepsDefaultsForTheRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[general]
currency_symbol = "€"

[labels.revenue]
grants = "Subventions"

[labels.expenses]
travel = "Déplacements"

[logging]
use_cases = true
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "€", s.General.CurrencySymbol)
	assert.Equal(t, "Subventions", s.RevenueLabel(domain.RevenueGrants))
	assert.Equal(t, "Sales", s.RevenueLabel(domain.RevenueSales))
	assert.Equal(t, "Déplacements", s.ExpenseLabel(domain.ExpenseTravel))
	assert.Equal(t, "Research", s.ExpenseLabel(domain.ExpenseResearch))
	assert.True(t, s.Logging.UseCases)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general\n"), 0o644))

	s, err := Load(path)
	assert.ErrorContains(t, err, "parsing settings")
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	s := DefaultSettings()
	s.General.DBPath = "/tmp/books.db"
	s.Labels.Expenses.Production = "Staging"

	require.NoError(t, Save(path, s))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestPath(t *testing.T) {
	t.Setenv("GRANTBOOK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "grantbook", "settings.toml"), Path())

	t.Setenv("GRANTBOOK_CONFIG", "/etc/grantbook.toml")
	assert.Equal(t, "/etc/grantbook.toml", Path())
}

func TestDBPath(t *testing.T) {
	t.Setenv("GRANTBOOK_DB", "")
	s := DefaultSettings()

	p, err := DBPath(s)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".grantbook", "grantbook.db"), filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p)))

	s.General.DBPath = "/data/books.db"
	p, err = DBPath(s)
	require.NoError(t, err)
	assert.Equal(t, "/data/books.db", p)

	t.Setenv("GRANTBOOK_DB", "/env/books.db")
	p, err = DBPath(s)
	require.NoError(t, err)
	assert.Equal(t, "/env/books.db", p)
}

func TestUseCaseLogging(t *testing.T) {
	s := DefaultSettings()
	t.Setenv("GRANTBOOK_LOG_USECASES", "")
	assert.False(t, UseCaseLogging(s))

	s.Logging.UseCases = true
	assert.True(t, UseCaseLogging(s))

	t.Setenv("GRANTBOOK_LOG_USECASES", "0")
	assert.False(t, UseCaseLogging(s))

	s.Logging.UseCases = false
	t.Setenv("GRANTBOOK_LOG_USECASES", "1")
	assert.True(t, UseCaseLogging(s))
}

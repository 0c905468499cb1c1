// Package config stores user settings in a TOML file: display labels for
// budget categories, the currency symbol, the database location and
// logging switches.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/artscollective/grantbook/internal/domain"
)

type Settings struct {
	General GeneralSettings `toml:"general"`
	Labels  LabelSettings   `toml:"labels"`
	Logging LoggingSettings `toml:"logging"`
}

type GeneralSettings struct {
	DBPath         string `toml:"db_path,omitempty"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// LabelSettings are display names only; category keys never change.
type LabelSettings struct {
	Revenue  RevenueLabels `toml:"revenue"`
	Expenses ExpenseLabels `toml:"expenses"`
}

type RevenueLabels struct {
	Grants        string `toml:"grants"`
	Tickets       string `toml:"tickets"`
	Sales         string `toml:"sales"`
	Fundraising   string `toml:"fundraising"`
	Contributions string `toml:"contributions"`
}

type ExpenseLabels struct {
	ProfessionalFees        string `toml:"professional_fees"`
	Travel                  string `toml:"travel"`
	Production              string `toml:"production"`
	Administration          string `toml:"administration"`
	Research                string `toml:"research"`
	ProfessionalDevelopment string `toml:"professional_development"`
}

type LoggingSettings struct {
	UseCases bool `toml:"use_cases"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	var s Settings
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills every empty field with its default, leaving values
// read from a file in place.
func (s *Settings) ApplyDefaults() {
	s.General.CurrencySymbol = domain.CoalesceStr(s.General.CurrencySymbol, "$")

	r := &s.Labels.Revenue
	r.Grants = domain.CoalesceStr(r.Grants, "Grants")
	r.Tickets = domain.CoalesceStr(r.Tickets, "Ticket Sales")
	r.Sales = domain.CoalesceStr(r.Sales, "Sales")
	r.Fundraising = domain.CoalesceStr(r.Fundraising, "Fundraising")
	r.Contributions = domain.CoalesceStr(r.Contributions, "Contributions")

	e := &s.Labels.Expenses
	e.ProfessionalFees = domain.CoalesceStr(e.ProfessionalFees, "Professional Fees")
	e.Travel = domain.CoalesceStr(e.Travel, "Travel")
	e.Production = domain.CoalesceStr(e.Production, "Production")
	e.Administration = domain.CoalesceStr(e.Administration, "Administration")
	e.Research = domain.CoalesceStr(e.Research, "Research")
	e.ProfessionalDevelopment = domain.CoalesceStr(e.ProfessionalDevelopment, "Professional Development")
}

// RevenueLabel returns the display name of a revenue category.
func (s Settings) RevenueLabel(cat domain.RevenueCategory) string {
	r := s.Labels.Revenue
	switch cat {
	case domain.RevenueGrants:
		return r.Grants
	case domain.RevenueTickets:
		return r.Tickets
	case domain.RevenueSales:
		return r.Sales
	case domain.RevenueFundraising:
		return r.Fundraising
	case domain.RevenueContributions:
		return r.Contributions
	default:
		return string(cat)
	}
}

// ExpenseLabel returns the display name of an expense category.
func (s Settings) ExpenseLabel(cat domain.ExpenseCategory) string {
	e := s.Labels.Expenses
	switch cat {
	case domain.ExpenseProfessionalFees:
		return e.ProfessionalFees
	case domain.ExpenseTravel:
		return e.Travel
	case domain.ExpenseProduction:
		return e.Production
	case domain.ExpenseAdministration:
		return e.Administration
	case domain.ExpenseResearch:
		return e.Research
	case domain.ExpenseProfessionalDevelopment:
		return e.ProfessionalDevelopment
	default:
		return string(cat)
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "grantbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "grantbook")
}

// Path returns the settings file location. GRANTBOOK_CONFIG wins over the
// XDG default.
func Path() string {
	if p := os.Getenv("GRANTBOOK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "settings.toml")
}

// Load reads the settings at path, returning defaults if it doesn't exist.
func Load(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("reading settings: %w", err)
	}

	if _, err := toml.Decode(string(data), &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	s.ApplyDefaults()
	return s, nil
}

// Save writes s to path, creating the parent directory.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

// DBPath returns the database location: GRANTBOOK_DB, then the settings
// file, then ~/.grantbook/grantbook.db.
func DBPath(s Settings) (string, error) {
	if p := os.Getenv("GRANTBOOK_DB"); p != "" {
		return p, nil
	}
	if s.General.DBPath != "" {
		return s.General.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".grantbook", "grantbook.db"), nil
}

// UseCaseLogging reports whether service use cases should be logged.
func UseCaseLogging(s Settings) bool {
	switch os.Getenv("GRANTBOOK_LOG_USECASES") {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return s.Logging.UseCases
}

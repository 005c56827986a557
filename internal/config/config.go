package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingCredential is returned when a provider credential cannot be resolved.
var ErrMissingCredential = errors.New("missing credential")

// DefaultLanguages are searched when none are configured
var DefaultLanguages = []string{
	"Python", "Java", "JavaScript", "C#", "C++",
	"Ruby", "PHP", "Swift", "Go", "Kotlin",
}

// Config contains runtime settings for the CLI and the MCP server
type Config struct {
	LogLevel  string   `yaml:"log_level"`
	Languages []string `yaml:"languages"`

	// RequestsPerSecond <= 0 disables pacing
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`

	Host string `yaml:"host"` // default 0.0.0.0
	Port string `yaml:"port"` // default PORT env or 8080

	HeadHunter HeadHunter `yaml:"headhunter"`
	SuperJob   SuperJob   `yaml:"superjob"`
	Export     Export     `yaml:"export"`
}

type HeadHunter struct {
	Title     string `yaml:"title"`
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	Area      int    `yaml:"area"`
	Currency  string `yaml:"currency"`
	PageSize  int    `yaml:"page_size"`
}

type SuperJob struct {
	Title     string `yaml:"title"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Town      int    `yaml:"town"`
	Catalogue int    `yaml:"catalogue"`
	PageSize  int    `yaml:"page_size"`
	// KeyringAccount names the OS keychain entry holding the key.
	KeyringAccount string `yaml:"keyring_account"`
}

// Export holds the optional report sinks; an empty section disables the sink.
type Export struct {
	CSVPath string `yaml:"csv_path"`
	Neo4j   struct {
		URI      string `yaml:"uri"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"neo4j"`
	Sheets struct {
		CredentialsPath string `yaml:"credentials_path"`
		SpreadsheetID   string `yaml:"spreadsheet_id"`
		Tab             string `yaml:"tab"`
	} `yaml:"sheets"`
}

// Neo4jEnabled reports whether the graph sink is configured
func (e Export) Neo4jEnabled() bool {
	return e.Neo4j.URI != ""
}

func (e Export) SheetsEnabled() bool {
	return e.Sheets.CredentialsPath != "" && e.Sheets.SpreadsheetID != ""
}

func defaults() Config {
	return Config{
		LogLevel:       "info",
		Languages:      append([]string(nil), DefaultLanguages...),
		RequestTimeout: 30 * time.Second,
		Host:           "0.0.0.0",
		Port:           "8080",
		HeadHunter: HeadHunter{
			Title:    "HeadHunter Moscow",
			Area:     1,
			Currency: "RUR",
			PageSize: 100,
		},
		SuperJob: SuperJob{
			Title:     "SuperJob Moscow",
			Town:      4,
			Catalogue: 48,
			PageSize:  100,
		},
	}
}

// Load reads .env, the optional YAML file at path and the environment, in that
// order of increasing precedence.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	key, err := resolveSuperJobKey(cfg.SuperJob)
	if err != nil {
		return cfg, err
	}
	cfg.SuperJob.APIKey = key

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.Host, "MCP_HOST")
	setString(&cfg.Port, "PORT")

	if v := os.Getenv("LANGUAGES"); v != "" {
		cfg.Languages = SplitList(v)
	}

	setString(&cfg.HeadHunter.BaseURL, "HH_BASE_URL")
	setString(&cfg.HeadHunter.UserAgent, "HH_USER_AGENT")
	setString(&cfg.SuperJob.BaseURL, "SUPERJOB_BASE_URL")
	setString(&cfg.SuperJob.KeyringAccount, "SUPERJOB_KEYRING_ACCOUNT")

	// API_KEY is the variable name older deployments used.
	setString(&cfg.SuperJob.APIKey, "API_KEY")
	setString(&cfg.SuperJob.APIKey, "SUPERJOB_API_KEY")

	setString(&cfg.Export.CSVPath, "CSV_PATH")
	setString(&cfg.Export.Neo4j.URI, "NEO4J_URI")
	setString(&cfg.Export.Neo4j.Username, "NEO4J_USERNAME")
	setString(&cfg.Export.Neo4j.Password, "NEO4J_PASSWORD")
	setString(&cfg.Export.Sheets.CredentialsPath, "GOOGLE_SHEETS_CREDENTIALS_PATH")
	setString(&cfg.Export.Sheets.SpreadsheetID, "GOOGLE_SHEETS_SPREADSHEET_ID")
	setString(&cfg.Export.Sheets.Tab, "GOOGLE_SHEETS_TAB")

	var errs []error
	for name, dst := range map[string]*int{
		"HH_AREA":            &cfg.HeadHunter.Area,
		"SUPERJOB_TOWN":      &cfg.SuperJob.Town,
		"SUPERJOB_CATALOGUE": &cfg.SuperJob.Catalogue,
	} {
		if err := setInt(dst, name); err != nil {
			errs = append(errs, err)
		}
	}

	if v := os.Getenv("REQUESTS_PER_SECOND"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid REQUESTS_PER_SECOND %q: %w", v, err))
		} else {
			cfg.RequestsPerSecond = rps
		}
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err))
		} else {
			cfg.RequestTimeout = d
		}
	}

	return errors.Join(errs...)
}

// Validate checks the settings every entry point relies on
func (c Config) Validate() error {
	if strings.TrimSpace(c.SuperJob.APIKey) == "" {
		return fmt.Errorf("%w: SUPERJOB_API_KEY is not set", ErrMissingCredential)
	}

	var problems []string
	if len(c.Languages) == 0 {
		problems = append(problems, "at least one language is required")
	}
	if c.HeadHunter.PageSize <= 0 {
		problems = append(problems, "headhunter page size must be positive")
	}
	if c.SuperJob.PageSize <= 0 {
		problems = append(problems, "superjob page size must be positive")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "request timeout must be positive")
	}
	if c.Export.Neo4jEnabled() && (c.Export.Neo4j.Username == "" || c.Export.Neo4j.Password == "") {
		problems = append(problems, "NEO4J_USERNAME and NEO4J_PASSWORD are required with NEO4J_URI")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// SplitList splits a comma separated list, dropping blanks
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func setString(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func setInt(dst *int, name string) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = n
	return nil
}

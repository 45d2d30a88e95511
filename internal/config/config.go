// Package config resolves folio's settings from defaults, a YAML file and
// FOLIO_* environment variables, remembering where each value came from.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL  = "http://localhost:5000/api"
	ConfigFileName = "config.yml"
	EnvConfigPath  = "FOLIO_CONFIG"
)

// Value sources, lowest precedence first.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "environment"
)

// PageSizes holds the rows per page of each list screen.
type PageSizes struct {
	Skills   int `yaml:"skills" json:"skills"`
	Journey  int `yaml:"journey" json:"journey"`
	Projects int `yaml:"projects" json:"projects"`
	Contacts int `yaml:"contacts" json:"contacts"`
}

// Config holds all folio settings.
type Config struct {
	// APIURL is the base address of the portfolio API
	APIURL string `yaml:"api_url" json:"api_url"`

	// TokenPath is where the bearer token is stored
	TokenPath string `yaml:"token_path" json:"token_path"`

	// LogFile receives the structured log; the terminal belongs to the UI
	LogFile string `yaml:"log_file" json:"log_file"`

	LogLevel string `yaml:"log_level" json:"log_level"`

	// Timeout bounds each API request
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// RequestsPerSecond throttles API calls; 0 disables the limit
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`

	// AdminEmail pre-fills the login form
	AdminEmail string `yaml:"admin_email" json:"admin_email"`

	PageSize PageSizes `yaml:"page_size" json:"page_size"`

	sources        map[string]string
	configFilePath string
}

// Attribute is a resolved setting with its origin.
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Dir returns ~/.folio, the home of the token, config and log files.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

func newDefault(dir string) *Config {
	return &Config{
		APIURL:            DefaultAPIURL,
		TokenPath:         filepath.Join(dir, "token"),
		LogFile:           filepath.Join(dir, "folio.log"),
		LogLevel:          "info",
		Timeout:           30 * time.Second,
		RequestsPerSecond: 10,
		PageSize: PageSizes{
			Skills:   20,
			Journey:  10,
			Projects: 10,
			Contacts: 10,
		},
		sources: make(map[string]string),
	}
}

func attributeNames() []string {
	return []string{
		"api_url", "token_path", "log_file", "log_level", "timeout",
		"requests_per_second", "admin_email",
		"page_size.skills", "page_size.journey", "page_size.projects", "page_size.contacts",
	}
}

// Load resolves the configuration. path overrides the config file
// location; when empty FOLIO_CONFIG, then ~/.folio/config.yml is used. A
// missing file is not an error. Environment variables win over the file.
func Load(path string) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	cfg := newDefault(dir)
	for _, name := range attributeNames() {
		cfg.sources[name] = SourceDefault
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = filepath.Join(dir, ConfigFileName)
	}
	cfg.configFilePath = path

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("config.Load: parse %s: %w", path, err)
		}
		cfg.applyFileConfig(&file)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if err := cfg.applyEnvConfig(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotenv loads KEY=VALUE pairs from the given .env files into the
// environment without overriding variables already set. Missing files are
// skipped.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config.LoadDotenv: %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) applyFileConfig(file *Config) {
	if file.APIURL != "" {
		c.APIURL = file.APIURL
		c.sources["api_url"] = SourceFile
	}
	if file.TokenPath != "" {
		c.TokenPath = expandHome(file.TokenPath)
		c.sources["token_path"] = SourceFile
	}
	if file.LogFile != "" {
		c.LogFile = expandHome(file.LogFile)
		c.sources["log_file"] = SourceFile
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = SourceFile
	}
	if file.Timeout != 0 {
		c.Timeout = file.Timeout
		c.sources["timeout"] = SourceFile
	}
	if file.RequestsPerSecond != 0 {
		c.RequestsPerSecond = file.RequestsPerSecond
		c.sources["requests_per_second"] = SourceFile
	}
	if file.AdminEmail != "" {
		c.AdminEmail = file.AdminEmail
		c.sources["admin_email"] = SourceFile
	}
	if file.PageSize.Skills != 0 {
		c.PageSize.Skills = file.PageSize.Skills
		c.sources["page_size.skills"] = SourceFile
	}
	if file.PageSize.Journey != 0 {
		c.PageSize.Journey = file.PageSize.Journey
		c.sources["page_size.journey"] = SourceFile
	}
	if file.PageSize.Projects != 0 {
		c.PageSize.Projects = file.PageSize.Projects
		c.sources["page_size.projects"] = SourceFile
	}
	if file.PageSize.Contacts != 0 {
		c.PageSize.Contacts = file.PageSize.Contacts
		c.sources["page_size.contacts"] = SourceFile
	}
}

func (c *Config) applyEnvConfig() error {
	if val := os.Getenv("FOLIO_API_URL"); val != "" {
		c.APIURL = val
		c.sources["api_url"] = SourceEnv
	}
	if val := os.Getenv("FOLIO_TOKEN_PATH"); val != "" {
		c.TokenPath = expandHome(val)
		c.sources["token_path"] = SourceEnv
	}
	if val := os.Getenv("FOLIO_LOG_FILE"); val != "" {
		c.LogFile = expandHome(val)
		c.sources["log_file"] = SourceEnv
	}
	if val := os.Getenv("FOLIO_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = SourceEnv
	}
	if val := os.Getenv("FOLIO_TIMEOUT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("config: FOLIO_TIMEOUT: %w", err)
		}
		c.Timeout = d
		c.sources["timeout"] = SourceEnv
	}
	if val := os.Getenv("FOLIO_REQUESTS_PER_SECOND"); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("config: FOLIO_REQUESTS_PER_SECOND: %w", err)
		}
		c.RequestsPerSecond = f
		c.sources["requests_per_second"] = SourceEnv
	}
	if val := os.Getenv("FOLIO_ADMIN_EMAIL"); val != "" {
		c.AdminEmail = val
		c.sources["admin_email"] = SourceEnv
	}
	sizes := []struct {
		env, name string
		dst       *int
	}{
		{"FOLIO_PAGE_SIZE_SKILLS", "page_size.skills", &c.PageSize.Skills},
		{"FOLIO_PAGE_SIZE_JOURNEY", "page_size.journey", &c.PageSize.Journey},
		{"FOLIO_PAGE_SIZE_PROJECTS", "page_size.projects", &c.PageSize.Projects},
		{"FOLIO_PAGE_SIZE_CONTACTS", "page_size.contacts", &c.PageSize.Contacts},
	}
	for _, s := range sizes {
		val := os.Getenv(s.env)
		if val == "" {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("config: %s: %w", s.env, err)
		}
		*s.dst = n
		c.sources[s.name] = SourceEnv
	}
	return nil
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api_url: %q", c.APIURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("invalid requests_per_second: %v", c.RequestsPerSecond)
	}
	for name, n := range map[string]int{
		"page_size.skills":   c.PageSize.Skills,
		"page_size.journey":  c.PageSize.Journey,
		"page_size.projects": c.PageSize.Projects,
		"page_size.contacts": c.PageSize.Contacts,
	} {
		if n < 1 {
			return fmt.Errorf("invalid %s: %d", name, n)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}
	return nil
}

// ConfigFilePath returns the path of the config file consulted.
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns where a setting came from.
func (c *Config) Source(name string) string {
	if s, ok := c.sources[name]; ok {
		return s
	}
	return SourceDefault
}

// Attributes returns every setting with its value and source.
func (c *Config) Attributes() []Attribute {
	attr := func(name, value string) Attribute {
		return Attribute{Name: name, Value: value, Source: c.Source(name)}
	}
	return []Attribute{
		attr("api_url", c.APIURL),
		attr("token_path", c.TokenPath),
		attr("log_file", c.LogFile),
		attr("log_level", c.LogLevel),
		attr("timeout", c.Timeout.String()),
		attr("requests_per_second", strconv.FormatFloat(c.RequestsPerSecond, 'f', -1, 64)),
		attr("admin_email", c.AdminEmail),
		attr("page_size.skills", strconv.Itoa(c.PageSize.Skills)),
		attr("page_size.journey", strconv.Itoa(c.PageSize.Journey)),
		attr("page_size.projects", strconv.Itoa(c.PageSize.Projects)),
		attr("page_size.contacts", strconv.Itoa(c.PageSize.Contacts)),
	}
}

// FormatText renders the settings as an aligned table.
func (c *Config) FormatText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Config file: %s\n\n", c.configFilePath)
	fmt.Fprintf(&sb, "%-22s %-40s %s\n", "NAME", "VALUE", "SOURCE")
	fmt.Fprintf(&sb, "%-22s %-40s %s\n", "----", "-----", "------")
	for _, a := range c.Attributes() {
		value := a.Value
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(&sb, "%-22s %-40s %s\n", a.Name, value, a.Source)
	}
	return sb.String()
}

// FormatJSON renders the settings as indented JSON.
func (c *Config) FormatJSON() (string, error) {
	result := map[string]any{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/phenrril/vendorsync/internal/domain"
)

const (
	defaultBatchSize  = 10
	defaultReportPath = "import_report.json"
)

type ImportSettings struct {
	BatchSize      int  `json:"batch_size"`
	CreateVariants bool `json:"create_variants"`
	ImageImport    bool `json:"image_import"`
}

type Config struct {
	AgentName         string         `json:"agent_name"`
	Vendor            string         `json:"vendor"`
	DataSource        string         `json:"data_source"`
	SourceFormat      string         `json:"source_format,omitempty"` // "json" o "xlsx"
	RootCategory      string         `json:"root_category,omitempty"`
	ReportPath        string         `json:"report_path,omitempty"`
	ImportSettings    ImportSettings `json:"import_settings"`
	ProductCategories []string       `json:"product_categories,omitempty"`
}

// Load lee la configuración del agente desde un archivo JSON (config.json).
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigError{Path: path, Err: err}
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, &domain.ConfigError{Path: path, Err: err}
	}

	if err := cfg.validate(); err != nil {
		return nil, &domain.ConfigError{Path: path, Err: err}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Vendor == "" {
		return errors.New("vendor vacío")
	}
	if c.DataSource == "" {
		return errors.New("data_source vacío")
	}
	if c.ImportSettings.BatchSize < 0 {
		return fmt.Errorf("batch_size inválido: %d", c.ImportSettings.BatchSize)
	}
	switch c.SourceFormat {
	case "", "json", "xlsx":
	default:
		return fmt.Errorf("source_format inválido: %q", c.SourceFormat)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.ImportSettings.BatchSize == 0 {
		c.ImportSettings.BatchSize = defaultBatchSize
	}
	if c.SourceFormat == "" {
		c.SourceFormat = "json"
	}
	if c.ReportPath == "" {
		c.ReportPath = defaultReportPath
	}
	if c.AgentName == "" {
		c.AgentName = c.Vendor + " Product Import Manager"
	}
	if c.RootCategory == "" {
		c.RootCategory = c.Vendor + " Products"
	}
}

// Getenv con default, mismo helper que usa el resto del proyecto para
// credenciales que no van en config.json.
func Getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

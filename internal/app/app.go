package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/phenrril/vendorsync/internal/adapters/erp/odoo"
	"github.com/phenrril/vendorsync/internal/adapters/repo/postgres"
	"github.com/phenrril/vendorsync/internal/adapters/scraper"
	"github.com/phenrril/vendorsync/internal/adapters/source/jsonfile"
	"github.com/phenrril/vendorsync/internal/adapters/source/xlsxfile"
	"github.com/phenrril/vendorsync/internal/agents/flair"
	"github.com/phenrril/vendorsync/internal/config"
	"github.com/phenrril/vendorsync/internal/domain"
	"github.com/phenrril/vendorsync/internal/usecase"
)

type App struct {
	Cfg      *config.Config
	ImportUC *usecase.ImportUC
}

func NewApp(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	var source domain.ProductSource
	switch cfg.SourceFormat {
	case "xlsx":
		source = xlsxfile.New(cfg.DataSource, logger)
	default:
		source = jsonfile.New(cfg.DataSource, logger)
	}

	agent, err := buildAgent(cfg, source, logger)
	if err != nil {
		return nil, err
	}

	odooURL := config.Getenv("ODOO_URL", "http://localhost:8069")
	catalog := odoo.NewClient(
		odooURL,
		os.Getenv("ODOO_DB"),
		os.Getenv("ODOO_LOGIN"),
		os.Getenv("ODOO_API_KEY"),
		logger,
	)

	var runs domain.RunRepo
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			logger.Warn().Err(err).Msg("run history disabled, could not connect to database")
		} else {
			repo := postgres.NewRunRepo(db)
			if err := repo.Migrate(); err != nil {
				return nil, err
			}
			runs = repo
		}
	}

	var images domain.ImageFinder
	if cfg.ImportSettings.ImageImport {
		images = scraper.NewProductImageScraper()
	}

	uc := &usecase.ImportUC{
		Agent:   agent,
		Catalog: catalog,
		Images:  images,
		Runs:    runs,
		Cfg:     cfg,
		Log:     logger,
	}

	return &App{Cfg: cfg, ImportUC: uc}, nil
}

func buildAgent(cfg *config.Config, source domain.ProductSource, logger zerolog.Logger) (domain.VendorAgent, error) {
	switch strings.ToLower(cfg.Vendor) {
	case "flair":
		return flair.NewAgent(source, logger), nil
	default:
		return nil, fmt.Errorf("vendor no soportado: %q", cfg.Vendor)
	}
}

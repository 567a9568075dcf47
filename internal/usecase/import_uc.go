package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/phenrril/vendorsync/internal/config"
	"github.com/phenrril/vendorsync/internal/domain"
)

// Atributos fijos que se aprovisionan antes de importar. "Size" no tiene
// valores predefinidos, se alimenta de cada producto.
var defaultAttributes = []struct {
	name   string
	values []string
}{
	{"Glass Type", []string{"Clear Glass", "Matte Black Glass", "Frosted Glass"}},
	{"Door Configuration", []string{"Left", "Right", "Reversible"}},
	{"Frame Finish", []string{"Silver", "Matte Black", "Chrome", "Brushed Nickel"}},
}

type ImportUC struct {
	Agent   domain.VendorAgent
	Catalog domain.CatalogService
	Images  domain.ImageFinder // opcional
	Runs    domain.RunRepo     // opcional
	Cfg     *config.Config
	Log     zerolog.Logger

	// Caches válidos solo por corrida, keyed por nombre.
	rootCategoryID int64
	categoryCache  map[string]int64
	attributeCache map[string]int64
}

// Batches particiona en lotes contiguos de tamaño fijo preservando el orden.
func Batches(products []domain.VendorProduct, size int) [][]domain.VendorProduct {
	if size <= 0 || len(products) == 0 {
		return nil
	}
	batches := make([][]domain.VendorProduct, 0, (len(products)+size-1)/size)
	for i := 0; i < len(products); i += size {
		end := i + size
		if end > len(products) {
			end = len(products)
		}
		batches = append(batches, products[i:end])
	}
	return batches
}

func (uc *ImportUC) Run(ctx context.Context) (domain.ImportStats, error) {
	stats := domain.ImportStats{StartTime: time.Now()}

	products, err := uc.Agent.LoadProducts(ctx)
	if err != nil {
		return stats, err
	}
	stats.Total = len(products)

	if err := uc.initializeCategories(ctx); err != nil {
		return stats, err
	}
	if err := uc.initializeAttributes(ctx); err != nil {
		return stats, err
	}

	uc.Log.Info().Int("total", stats.Total).Msg("starting import")

	batches := Batches(products, uc.Cfg.ImportSettings.BatchSize)
	for i, batch := range batches {
		uc.Log.Info().Int("batch", i+1).Int("size", len(batch)).Msg("processing batch")

		for _, p := range batch {
			if p.ProductName == "" {
				uc.Log.Warn().Msg("record without product_name, mapping degrades to defaults")
			}
			created, err := uc.importOne(ctx, p)
			switch {
			case err != nil:
				stats.Failed++
				uc.Log.Error().Err(err).Str("product", p.ProductName).Msg("import failed")
			case created:
				stats.Imported++
			default:
				stats.Skipped++
				uc.Log.Info().Str("product", p.ProductName).Msg("already exists, skipped")
			}
		}

		uc.reportProgress(stats)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime).String()

	uc.Log.Info().
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Str("duration", stats.Duration).
		Msg("import complete")

	uc.persistRun(ctx, stats)

	if err := uc.writeReport(stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func (uc *ImportUC) initializeCategories(ctx context.Context) error {
	uc.categoryCache = make(map[string]int64)

	rootID, err := uc.Catalog.GetOrCreateCategory(ctx, uc.Cfg.RootCategory, 0)
	if err != nil {
		return &domain.ExternalServiceError{Op: "create category", Err: err}
	}
	uc.rootCategoryID = rootID

	for _, name := range uc.Cfg.ProductCategories {
		id, err := uc.Catalog.GetOrCreateCategory(ctx, name, rootID)
		if err != nil {
			return &domain.ExternalServiceError{Op: "create category", Err: err}
		}
		uc.categoryCache[name] = id
	}
	return nil
}

func (uc *ImportUC) initializeAttributes(ctx context.Context) error {
	uc.attributeCache = make(map[string]int64)

	for _, attr := range defaultAttributes {
		id, err := uc.Catalog.CreateAttribute(ctx, attr.name, attr.values)
		if err != nil {
			return &domain.ExternalServiceError{Op: "create attribute", Err: err}
		}
		uc.attributeCache[attr.name] = id
	}
	return nil
}

// importOne devuelve true si el producto se creó, false si ya existía.
func (uc *ImportUC) importOne(ctx context.Context, p domain.VendorProduct) (bool, error) {
	existing, err := uc.findExisting(ctx, p)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	cp := uc.Agent.MapProduct(p)
	categID, err := uc.categoryID(ctx, cp.Category)
	if err != nil {
		return false, err
	}

	fields := map[string]any{
		"name":             cp.Name,
		"categ_id":         categID,
		"default_code":     cp.DefaultCode,
		"description_sale": cp.Description,
		"x_vendor":         uc.Agent.Vendor(),
		"x_product_url":    p.ProductURL,
	}
	if info := p.BasicInfo; info != nil {
		if info.GlassThickness != "" {
			fields["x_glass_thickness"] = info.GlassThickness
		}
		if info.Height != "" {
			fields["x_standard_height"] = info.Height
		}
	}

	productID, err := uc.Catalog.CreateProduct(ctx, fields)
	if err != nil {
		return false, &domain.ExternalServiceError{Op: "create product", Err: err}
	}
	uc.Log.Info().Str("product", cp.Name).Int64("id", productID).Msg("product created")

	uc.importImage(ctx, productID, p)

	if uc.Cfg.ImportSettings.CreateVariants {
		uc.createVariants(ctx, productID, p)
	}
	return true, nil
}

// Primero por SKU (corta la búsqueda por nombre), después por nombre exacto.
func (uc *ImportUC) findExisting(ctx context.Context, p domain.VendorProduct) (*domain.ProductSummary, error) {
	if opts := p.DoorOptions(); len(opts) > 0 && opts[0].Code != "" {
		sum, err := uc.Catalog.ProductByCode(ctx, opts[0].Code)
		switch {
		case err == nil:
			return sum, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, &domain.ExternalServiceError{Op: "search by code", Err: err}
		}
	}

	found, err := uc.Catalog.SearchProducts(ctx, "name", p.ProductName, 1)
	if err != nil {
		return nil, &domain.ExternalServiceError{Op: "search by name", Err: err}
	}
	if len(found) > 0 {
		return &found[0], nil
	}
	return nil, nil
}

func (uc *ImportUC) categoryID(ctx context.Context, name string) (int64, error) {
	if id, ok := uc.categoryCache[name]; ok {
		return id, nil
	}
	id, err := uc.Catalog.GetOrCreateCategory(ctx, name, uc.rootCategoryID)
	if err != nil {
		return 0, &domain.ExternalServiceError{Op: "create category", Err: err}
	}
	uc.categoryCache[name] = id
	return id, nil
}

// La imagen es mejor-esfuerzo: una falla acá no cuenta como registro fallido.
func (uc *ImportUC) importImage(ctx context.Context, productID int64, p domain.VendorProduct) {
	if !uc.Cfg.ImportSettings.ImageImport {
		return
	}

	path := filepath.Join(uc.Cfg.DataSource, imageFileName(p.ProductName))
	if _, err := os.Stat(path); err != nil {
		if uc.Images == nil || p.ProductURL == "" {
			return
		}
		if err := uc.Images.FetchImage(ctx, p.ProductURL, path); err != nil {
			uc.Log.Warn().Err(err).Str("product", p.ProductName).Msg("image fetch failed")
			return
		}
	}

	if err := uc.Catalog.UploadImage(ctx, productID, path); err != nil {
		uc.Log.Error().Err(err).Int64("product_id", productID).Msg("image upload failed")
		return
	}
	uc.Log.Info().Int64("product_id", productID).Msg("image uploaded")
}

func (uc *ImportUC) createVariants(ctx context.Context, templateID int64, p domain.VendorProduct) {
	count := 0
	for _, v := range uc.Agent.CreateVariants(p) {
		if _, err := uc.Catalog.CreateVariant(ctx, templateID, v.AttributeValues); err != nil {
			uc.Log.Error().Err(err).Str("variant", v.Name).Msg("variant creation failed")
			continue
		}
		count++
	}
	if count > 0 {
		uc.Log.Info().Int64("template_id", templateID).Int("variants", count).Msg("variants created")
	}
}

func (uc *ImportUC) reportProgress(stats domain.ImportStats) {
	processed := stats.Processed()
	rate := 0.0
	if processed > 0 {
		rate = float64(stats.Imported+stats.Skipped) / float64(processed) * 100
	}
	uc.Log.Info().
		Int("processed", processed).
		Int("total", stats.Total).
		Str("success_rate", fmt.Sprintf("%.1f%%", rate)).
		Msg("progress")
}

func (uc *ImportUC) persistRun(ctx context.Context, stats domain.ImportStats) {
	if uc.Runs == nil {
		return
	}
	run := domain.ImportRun{
		Vendor:     uc.Agent.Vendor(),
		Agent:      uc.Cfg.AgentName,
		DataSource: uc.Cfg.DataSource,
		Total:      stats.Total,
		Imported:   stats.Imported,
		Skipped:    stats.Skipped,
		Failed:     stats.Failed,
		StartedAt:  stats.StartTime,
		FinishedAt: stats.EndTime,
	}
	if err := uc.Runs.Save(ctx, &run); err != nil {
		uc.Log.Warn().Err(err).Msg("could not persist import run")
	}
}

func (uc *ImportUC) writeReport(stats domain.ImportStats) error {
	report := domain.Report{
		Agent:         uc.Cfg.AgentName,
		ImportSummary: stats,
		Timestamp:     time.Now().Format(time.RFC3339),
		DataSource:    uc.Cfg.DataSource,
	}
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(uc.Cfg.ReportPath, b, 0644); err != nil {
		return err
	}
	uc.Log.Info().Str("path", uc.Cfg.ReportPath).Msg("import report saved")
	return nil
}

func imageFileName(productName string) string {
	return strings.ReplaceAll(strings.ToLower(productName), " ", "_") + ".png"
}

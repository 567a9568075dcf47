package xlsxfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/vendorsync/internal/domain"
)

// Algunos exports del proveedor llegan como planilla en vez de JSON:
// hoja "Products" con una fila por producto y hoja "DoorOptions" con
// una fila por combinación producto/medida.
const workbookFile = "all_products.xlsx"

const (
	productsSheet = "Products"
	optionsSheet  = "DoorOptions"
)

type Source struct {
	dir string
	log zerolog.Logger
}

var _ domain.ProductSource = (*Source)(nil)

func New(dir string, log zerolog.Logger) *Source {
	return &Source{dir: dir, log: log}
}

func (s *Source) Path() string { return s.dir }

func (s *Source) Load(_ context.Context) ([]domain.VendorProduct, error) {
	if _, err := os.Stat(s.dir); err != nil {
		return nil, &domain.DataSourceError{Path: s.dir, Err: err}
	}

	path := filepath.Join(s.dir, workbookFile)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &domain.DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := f.GetRows(productsSheet)
	if err != nil {
		return nil, &domain.DataSourceError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &domain.DataSourceError{Path: path, Err: errors.New("hoja Products vacía")}
	}

	options, err := doorOptionsByProduct(f)
	if err != nil {
		return nil, &domain.DataSourceError{Path: path, Err: err}
	}

	// Columnas fijas: product_name, product_url, glass_thickness, height, glass_options.
	var products []domain.VendorProduct
	for _, row := range rows[1:] {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		p := domain.VendorProduct{
			ProductName: name,
			ProductURL:  cell(row, 1),
		}
		info := domain.BasicInfo{
			GlassThickness: cell(row, 2),
			Height:         cell(row, 3),
		}
		if raw := cell(row, 4); raw != "" {
			for _, g := range strings.Split(raw, ",") {
				if g = strings.TrimSpace(g); g != "" {
					info.GlassOptions = append(info.GlassOptions, g)
				}
			}
		}
		if info.GlassThickness != "" || info.Height != "" || len(info.GlassOptions) > 0 {
			p.BasicInfo = &info
		}
		if opts := options[name]; len(opts) > 0 {
			p.Specifications = &domain.Specifications{DoorOptions: opts}
		}
		products = append(products, p)
	}

	s.log.Info().Int("count", len(products)).Msg("loaded workbook catalog")
	return products, nil
}

func doorOptionsByProduct(f *excelize.File) (map[string][]domain.DoorOption, error) {
	rows, err := f.GetRows(optionsSheet)
	if err != nil {
		// La hoja de medidas es opcional.
		return nil, nil
	}
	out := make(map[string][]domain.DoorOption)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		name := cell(row, 0)
		if name == "" {
			continue
		}
		out[name] = append(out[name], domain.DoorOption{
			Code:       cell(row, 1),
			Size:       cell(row, 2),
			Adjustment: cell(row, 3),
		})
	}
	return out, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

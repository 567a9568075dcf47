package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/phenrril/vendorsync/internal/domain"
)

// Archivo agregado preferido; si no está, se cargan los JSON individuales.
const aggregateFile = "all_products.json"

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
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &domain.DataSourceError{Path: s.dir, Err: err}
	}

	aggregate := filepath.Join(s.dir, aggregateFile)
	data, err := os.ReadFile(aggregate)
	switch {
	case err == nil:
		var products []domain.VendorProduct
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, &domain.DataSourceError{Path: aggregate, Err: err}
		}
		s.log.Info().Int("count", len(products)).Msg("loaded aggregate catalog")
		return products, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, &domain.DataSourceError{Path: aggregate, Err: err}
	}

	// os.ReadDir ya ordena por nombre, la carga es estable.
	var products []domain.VendorProduct
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == aggregateFile || !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(s.dir, name)
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, &domain.DataSourceError{Path: path, Err: err}
		}
		var p domain.VendorProduct
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, &domain.DataSourceError{Path: path, Err: err}
		}
		products = append(products, p)
	}

	s.log.Info().Int("count", len(products)).Msg("loaded per-file catalog")
	return products, nil
}

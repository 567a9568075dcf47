package domain

import "context"

// ProductSource carga el catálogo completo del proveedor en memoria.
type ProductSource interface {
	Load(ctx context.Context) ([]VendorProduct, error)
	Path() string
}

// VendorAgent es el conjunto de capacidades que cada agente de proveedor
// implementa: cargar, mapear, generar variantes.
type VendorAgent interface {
	Vendor() string
	LoadProducts(ctx context.Context) ([]VendorProduct, error)
	MapProduct(p VendorProduct) CanonicalProduct
	CreateVariants(p VendorProduct) []Variant
}

// CatalogService es el colaborador externo (ERP) contra el que se hace el
// upsert del catálogo. Toda llamada puede fallar.
type CatalogService interface {
	SearchProducts(ctx context.Context, field, value string, limit int) ([]ProductSummary, error)
	ProductByCode(ctx context.Context, code string) (*ProductSummary, error)
	CreateProduct(ctx context.Context, fields map[string]any) (int64, error)
	UpdateProduct(ctx context.Context, id int64, fields map[string]any) error
	GetOrCreateCategory(ctx context.Context, name string, parentID int64) (int64, error)
	CreateAttribute(ctx context.Context, name string, values []string) (int64, error)
	CreateVariant(ctx context.Context, templateID int64, attributeValues map[string]string) (int64, error)
	UploadImage(ctx context.Context, productID int64, path string) error
}

// ImageFinder resuelve una imagen del producto a partir de su página web.
type ImageFinder interface {
	FetchImage(ctx context.Context, pageURL, destPath string) error
}

type RunRepo interface {
	Save(ctx context.Context, run *ImportRun) error
}

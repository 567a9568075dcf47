package domain

type DoorOption struct {
	Code       string `json:"code"`
	Size       string `json:"size"`
	Adjustment string `json:"adjustment"`
}

type BasicInfo struct {
	GlassThickness string   `json:"glass_thickness,omitempty"`
	Height         string   `json:"height,omitempty"`
	GlassOptions   []string `json:"glass_options,omitempty"`
}

type Specifications struct {
	DoorOptions []DoorOption `json:"door_options,omitempty"`
}

// VendorProduct es el registro crudo tal como llega del export del proveedor.
// Solo lectura después de la carga.
type VendorProduct struct {
	ProductName    string          `json:"product_name"`
	ProductURL     string          `json:"product_url,omitempty"`
	BasicInfo      *BasicInfo      `json:"basic_info,omitempty"`
	Specifications *Specifications `json:"specifications,omitempty"`
}

func (p VendorProduct) DoorOptions() []DoorOption {
	if p.Specifications == nil {
		return nil
	}
	return p.Specifications.DoorOptions
}

type Attribute struct {
	Name  string            `json:"attribute_name"`
	Value string            `json:"value"`
	Extra map[string]string `json:"extra_info,omitempty"`
}

type CanonicalProduct struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	DefaultCode string      `json:"default_code"`
	Description string      `json:"description"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

type Variant struct {
	Name            string            `json:"name"`
	DefaultCode     string            `json:"default_code"`
	AttributeValues map[string]string `json:"attribute_values"`
}

type ProductSummary struct {
	ID          int64
	Name        string
	DefaultCode string
}

package flair

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phenrril/vendorsync/internal/domain"
)

const DefaultCategory = "Shower Enclosures"

const codePrefix = "FLAIR-"

// Máximo de opciones de puerta listadas en la descripción.
const maxDescribedOptions = 5

type categoryRule struct {
	keyword string
	label   string
}

// El orden importa: gana la primera keyword que matchea.
var categoryRules = []categoryRule{
	{"bifold", "Bifold Doors"},
	{"sliding", "Sliding Doors"},
	{"slider", "Sliding Doors"},
	{"pivot", "Pivot Doors"},
	{"hinge", "Hinge Doors"},
	{"quadrant", "Quadrant Enclosures"},
	{"corner", "Corner Entry"},
}

var glassNames = map[string]string{
	"Silver":     "Clear Glass",
	"MatteBlack": "Matte Black Glass",
	"8mm":        "8mm Tempered Glass",
	"10mm":       "10mm Tempered Glass",
}

var nonAlnum = regexp.MustCompile(`[^A-Z0-9]`)

// Category infiere la categoría a partir del nombre del producto.
func Category(p domain.VendorProduct) string {
	name := strings.ToLower(p.ProductName)
	for _, r := range categoryRules {
		if strings.Contains(name, r.keyword) {
			return r.label
		}
	}
	return DefaultCategory
}

// DefaultCode extrae el SKU de la primera opción de puerta o lo sintetiza
// desde el nombre. Determinístico para el mismo input.
func DefaultCode(p domain.VendorProduct) string {
	if opts := p.DoorOptions(); len(opts) > 0 && opts[0].Code != "" {
		return opts[0].Code
	}

	words := strings.Fields(p.ProductName)
	if len(words) > 3 {
		words = words[:3]
	}
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 3 {
			w = w[:3]
		}
		parts = append(parts, strings.ToUpper(w))
	}
	return codePrefix + strings.Join(parts, "-")
}

// Description arma el texto de venta. Los campos ausentes omiten su línea.
func Description(p domain.VendorProduct) string {
	var lines []string

	if info := p.BasicInfo; info != nil {
		lines = append(lines, "Product Specifications:")
		if info.GlassThickness != "" {
			lines = append(lines, "- Glass Thickness: "+info.GlassThickness)
		}
		if info.Height != "" {
			lines = append(lines, "- Standard Height: "+info.Height)
		}
		if len(info.GlassOptions) > 0 {
			lines = append(lines, "- Glass Options: "+strings.Join(info.GlassOptions, ", "))
		}
	}

	if opts := p.DoorOptions(); len(opts) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "Available Configurations:")
		shown := opts
		if len(shown) > maxDescribedOptions {
			shown = shown[:maxDescribedOptions]
		}
		for _, opt := range shown {
			lines = append(lines, fmt.Sprintf("- %s: %s (Adj: %s)", opt.Code, opt.Size, opt.Adjustment))
		}
		if rest := len(opts) - maxDescribedOptions; rest > 0 {
			lines = append(lines, fmt.Sprintf("+%d more options", rest))
		}
	}

	if p.ProductURL != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "More details: "+p.ProductURL)
	}

	return strings.Join(lines, "\n")
}

// Attributes combina opciones de vidrio (pasadas por la tabla glassNames)
// y opciones de puerta con su info auxiliar, en ese orden.
func Attributes(p domain.VendorProduct) []domain.Attribute {
	var attrs []domain.Attribute

	if p.BasicInfo != nil {
		for _, g := range p.BasicInfo.GlassOptions {
			v := g
			if mapped, ok := glassNames[g]; ok {
				v = mapped
			}
			attrs = append(attrs, domain.Attribute{Name: "Glass Type", Value: v})
		}
	}

	for _, opt := range p.DoorOptions() {
		attrs = append(attrs, domain.Attribute{
			Name:  "Size",
			Value: opt.Size,
			Extra: map[string]string{
				"adjustment": opt.Adjustment,
				"code":       opt.Code,
			},
		})
	}

	return attrs
}

func MapProduct(p domain.VendorProduct) domain.CanonicalProduct {
	return domain.CanonicalProduct{
		Name:        p.ProductName,
		Category:    Category(p),
		DefaultCode: DefaultCode(p),
		Description: Description(p),
		Attributes:  Attributes(p),
	}
}

// Variants genera una variante por opción de puerta después de la primera:
// la primera opción es el producto base, nunca una variante.
func Variants(p domain.VendorProduct) []domain.Variant {
	opts := p.DoorOptions()
	if len(opts) < 2 {
		return nil
	}

	base := DefaultCode(p)
	variants := make([]domain.Variant, 0, len(opts)-1)
	for _, opt := range opts[1:] {
		variants = append(variants, domain.Variant{
			Name:        p.ProductName + " - " + opt.Size,
			DefaultCode: base + "-" + sizeToken(opt.Size),
			AttributeValues: map[string]string{
				"size":       opt.Size,
				"adjustment": opt.Adjustment,
				"code":       opt.Code,
			},
		})
	}
	return variants
}

func sizeToken(size string) string {
	return nonAlnum.ReplaceAllString(strings.ToUpper(size), "")
}

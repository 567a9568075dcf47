package flair

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phenrril/vendorsync/internal/domain"
)

func TestCategory(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Bifold Door Pro", "Bifold Doors"},
		{"Premium Sliding Door", "Sliding Doors"},
		{"Wall Slider 1200", "Sliding Doors"},
		{"Pivot Door Classic", "Pivot Doors"},
		{"Hinge Door Eco", "Hinge Doors"},
		{"Quadrant Enclosure 900", "Quadrant Enclosures"},
		{"Corner Entry 800", "Corner Entry"},
		{"Walk-In Panel", "Shower Enclosures"},
		{"", "Shower Enclosures"},
		// gana la keyword anterior en la lista, no la posición en el nombre
		{"Corner Sliding Door", "Sliding Doors"},
		{"SLIDING corner combo", "Sliding Doors"},
	}
	for _, c := range cases {
		got := Category(domain.VendorProduct{ProductName: c.name})
		assert.Equal(t, c.want, got, "name %q", c.name)
	}
}

func TestDefaultCode(t *testing.T) {
	withOption := domain.VendorProduct{
		ProductName: "Bifold Door Pro",
		Specifications: &domain.Specifications{
			DoorOptions: []domain.DoorOption{
				{Code: "ABC123", Size: "900mm", Adjustment: "20mm"},
			},
		},
	}
	assert.Equal(t, "ABC123", DefaultCode(withOption))

	noOptions := domain.VendorProduct{ProductName: "Bifold Door Pro"}
	assert.Equal(t, "FLAIR-BIF-DOO-PRO", DefaultCode(noOptions))

	short := domain.VendorProduct{ProductName: "Slider"}
	assert.Equal(t, "FLAIR-SLI", DefaultCode(short))

	// código vacío en la primera opción cae al sintetizado
	blankCode := domain.VendorProduct{
		ProductName: "Pivot Door",
		Specifications: &domain.Specifications{
			DoorOptions: []domain.DoorOption{{Size: "800mm"}},
		},
	}
	assert.Equal(t, "FLAIR-PIV-DOO", DefaultCode(blankCode))
}

func TestDescriptionOnlyHeight(t *testing.T) {
	p := domain.VendorProduct{
		ProductName: "Hinge Door",
		BasicInfo:   &domain.BasicInfo{Height: "1900mm"},
	}
	got := Description(p)
	assert.Equal(t, "Product Specifications:\n- Standard Height: 1900mm", got)
}

func TestDescriptionFull(t *testing.T) {
	p := domain.VendorProduct{
		ProductName: "Sliding Door Deluxe",
		ProductURL:  "https://example.com/sliding-deluxe",
		BasicInfo: &domain.BasicInfo{
			GlassThickness: "8mm",
			Height:         "1900mm",
			GlassOptions:   []string{"Silver", "MatteBlack"},
		},
		Specifications: &domain.Specifications{
			DoorOptions: []domain.DoorOption{
				{Code: "SD1000", Size: "1000mm", Adjustment: "20mm"},
				{Code: "SD1100", Size: "1100mm", Adjustment: "20mm"},
				{Code: "SD1200", Size: "1200mm", Adjustment: "20mm"},
				{Code: "SD1300", Size: "1300mm", Adjustment: "20mm"},
				{Code: "SD1400", Size: "1400mm", Adjustment: "20mm"},
				{Code: "SD1500", Size: "1500mm", Adjustment: "20mm"},
				{Code: "SD1600", Size: "1600mm", Adjustment: "20mm"},
			},
		},
	}
	got := Description(p)

	want := strings.Join([]string{
		"Product Specifications:",
		"- Glass Thickness: 8mm",
		"- Standard Height: 1900mm",
		"- Glass Options: Silver, MatteBlack",
		"",
		"Available Configurations:",
		"- SD1000: 1000mm (Adj: 20mm)",
		"- SD1100: 1100mm (Adj: 20mm)",
		"- SD1200: 1200mm (Adj: 20mm)",
		"- SD1300: 1300mm (Adj: 20mm)",
		"- SD1400: 1400mm (Adj: 20mm)",
		"+2 more options",
		"",
		"More details: https://example.com/sliding-deluxe",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestDescriptionEmptyProduct(t *testing.T) {
	assert.Equal(t, "", Description(domain.VendorProduct{ProductName: "Bare"}))
}

func TestAttributes(t *testing.T) {
	p := domain.VendorProduct{
		ProductName: "Quadrant 900",
		BasicInfo: &domain.BasicInfo{
			GlassOptions: []string{"Silver", "Bronze"},
		},
		Specifications: &domain.Specifications{
			DoorOptions: []domain.DoorOption{
				{Code: "Q900", Size: "900mm", Adjustment: "15mm"},
			},
		},
	}
	attrs := Attributes(p)
	if assert.Len(t, attrs, 3) {
		assert.Equal(t, domain.Attribute{Name: "Glass Type", Value: "Clear Glass"}, attrs[0])
		// valor sin mapeo pasa tal cual
		assert.Equal(t, domain.Attribute{Name: "Glass Type", Value: "Bronze"}, attrs[1])
		assert.Equal(t, "Size", attrs[2].Name)
		assert.Equal(t, "900mm", attrs[2].Value)
		assert.Equal(t, map[string]string{"adjustment": "15mm", "code": "Q900"}, attrs[2].Extra)
	}
}

func TestVariants(t *testing.T) {
	p := domain.VendorProduct{
		ProductName: "Bifold Door",
		Specifications: &domain.Specifications{
			DoorOptions: []domain.DoorOption{
				{Code: "BF760", Size: "760mm", Adjustment: "20mm"},
				{Code: "BF800", Size: "800mm", Adjustment: "20mm"},
				{Code: "BF900", Size: "900mm", Adjustment: "20mm"},
			},
		},
	}
	variants := Variants(p)
	if assert.Len(t, variants, 2) {
		assert.Equal(t, "Bifold Door - 800mm", variants[0].Name)
		assert.Equal(t, "BF760-800MM", variants[0].DefaultCode)
		assert.Equal(t, "800mm", variants[0].AttributeValues["size"])
		assert.Equal(t, "20mm", variants[0].AttributeValues["adjustment"])
		assert.Equal(t, "BF900-900MM", variants[1].DefaultCode)
	}
}

func TestVariantsNone(t *testing.T) {
	assert.Empty(t, Variants(domain.VendorProduct{ProductName: "Solo"}))

	single := domain.VendorProduct{
		ProductName: "Solo",
		Specifications: &domain.Specifications{
			DoorOptions: []domain.DoorOption{{Code: "S1", Size: "700mm"}},
		},
	}
	assert.Empty(t, Variants(single))
}

func TestMapProductIdempotent(t *testing.T) {
	p := domain.VendorProduct{
		ProductName: "Corner Entry 800",
		ProductURL:  "https://example.com/corner-800",
		BasicInfo: &domain.BasicInfo{
			GlassThickness: "6mm",
			Height:         "1850mm",
			GlassOptions:   []string{"Silver"},
		},
		Specifications: &domain.Specifications{
			DoorOptions: []domain.DoorOption{
				{Code: "CE800", Size: "800mm", Adjustment: "10mm"},
				{Code: "CE900", Size: "900mm", Adjustment: "10mm"},
			},
		},
	}

	first := MapProduct(p)
	second := MapProduct(p)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("mapping no determinístico:\n%#v\n%#v", first, second)
	}

	v1 := Variants(p)
	v2 := Variants(p)
	if !reflect.DeepEqual(v1, v2) {
		t.Fatalf("variantes no determinísticas:\n%#v\n%#v", v1, v2)
	}

	assert.NotEmpty(t, first.DefaultCode)
	assert.Equal(t, "Corner Entry", first.Category)
}

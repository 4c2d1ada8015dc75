package model

// TemplateVariant selects one of the named invoice layouts
type TemplateVariant string

const (
	TemplateModern    TemplateVariant = "modern"
	TemplateClassic   TemplateVariant = "classic"
	TemplateMinimal   TemplateVariant = "minimal"
	TemplateCorporate TemplateVariant = "corporate"
	TemplateCreative  TemplateVariant = "creative"
)

// TemplateVariants lists all known layouts in presentation order
func TemplateVariants() []TemplateVariant {
	return []TemplateVariant{
		TemplateModern,
		TemplateClassic,
		TemplateMinimal,
		TemplateCorporate,
		TemplateCreative,
	}
}

// Valid reports whether v is a known layout
func (v TemplateVariant) Valid() bool {
	switch v {
	case TemplateModern, TemplateClassic, TemplateMinimal, TemplateCorporate, TemplateCreative:
		return true
	}
	return false
}

// FontSize is the text size tier
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// Valid reports whether s is a known tier
func (s FontSize) Valid() bool {
	switch s {
	case FontSizeSmall, FontSizeMedium, FontSizeLarge:
		return true
	}
	return false
}

// Pixels returns the base font size for the tier
func (s FontSize) Pixels() int {
	switch s {
	case FontSizeSmall:
		return 14
	case FontSizeLarge:
		return 18
	default:
		return 16
	}
}

// Alignment is the body text alignment
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Valid reports whether a is a known alignment
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// InvoiceSettings holds presentation-only options. Purely cosmetic and
// orthogonal to InvoiceData.
type InvoiceSettings struct {
	Template       TemplateVariant `json:"template"`
	PrimaryColor   string          `json:"primaryColor"`
	SecondaryColor string          `json:"secondaryColor"`
	FontFamily     string          `json:"fontFamily"`
	FontSize       FontSize        `json:"fontSize"`
	Alignment      Alignment       `json:"alignment"`
	DarkMode       bool            `json:"darkMode"`
}

// DefaultSettings returns the session-start presentation settings
func DefaultSettings() InvoiceSettings {
	return InvoiceSettings{
		Template:       TemplateModern,
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#64748b",
		FontFamily:     "Inter",
		FontSize:       FontSizeMedium,
		Alignment:      AlignLeft,
		DarkMode:       false,
	}
}

// SettingsPatch carries optional InvoiceSettings updates
type SettingsPatch struct {
	Template       *TemplateVariant `json:"template,omitempty"`
	PrimaryColor   *string          `json:"primaryColor,omitempty"`
	SecondaryColor *string          `json:"secondaryColor,omitempty"`
	FontFamily     *string          `json:"fontFamily,omitempty"`
	FontSize       *FontSize        `json:"fontSize,omitempty"`
	Alignment      *Alignment       `json:"alignment,omitempty"`
	DarkMode       *bool            `json:"darkMode,omitempty"`
}

// Validate returns the enum fields of the patch that name unknown values
func (p SettingsPatch) Validate() []string {
	var bad []string
	if p.Template != nil && !p.Template.Valid() {
		bad = append(bad, "template")
	}
	if p.FontSize != nil && !p.FontSize.Valid() {
		bad = append(bad, "fontSize")
	}
	if p.Alignment != nil && !p.Alignment.Valid() {
		bad = append(bad, "alignment")
	}
	return bad
}

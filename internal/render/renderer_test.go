package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/render"
)

func TestRenderHTMLAllVariants(t *testing.T) {
	data := model.DefaultInvoiceData()

	for _, variant := range model.TemplateVariants() {
		t.Run(string(variant), func(t *testing.T) {
			settings := model.DefaultSettings()
			settings.Template = variant

			html, err := render.RenderHTML(data, settings)
			require.NoError(t, err)

			assert.Contains(t, html, `class="`+render.Marker+`"`)
			assert.Contains(t, html, data.InvoiceNumber)
			assert.Contains(t, html, data.Company.Name)
			assert.Contains(t, html, data.Client.Name)
			assert.Contains(t, html, data.Items[0].Description)
			assert.Contains(t, html, "100.00")
			assert.Contains(t, html, "110.00")
		})
	}
}

func TestForVariantUnknown(t *testing.T) {
	_, err := render.ForVariant(model.TemplateVariant("vaporwave"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vaporwave")
}

func TestRenderHTMLAppliesColors(t *testing.T) {
	settings := model.DefaultSettings()
	settings.PrimaryColor = "#ff0000"

	html, err := render.RenderHTML(model.DefaultInvoiceData(), settings)
	require.NoError(t, err)
	assert.Contains(t, html, "#ff0000")
}

func TestRenderHTMLRejectsBadColor(t *testing.T) {
	settings := model.DefaultSettings()
	settings.PrimaryColor = "red; } body { display: none"

	html, err := render.RenderHTML(model.DefaultInvoiceData(), settings)
	require.NoError(t, err)
	assert.NotContains(t, html, "display: none")
	// Falls back to the stock primary
	assert.Contains(t, html, "#3b82f6")
}

func TestRenderHTMLRejectsBadFontFamily(t *testing.T) {
	settings := model.DefaultSettings()
	settings.FontFamily = `Inter"; src: url(evil)`

	html, err := render.RenderHTML(model.DefaultInvoiceData(), settings)
	require.NoError(t, err)
	assert.NotContains(t, html, "url(evil)")
	assert.Contains(t, html, `"Inter"`)
}

func TestRenderHTMLDarkMode(t *testing.T) {
	settings := model.DefaultSettings()
	settings.DarkMode = true

	html, err := render.RenderHTML(model.DefaultInvoiceData(), settings)
	require.NoError(t, err)
	assert.Contains(t, html, "#1e293b")
	assert.Contains(t, html, "#0f172a")
}

func TestRenderHTMLFontSize(t *testing.T) {
	settings := model.DefaultSettings()
	settings.FontSize = model.FontSizeLarge

	html, err := render.RenderHTML(model.DefaultInvoiceData(), settings)
	require.NoError(t, err)
	assert.Contains(t, html, "font-size: 18px")
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	data := model.DefaultInvoiceData()
	data.Company.Name = `<script>alert("x")</script>`

	html, err := render.RenderHTML(data, model.DefaultSettings())
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestRenderHTMLEmptyFields(t *testing.T) {
	data := model.DefaultInvoiceData()
	data.InvoiceNumber = ""
	data.Items = nil
	data.CalculateTotals()

	html, err := render.RenderHTML(data, model.DefaultSettings())
	require.NoError(t, err)
	assert.Contains(t, html, render.Marker)
	assert.Contains(t, html, "0.00")
}

func TestSelectorMatchesMarker(t *testing.T) {
	require.True(t, strings.HasPrefix(render.Selector, "."))
	assert.Equal(t, render.Marker, strings.TrimPrefix(render.Selector, "."))
}

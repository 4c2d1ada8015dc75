package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-builder/internal/model"
)

func TestInvoiceItemCalculate(t *testing.T) {
	item := model.InvoiceItem{
		ID:          "1",
		Description: "Consulting",
		Quantity:    decimal.NewFromInt(3),
		Rate:        decimal.RequireFromString("150.50"),
	}
	item.Calculate()
	assert.True(t, item.Amount.Equal(decimal.RequireFromString("451.50")))

	item.Quantity = decimal.Zero
	item.Calculate()
	assert.True(t, item.Amount.IsZero())
}

func TestCalculateTotals(t *testing.T) {
	data := model.InvoiceData{
		Items: []model.InvoiceItem{
			{ID: "1", Amount: decimal.NewFromInt(100)},
			{ID: "2", Amount: decimal.RequireFromString("50.25")},
		},
		TaxRate: decimal.NewFromInt(10),
	}
	data.CalculateTotals()

	assert.True(t, data.Subtotal.Equal(decimal.RequireFromString("150.25")))
	assert.True(t, data.TaxAmount.Equal(decimal.RequireFromString("15.03")))
	assert.True(t, data.Total.Equal(decimal.RequireFromString("165.28")))
}

func TestCalculateTotalsNoItems(t *testing.T) {
	data := model.InvoiceData{TaxRate: decimal.NewFromInt(10)}
	data.CalculateTotals()

	assert.True(t, data.Subtotal.IsZero())
	assert.True(t, data.TaxAmount.IsZero())
	assert.True(t, data.Total.IsZero())
}

func TestCalculateTotalsIdempotent(t *testing.T) {
	data := model.DefaultInvoiceData()
	before := data

	data.CalculateTotals()
	data.CalculateTotals()

	assert.True(t, data.Subtotal.Equal(before.Subtotal))
	assert.True(t, data.TaxAmount.Equal(before.TaxAmount))
	assert.True(t, data.Total.Equal(before.Total))
}

func TestDefaultInvoiceData(t *testing.T) {
	data := model.DefaultInvoiceData()

	assert.Equal(t, "INV-001", data.InvoiceNumber)
	assert.Equal(t, "Invoice", data.Heading)
	require.Len(t, data.Items, 1)
	assert.True(t, data.Items[0].Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, data.Items[0].Rate.Equal(decimal.NewFromInt(100)))
	assert.True(t, data.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, data.TaxAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, data.Total.Equal(decimal.NewFromInt(110)))
}

func TestInvoiceDataClone(t *testing.T) {
	data := model.DefaultInvoiceData()
	clone := data.Clone()

	clone.Items[0].Description = "changed"
	clone.Items = append(clone.Items, model.InvoiceItem{ID: "2"})

	assert.Equal(t, "Service/Product Description", data.Items[0].Description)
	assert.Len(t, data.Items, 1)
}

func TestPartyPatchApply(t *testing.T) {
	party := model.Party{Name: "Acme", Email: "old@acme.test"}
	name := "Acme Corp"
	empty := ""
	patch := model.PartyPatch{Name: &name, Email: &empty}
	patch.Apply(&party)

	assert.Equal(t, "Acme Corp", party.Name)
	assert.Equal(t, "", party.Email)
}

func TestSettingsPatchValidate(t *testing.T) {
	good := model.TemplateClassic
	p := model.SettingsPatch{Template: &good}
	assert.Empty(t, p.Validate())

	bad := model.TemplateVariant("fancy")
	p = model.SettingsPatch{Template: &bad}
	fields := p.Validate()
	require.Len(t, fields, 1)
	assert.Equal(t, "template", fields[0])
}

func TestSettingsPatchValidateMultiple(t *testing.T) {
	badSize := model.FontSize("huge")
	badAlign := model.Alignment("justified")
	p := model.SettingsPatch{FontSize: &badSize, Alignment: &badAlign}

	fields := p.Validate()
	assert.ElementsMatch(t, []string{"fontSize", "alignment"}, fields)
}

func TestTemplateVariantValid(t *testing.T) {
	for _, v := range model.TemplateVariants() {
		assert.True(t, v.Valid(), "variant %s", v)
	}
	assert.False(t, model.TemplateVariant("").Valid())
	assert.False(t, model.TemplateVariant("neon").Valid())
}

func TestFontSizePixels(t *testing.T) {
	assert.Equal(t, 14, model.FontSizeSmall.Pixels())
	assert.Equal(t, 16, model.FontSizeMedium.Pixels())
	assert.Equal(t, 18, model.FontSizeLarge.Pixels())
}

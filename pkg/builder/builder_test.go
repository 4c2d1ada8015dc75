package builder_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-builder/pkg/builder"
)

func TestNew(t *testing.T) {
	b := builder.New()
	require.NotNil(t, b)
	require.NotNil(t, b.Store())

	data := b.Store().Data()
	assert.Equal(t, "INV-001", data.InvoiceNumber)
	assert.True(t, data.Total.Equal(decimal.NewFromInt(110)))
}

func TestStoreMutationsThroughFacade(t *testing.T) {
	b := builder.New()

	item := b.Store().AddItem()
	rate := decimal.NewFromInt(40)
	b.Store().UpdateItem(item.ID, builder.ItemPatch{Rate: &rate})

	data := b.Store().Data()
	require.Len(t, data.Items, 2)
	assert.True(t, data.Subtotal.Equal(decimal.NewFromInt(140)))
}

func TestReExportedConstants(t *testing.T) {
	assert.Equal(t, builder.TemplateVariant("modern"), builder.TemplateModern)
	assert.Equal(t, builder.Format("pdf"), builder.FormatPDF)
	assert.Equal(t, builder.Format("png"), builder.FormatPNG)
	assert.NotNil(t, builder.ErrExportBusy)
}

package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-builder/internal/money"
)

// Party identifies one side of the invoice (issuing company or client)
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"` // free-form, may span multiple lines
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// InvoiceItem is a single billable line.
// Amount is derived from Quantity and Rate and is never set directly.
type InvoiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Calculate re-derives Amount from Quantity and Rate
func (it *InvoiceItem) Calculate() {
	it.Amount = money.Mul(it.Quantity, it.Rate)
}

// InvoiceData is the aggregate root for invoice content.
// Subtotal, TaxAmount and Total are derived fields; only the store's
// recompute path writes them.
type InvoiceData struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Date          string `json:"date"`    // ISO calendar date, no time component
	DueDate       string `json:"dueDate"` // may be empty
	Heading       string `json:"heading"`

	Company Party `json:"company"`
	Client  Party `json:"client"`

	Items []InvoiceItem `json:"items"` // display order, insertion-order-preserving

	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"taxRate"` // percent
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Total     decimal.Decimal `json:"total"`

	Notes string `json:"notes"`
	Terms string `json:"terms"`
}

// CalculateTotals recomputes the derived monetary fields from the current
// item list and tax rate. Idempotent.
func (d *InvoiceData) CalculateTotals() {
	amounts := make([]decimal.Decimal, 0, len(d.Items))
	for _, it := range d.Items {
		amounts = append(amounts, it.Amount)
	}
	d.Subtotal = money.Sum(amounts)
	d.TaxAmount = money.Percentage(d.Subtotal, d.TaxRate)
	d.Total = d.Subtotal.Add(d.TaxAmount).Round(2)
}

// Clone returns a deep copy
func (d InvoiceData) Clone() InvoiceData {
	out := d
	out.Items = make([]InvoiceItem, len(d.Items))
	copy(out.Items, d.Items)
	return out
}

// DefaultInvoiceData returns the session-start invoice: one sample item,
// 10% tax, totals already consistent.
func DefaultInvoiceData() InvoiceData {
	d := InvoiceData{
		InvoiceNumber: "INV-001",
		Date:          time.Now().Format("2006-01-02"),
		Heading:       "Invoice",
		Company: Party{
			Name:    "Your Company Name",
			Address: "123 Business St.\nCity, State 12345",
			Phone:   "+1 (555) 123-4567",
			Email:   "info@yourcompany.com",
		},
		Client: Party{
			Name:    "Client Name",
			Address: "456 Client Ave.\nCity, State 67890",
			Phone:   "+1 (555) 987-6543",
			Email:   "client@email.com",
		},
		Items: []InvoiceItem{
			{
				ID:          "1",
				Description: "Service/Product Description",
				Quantity:    decimal.NewFromInt(1),
				Rate:        decimal.NewFromInt(100),
				Amount:      decimal.NewFromInt(100),
			},
		},
		TaxRate: decimal.NewFromInt(10),
		Notes:   "Thank you for your business!",
		Terms:   "Payment is due within 30 days.",
	}
	d.CalculateTotals()
	return d
}

// PartyPatch carries optional Party field updates. A nil field means
// "leave unchanged"; a pointer to the zero value is a real update.
type PartyPatch struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// Apply merges the patch onto p
func (pp PartyPatch) Apply(p *Party) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Address != nil {
		p.Address = *pp.Address
	}
	if pp.Phone != nil {
		p.Phone = *pp.Phone
	}
	if pp.Email != nil {
		p.Email = *pp.Email
	}
}

// DataPatch carries optional updates for the non-item, non-derived fields
// of InvoiceData.
type DataPatch struct {
	InvoiceNumber *string          `json:"invoiceNumber,omitempty"`
	Date          *string          `json:"date,omitempty"`
	DueDate       *string          `json:"dueDate,omitempty"`
	Heading       *string          `json:"heading,omitempty"`
	TaxRate       *decimal.Decimal `json:"taxRate,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Terms         *string          `json:"terms,omitempty"`
	Company       *PartyPatch      `json:"company,omitempty"`
	Client        *PartyPatch      `json:"client,omitempty"`
}

// ItemPatch carries optional updates for a single line item. Quantity and
// Rate are pointers so a supplied zero is distinguishable from an omitted
// field and still re-derives the amount.
type ItemPatch struct {
	Description *string          `json:"description,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
}

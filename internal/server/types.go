package server

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/money"
)

// looseNumber accepts a JSON number or numeric string. Unparseable input
// coerces to zero rather than failing the request; the model layer never
// sees malformed numerics.
type looseNumber struct {
	decimal.Decimal
}

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	n.Decimal = money.ParseLoose(s)
	return nil
}

// partyRequest carries optional party field updates
type partyRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

func (r *partyRequest) toPatch() *model.PartyPatch {
	if r == nil {
		return nil
	}
	return &model.PartyPatch{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

// updateInvoiceRequest is the PATCH /invoice body. Absent fields stay
// untouched; derived fields and items are not settable here.
type updateInvoiceRequest struct {
	InvoiceNumber *string       `json:"invoiceNumber"`
	Date          *string       `json:"date"`
	DueDate       *string       `json:"dueDate"`
	Heading       *string       `json:"heading"`
	TaxRate       *looseNumber  `json:"taxRate"`
	Notes         *string       `json:"notes"`
	Terms         *string       `json:"terms"`
	Company       *partyRequest `json:"company"`
	Client        *partyRequest `json:"client"`
}

func (r updateInvoiceRequest) toPatch() model.DataPatch {
	p := model.DataPatch{
		InvoiceNumber: r.InvoiceNumber,
		Date:          r.Date,
		DueDate:       r.DueDate,
		Heading:       r.Heading,
		Notes:         r.Notes,
		Terms:         r.Terms,
		Company:       r.Company.toPatch(),
		Client:        r.Client.toPatch(),
	}
	if r.TaxRate != nil {
		p.TaxRate = &r.TaxRate.Decimal
	}
	return p
}

// updateItemRequest is the PATCH /invoice/items/:id body. Quantity and
// rate are pointers so an explicit zero is a real update.
type updateItemRequest struct {
	Description *string      `json:"description"`
	Quantity    *looseNumber `json:"quantity"`
	Rate        *looseNumber `json:"rate"`
}

func (r updateItemRequest) toPatch() model.ItemPatch {
	p := model.ItemPatch{Description: r.Description}
	if r.Quantity != nil {
		p.Quantity = &r.Quantity.Decimal
	}
	if r.Rate != nil {
		p.Rate = &r.Rate.Decimal
	}
	return p
}

// updateSettingsRequest is the PATCH /settings body
type updateSettingsRequest struct {
	Template       *model.TemplateVariant `json:"template"`
	PrimaryColor   *string                `json:"primaryColor"`
	SecondaryColor *string                `json:"secondaryColor"`
	FontFamily     *string                `json:"fontFamily"`
	FontSize       *model.FontSize        `json:"fontSize"`
	Alignment      *model.Alignment       `json:"alignment"`
	DarkMode       *bool                  `json:"darkMode"`
}

func (r updateSettingsRequest) toPatch() model.SettingsPatch {
	return model.SettingsPatch{
		Template:       r.Template,
		PrimaryColor:   r.PrimaryColor,
		SecondaryColor: r.SecondaryColor,
		FontFamily:     r.FontFamily,
		FontSize:       r.FontSize,
		Alignment:      r.Alignment,
		DarkMode:       r.DarkMode,
	}
}

// TemplateInfo describes one selectable layout
type TemplateInfo struct {
	Name    string `json:"name"`
	Current bool   `json:"current"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

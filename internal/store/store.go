// Package store owns the invoice content and presentation settings for a
// session. It is the single writer of the derived monetary fields; all
// mutations go through its update operations and every mutation leaves the
// totals consistent with the item list before observers are notified.
package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-builder/internal/model"
)

// Store is an explicitly owned state container. Pass it by reference to
// consumers; there is no package-level instance.
type Store struct {
	mu       sync.Mutex
	data     model.InvoiceData
	settings model.InvoiceSettings
	watchers []func()
	newID    func() string
}

// Option configures the store
type Option func(*Store)

// WithData overrides the session-start invoice content
func WithData(d model.InvoiceData) Option {
	return func(s *Store) {
		s.data = d.Clone()
	}
}

// WithSettings overrides the session-start presentation settings
func WithSettings(set model.InvoiceSettings) Option {
	return func(s *Store) {
		s.settings = set
	}
}

// WithIDGenerator overrides item id generation (tests)
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates a store initialized with the fixed defaults
func New(opts ...Option) *Store {
	s := &Store{
		data:     model.DefaultInvoiceData(),
		settings: model.DefaultSettings(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.data.CalculateTotals()
	return s
}

// Subscribe registers fn to run after every mutation. Used by consumers
// that redraw from store state.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
}

// Data returns a deep copy of the invoice content
func (s *Store) Data() model.InvoiceData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Settings returns a copy of the presentation settings
func (s *Store) Settings() model.InvoiceSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateInvoiceData merges any subset of the non-item, non-derived fields.
// Empty strings are accepted; the templates render them as blank.
func (s *Store) UpdateInvoiceData(p model.DataPatch) {
	s.mu.Lock()
	if p.InvoiceNumber != nil {
		s.data.InvoiceNumber = *p.InvoiceNumber
	}
	if p.Date != nil {
		s.data.Date = *p.Date
	}
	if p.DueDate != nil {
		s.data.DueDate = *p.DueDate
	}
	if p.Heading != nil {
		s.data.Heading = *p.Heading
	}
	if p.TaxRate != nil {
		s.data.TaxRate = *p.TaxRate
	}
	if p.Notes != nil {
		s.data.Notes = *p.Notes
	}
	if p.Terms != nil {
		s.data.Terms = *p.Terms
	}
	if p.Company != nil {
		p.Company.Apply(&s.data.Company)
	}
	if p.Client != nil {
		p.Client.Apply(&s.data.Client)
	}
	s.data.CalculateTotals()
	s.mu.Unlock()
	s.notify()
}

// UpdateSettings merges settings fields. Enum membership is the caller's
// responsibility; see SettingsPatch.Validate.
func (s *Store) UpdateSettings(p model.SettingsPatch) {
	s.mu.Lock()
	if p.Template != nil {
		s.settings.Template = *p.Template
	}
	if p.PrimaryColor != nil {
		s.settings.PrimaryColor = *p.PrimaryColor
	}
	if p.SecondaryColor != nil {
		s.settings.SecondaryColor = *p.SecondaryColor
	}
	if p.FontFamily != nil {
		s.settings.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		s.settings.FontSize = *p.FontSize
	}
	if p.Alignment != nil {
		s.settings.Alignment = *p.Alignment
	}
	if p.DarkMode != nil {
		s.settings.DarkMode = *p.DarkMode
	}
	s.mu.Unlock()
	s.notify()
}

// AddItem appends a new item with a fresh id, quantity 1, rate 0 and
// amount 0. The zero amount is already consistent with the totals, so no
// recompute is needed here.
func (s *Store) AddItem() model.InvoiceItem {
	s.mu.Lock()
	item := model.InvoiceItem{
		ID:          s.newID(),
		Description: "New Item",
		Quantity:    decimal.NewFromInt(1),
	}
	s.data.Items = append(s.data.Items, item)
	s.mu.Unlock()
	s.notify()
	return item
}

// RemoveItem deletes the item with the given id and recomputes totals.
// Silent no-op when the id is absent.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	items := s.data.Items[:0]
	for _, it := range s.data.Items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	s.data.Items = items
	s.data.CalculateTotals()
	s.mu.Unlock()
	s.notify()
}

// UpdateItem merges the patch onto the item with the given id. A supplied
// quantity or rate of zero is honored; the amount is re-derived from the
// merged values. Silent no-op when the id is absent.
func (s *Store) UpdateItem(id string, p model.ItemPatch) {
	s.mu.Lock()
	for i := range s.data.Items {
		it := &s.data.Items[i]
		if it.ID != id {
			continue
		}
		if p.Description != nil {
			it.Description = *p.Description
		}
		if p.Quantity != nil {
			it.Quantity = *p.Quantity
		}
		if p.Rate != nil {
			it.Rate = *p.Rate
		}
		it.Calculate()
		break
	}
	s.data.CalculateTotals()
	s.mu.Unlock()
	s.notify()
}

// CalculateTotals recomputes subtotal, tax amount and total. The mutation
// paths already chain this, so a standalone call is idempotent.
func (s *Store) CalculateTotals() {
	s.mu.Lock()
	s.data.CalculateTotals()
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	watchers := make([]func(), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()
	for _, fn := range watchers {
		fn()
	}
}

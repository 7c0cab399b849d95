package template

import (
	"github.com/jafarshop/storeconnect/internal/domain"
)

// Generator produces customer-ready messages from orders and the template
// set owned by the Store.
type Generator struct {
	store *Store
}

// NewGenerator creates a new message generator
func NewGenerator(store *Store) *Generator {
	return &Generator{store: store}
}

// Generate resolves the template matching the order's status. Returns nil
// when no template exists for the status or it is disabled; callers decide
// how to surface the "no message" case.
func (g *Generator) Generate(order domain.Order) *domain.GeneratedMessage {
	tmpl, ok := g.store.GetAll()[order.Status]
	if !ok || !tmpl.Enabled {
		return nil
	}

	return &domain.GeneratedMessage{
		Subject: Resolve(tmpl.Subject, order),
		Body:    Resolve(tmpl.Body, order),
	}
}

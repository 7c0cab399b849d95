package template

import (
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/domain"
	"github.com/jafarshop/storeconnect/internal/kvstore"
)

const templatesKey = "messageTemplates"

// Store owns the live message template set. It is the only writer of the
// persisted templates blob.
type Store struct {
	kv     kvstore.Store
	logger *zap.Logger
}

// NewStore creates a new template store
func NewStore(kv kvstore.Store, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// load reads the persisted set, falling back to the built-in defaults when
// nothing is stored or the stored blob cannot be decoded.
func (s *Store) load() domain.TemplateSet {
	var set domain.TemplateSet
	found, err := s.kv.Get(templatesKey, &set)
	if err != nil {
		s.logger.Warn("Falling back to default templates", zap.Error(err))
		return DefaultTemplates()
	}
	if !found || set == nil {
		return DefaultTemplates()
	}
	return set
}

// GetAll returns the current template set with one entry per declared
// order status. Statuses missing from storage are backfilled with a
// generated disabled default.
func (s *Store) GetAll() domain.TemplateSet {
	stored := s.load()

	set := make(domain.TemplateSet, len(domain.AllOrderStatuses))
	for _, status := range domain.AllOrderStatuses {
		if tmpl, ok := stored[status]; ok {
			tmpl.Status = status
			set[status] = tmpl
		} else {
			set[status] = generatedDefault(status)
		}
	}
	return set
}

// Seeded reports whether a template set has been persisted
func (s *Store) Seeded() bool {
	var set domain.TemplateSet
	found, err := s.kv.Get(templatesKey, &set)
	return err == nil && found
}

// Get returns the template for one status
func (s *Store) Get(status domain.OrderStatus) domain.MessageTemplate {
	return s.GetAll()[status]
}

// Update merges patch into the template for status and persists the full
// set. A status with no stored entry starts from a disabled blank scaffold.
func (s *Store) Update(status domain.OrderStatus, patch domain.TemplatePatch) (domain.MessageTemplate, error) {
	set := s.GetAll()

	tmpl, ok := set[status]
	if !ok {
		tmpl = domain.MessageTemplate{Status: status}
	}

	if patch.Subject != nil {
		tmpl.Subject = *patch.Subject
	}
	if patch.Body != nil {
		tmpl.Body = *patch.Body
	}
	if patch.Enabled != nil {
		tmpl.Enabled = *patch.Enabled
	}
	tmpl.Status = status

	set[status] = tmpl
	if err := s.kv.Put(templatesKey, set); err != nil {
		return domain.MessageTemplate{}, err
	}
	return tmpl, nil
}

// ResetOne restores the built-in default template for status. Statuses
// without a hand-written default are left untouched.
func (s *Store) ResetOne(status domain.OrderStatus) error {
	def, ok := builtinDefaults[status]
	if !ok {
		return nil
	}

	set := s.GetAll()
	set[status] = def
	return s.kv.Put(templatesKey, set)
}

// ResetAll replaces the entire set with the built-in defaults
func (s *Store) ResetAll() (domain.TemplateSet, error) {
	set := DefaultTemplates()
	if err := s.kv.Put(templatesKey, set); err != nil {
		return nil, err
	}
	return set, nil
}

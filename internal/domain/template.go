package domain

// MessageTemplate holds the notification content for one order status
type MessageTemplate struct {
	Status  OrderStatus `json:"status"`
	Subject string      `json:"subject"`
	Body    string      `json:"body"`
	Enabled bool        `json:"enabled"`
}

// TemplateSet maps each order status to its template. The template store
// guarantees one entry per status and that Status always equals the key.
type TemplateSet map[OrderStatus]MessageTemplate

// TemplatePatch carries a partial template update. Nil fields are left
// unchanged by the merge.
type TemplatePatch struct {
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

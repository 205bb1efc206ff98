package email

import "fmt"

// Rendered is the output of a template: a subject line and an HTML body.
type Rendered struct {
	Subject string
	HTML    string
}

// Renderer turns caller-supplied data into a rendered email. Renderers are
// pure string construction over the shared branding.
type Renderer func(b Branding, data any) (Rendered, error)

// Registry maps template names to renderers. The built-in set is registered
// at construction; AddTemplate may extend or replace entries (last
// registration wins), entries are never removed.
type Registry struct {
	branding  Branding
	templates map[string]Renderer
}

// Built-in template names.
const (
	TemplateWelcome           = "welcome"
	TemplatePasswordReset     = "passwordReset"
	TemplateEmailVerification = "emailVerification"
	TemplateDeliveryUpdate    = "deliveryUpdate"
	TemplateOrderConfirmation = "orderConfirmation"
)

// NewRegistry creates a Registry with the built-in template set sharing the
// given branding.
func NewRegistry(branding Branding) *Registry {
	r := &Registry{
		branding:  branding,
		templates: make(map[string]Renderer),
	}

	r.AddTemplate(TemplateWelcome, renderWelcome)
	r.AddTemplate(TemplatePasswordReset, renderPasswordReset)
	r.AddTemplate(TemplateEmailVerification, renderEmailVerification)
	r.AddTemplate(TemplateDeliveryUpdate, renderDeliveryUpdate)
	r.AddTemplate(TemplateOrderConfirmation, renderOrderConfirmation)

	return r
}

// AddTemplate registers a renderer under a name, replacing any previous one.
func (r *Registry) AddTemplate(name string, renderer Renderer) {
	r.templates[name] = renderer
}

// Has reports whether a template name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// Render resolves a template by name and renders it with the given data.
func (r *Registry) Render(name string, data any) (Rendered, error) {
	renderer, ok := r.templates[name]
	if !ok {
		return Rendered{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return renderer(r.branding, data)
}

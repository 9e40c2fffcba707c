package domain

import "strings"

// PlaceholderName is the personalization token understood by Template.Render.
const PlaceholderName = "{name}"

// Recipient is the target of one delivery. Phone is the identity key inside one batch, Name
// only feeds template rendering.
type Recipient struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone"`
}

// Contact is one address book entry.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (c Contact) Recipient() Recipient {
	return Recipient{Name: c.Name, Phone: c.Phone}
}

// Template is an immutable message body with zero or more {name} placeholders.
type Template string

// Render replaces every placeholder with the recipient name, or with the empty
// string when the recipient has none. Nothing else changes.
func (t Template) Render(r Recipient) string {
	return strings.ReplaceAll(string(t), PlaceholderName, r.Name)
}

func (t Template) IsBlank() bool {
	return strings.TrimSpace(string(t)) == ""
}

package model

import (
	"encoding/json"
	"strings"
)

// PlaceholderToken is the literal marker in a template structure that page
// content is substituted into. Only the first occurrence is replaced.
const PlaceholderToken = "{{content}}"

// Template is the stored HTML shell for a page. Only the structure is
// persisted; any other fields supplied on write are dropped.
type Template struct {
	Structure string `json:"structure"`
}

// Content is a stored page record, keyed by its public path. TemplateID is a
// weak reference to a Template and keeps its original JSON type (string or
// number) so records round-trip unchanged; it is coerced to a string key only
// at lookup time. Style and script are raw fragments injected verbatim into
// the rendered page.
type Content struct {
	TemplateID json.RawMessage `json:"templateId"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Style      string          `json:"style"`
	Script     string          `json:"script"`
}

type CreateTemplateRequest struct {
	ID        json.RawMessage `json:"id"`
	Structure string          `json:"structure"`
}

type CreateContentRequest struct {
	Path       string          `json:"path"`
	TemplateID json.RawMessage `json:"templateId"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Style      string          `json:"style"`
	Script     string          `json:"script"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// TemplateKey coerces a raw templateId value to its storage-key string form:
// JSON strings are used as-is, numbers are stringified. Absent, null and
// empty ids coerce to "".
func TemplateKey(id json.RawMessage) string {
	var s string
	if err := json.Unmarshal(id, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(id, &n); err == nil {
		return n.String()
	}
	return strings.TrimSpace(string(id))
}

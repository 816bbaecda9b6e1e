package payload

import (
	"encoding/json"
	"strings"
)

// Payload is the flat field map handed to every destination for one item.
// Field names are case-insensitive: a later Set with a differently-cased name
// overwrites the value but keeps the casing of the first write. Built fresh
// per processing attempt; treated as immutable once handed to sinks.
type Payload struct {
	names  map[string]string // lower-cased name -> first-seen casing
	values map[string]any    // lower-cased name -> value
}

func New() *Payload {
	return &Payload{
		names:  make(map[string]string),
		values: make(map[string]any),
	}
}

// Set writes a field. Matching is case-insensitive; the canonical casing is
// whatever the first writer used.
func (p *Payload) Set(name string, value any) {
	key := strings.ToLower(name)
	if _, ok := p.names[key]; !ok {
		p.names[key] = name
	}
	p.values[key] = value
}

// Get looks a field up case-insensitively.
func (p *Payload) Get(name string) (any, bool) {
	v, ok := p.values[strings.ToLower(name)]
	return v, ok
}

// GetString returns the field as a string, or "" if absent or not a string.
func (p *Payload) GetString(name string) string {
	if v, ok := p.Get(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (p *Payload) Len() int {
	return len(p.values)
}

// Fields returns the payload under canonical field names. The map is a copy;
// mutating it does not affect the payload.
func (p *Payload) Fields() map[string]any {
	out := make(map[string]any, len(p.values))
	for key, v := range p.values {
		out[p.names[key]] = v
	}
	return out
}

func (p *Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Fields())
}

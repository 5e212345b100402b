// Package ask implements the AskUserQuestion tool: it presents a question
// with optional choices through a host-supplied interactive surface and
// resolves it to a plain-text answer or a cancellation.
//
// The package is surface-agnostic. Hosts provide a Surface (see
// surface.go); the askui package ships Bubble Tea implementations.
package ask

import (
	"encoding/json"
	"strings"
)

// Request describes one question put to the user. It is built once per
// invocation and not mutated afterwards.
type Request struct {
	Question      string
	Context       string
	Options       []Option
	AllowMultiple bool
	AllowFreeform bool
}

// normalized returns a copy with the question and context trimmed and
// blank-titled options dropped. Blank context means "no context".
func (r Request) normalized() Request {
	r.Question = strings.TrimSpace(r.Question)
	r.Context = strings.TrimSpace(r.Context)
	r.Options = filterOptions(r.Options)
	return r
}

// Input is the tool's wire-level input shape. Options may mix bare
// strings and {title, description} objects; allowFreeform is a pointer so
// that omitting it keeps the true default.
type Input struct {
	Question      string            `json:"question"`
	Context       string            `json:"context,omitempty"`
	Options       []json.RawMessage `json:"options,omitempty"`
	AllowMultiple bool              `json:"allowMultiple,omitempty"`
	AllowFreeform *bool             `json:"allowFreeform,omitempty"`
}

// Normalize converts wire input into a Request, applying defaults and
// option normalization.
func (in Input) Normalize() Request {
	req := Request{
		Question:      strings.TrimSpace(in.Question),
		Context:       strings.TrimSpace(in.Context),
		Options:       NormalizeOptions(in.Options),
		AllowMultiple: in.AllowMultiple,
		AllowFreeform: true,
	}
	if in.AllowFreeform != nil {
		req.AllowFreeform = *in.AllowFreeform
	}
	return req
}

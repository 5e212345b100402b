package ask

import (
	"encoding/json"
	"strings"
)

// Option is a single selectable choice offered to the user. The title is
// never blank; the description is optional display text.
type Option struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NormalizeOptions converts raw JSON option entries into well-formed
// Options. An entry may be a bare string (treated as a title-only option)
// or an object with a string "title" and optional string "description".
// Entries of any other shape, and entries whose title is blank, are
// dropped without error. The order of surviving entries is preserved.
func NormalizeOptions(raw []json.RawMessage) []Option {
	var opts []Option
	for _, entry := range raw {
		if opt, ok := normalizeOption(entry); ok {
			opts = append(opts, opt)
		}
	}
	return opts
}

func normalizeOption(entry json.RawMessage) (Option, bool) {
	var title string
	if err := json.Unmarshal(entry, &title); err == nil {
		if strings.TrimSpace(title) == "" {
			return Option{}, false
		}
		return Option{Title: title}, true
	}

	var obj struct {
		Title       json.RawMessage `json:"title"`
		Description json.RawMessage `json:"description"`
	}
	if err := json.Unmarshal(entry, &obj); err != nil {
		return Option{}, false
	}
	if obj.Title == nil {
		return Option{}, false
	}
	if err := json.Unmarshal(obj.Title, &title); err != nil {
		// Title is present but not a string: the whole entry is invalid,
		// even if it carries a description.
		return Option{}, false
	}
	if strings.TrimSpace(title) == "" {
		return Option{}, false
	}

	opt := Option{Title: title}
	if obj.Description != nil {
		var desc string
		if err := json.Unmarshal(obj.Description, &desc); err == nil {
			opt.Description = desc
		}
	}
	return opt, true
}

// filterOptions drops blank-titled options from a typed slice, keeping
// order. Used when a host constructs a Request directly instead of going
// through the JSON boundary.
func filterOptions(opts []Option) []Option {
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		if strings.TrimSpace(o.Title) != "" {
			out = append(out, o)
		}
	}
	return out
}

package ask

import (
	"fmt"
	"strings"
)

// FallbackResult renders the question as a deterministic plain-text block
// for hosts with no interactive surface. It never blocks. The result is
// flagged as an error and carries the structured fields so the calling
// model can still proceed conversationally.
func FallbackResult(req Request) Result {
	var b strings.Builder
	b.WriteString(req.Question)

	if req.Context != "" {
		b.WriteString("\n\nContext:\n")
		b.WriteString(req.Context)
	}

	if len(req.Options) > 0 {
		b.WriteString("\n")
		for i, opt := range req.Options {
			b.WriteString(fmt.Sprintf("\n%d. %s", i+1, opt.Title))
			if opt.Description != "" {
				b.WriteString(" — " + opt.Description)
			}
		}
	}

	if req.AllowFreeform {
		b.WriteString("\n\nYou may also answer in your own words.")
	}

	return Result{
		Content: b.String(),
		IsError: true,
		Details: &Details{Question: req.Question, Context: req.Context, Options: req.Options},
	}
}

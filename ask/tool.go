package ask

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
)

// Tool presents questions to the user. It satisfies the host runtime's
// tool contract: name, description, JSON input schema, JSON execute, and
// a permission check.
type Tool struct {
	surface Surface
}

// New creates the tool. A nil surface selects the non-interactive
// fallback for every question.
func New(surface Surface) *Tool {
	return &Tool{surface: surface}
}

// SetSurface replaces the surface after construction, for hosts whose
// interactive program starts later than the tool registry.
func (t *Tool) SetSurface(s Surface) {
	t.surface = s
}

func (t *Tool) Name() string { return "AskUserQuestion" }

func (t *Tool) Description() string {
	return `Use this tool when you need an answer from the user to proceed. It presents a question with optional choices in the terminal and returns the user's selection or typed reply. Use it to clarify ambiguous instructions, get decisions on implementation choices, or confirm a direction before committing to it.`
}

func (t *Tool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
  "type": "object",
  "properties": {
    "question": {
      "type": "string",
      "description": "The complete question to ask the user"
    },
    "context": {
      "type": "string",
      "description": "Optional background displayed with the question"
    },
    "options": {
      "type": "array",
      "description": "Choices to offer (2-5 recommended); a plain string is shorthand for a title-only option",
      "items": {
        "anyOf": [
          {"type": "string"},
          {
            "type": "object",
            "properties": {
              "title": {
                "type": "string",
                "description": "Display text for the option"
              },
              "description": {
                "type": "string",
                "description": "One-line explanation of the option"
              }
            },
            "required": ["title"],
            "additionalProperties": false
          }
        ]
      }
    },
    "allowMultiple": {
      "type": "boolean",
      "default": false,
      "description": "Allow selecting more than one option"
    },
    "allowFreeform": {
      "type": "boolean",
      "default": true,
      "description": "Offer a freeform text answer in addition to the options"
    }
  },
  "required": ["question"],
  "additionalProperties": false
}`)
}

// RequiresPermission always reports false: answering or dismissing the
// question is itself the user's consent.
func (t *Tool) RequiresPermission(_ json.RawMessage) bool {
	return false
}

// Execute parses the wire input, runs the question flow, and returns the
// JSON-encoded result.
func (t *Tool) Execute(ctx context.Context, input json.RawMessage) (string, error) {
	var in Input
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("parsing AskUserQuestion input: %w", err)
	}

	req := in.Normalize()
	if req.Question == "" {
		return encodeResult(Result{Content: "Error: a question is required", IsError: true})
	}

	return encodeResult(t.Ask(ctx, req))
}

func encodeResult(res Result) (string, error) {
	out, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("encoding AskUserQuestion result: %w", err)
	}
	return string(out), nil
}

// Ask runs the full question flow. Every failure mode resolves to a
// Result; Ask never panics and never returns a Go error past this
// boundary.
//
// Steps, in order: an already-cancelled context resolves to cancellation
// without rendering; a nil surface resolves to the non-interactive
// fallback; a request with no usable options goes to the plain text
// prompt; everything else mounts the selection widget.
func (t *Tool) Ask(ctx context.Context, req Request) (res Result) {
	if ctx.Err() != nil {
		return cancelledResult()
	}

	req = req.normalized()

	if t.surface == nil {
		return FallbackResult(req)
	}

	defer func() {
		if r := recover(); r != nil {
			res = errorResult(req, fmt.Sprintf("%v", r), debug.Stack())
		}
	}()

	var (
		outcome Outcome
		err     error
	)
	if len(req.Options) == 0 {
		outcome, err = t.surface.PromptText(ctx, req)
	} else {
		outcome, err = t.surface.Present(ctx, req)
	}
	if err != nil {
		// External cancellation mid-interaction is still a cancellation,
		// not a failure.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return cancelledResult()
		}
		return errorResult(req, err.Error(), nil)
	}
	return outcomeResult(outcome)
}

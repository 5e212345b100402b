package ask

// Outcome is the closed result set of a question interaction: the user
// either submitted an answer or cancelled. The zero value is a
// cancellation.
type Outcome struct {
	text     string
	answered bool
}

// Submitted returns an outcome carrying the user's answer.
func Submitted(text string) Outcome { return Outcome{text: text, answered: true} }

// Cancelled returns the cancellation outcome.
func Cancelled() Outcome { return Outcome{} }

// Answered reports whether the user produced an answer.
func (o Outcome) Answered() bool { return o.answered }

// Text returns the submitted answer, or "" for a cancellation.
func (o Outcome) Text() string { return o.text }

// Details echoes the question structure back to the caller on the
// fallback and error paths so the question can still be handled
// programmatically.
type Details struct {
	Question string   `json:"question"`
	Context  string   `json:"context,omitempty"`
	Options  []Option `json:"options,omitempty"`
}

// Result is what a tool invocation resolves to. Content is one of three
// textual outcomes: "User answered: {text}", "User cancelled the
// question", or an error-prefixed message. Details is set only on the
// fallback and error paths.
type Result struct {
	Content string   `json:"content"`
	IsError bool     `json:"isError,omitempty"`
	Details *Details `json:"details,omitempty"`
}

const cancelledContent = "User cancelled the question"

// Cancelled reports whether the result records a user cancellation.
func (r Result) Cancelled() bool { return r.Content == cancelledContent }

func answeredResult(text string) Result {
	return Result{Content: "User answered: " + text}
}

func cancelledResult() Result {
	return Result{Content: cancelledContent}
}

func outcomeResult(o Outcome) Result {
	if !o.Answered() {
		return cancelledResult()
	}
	return answeredResult(o.Text())
}

func errorResult(req Request, msg string, stack []byte) Result {
	content := "Error presenting question: " + msg
	if len(stack) > 0 {
		content += "\n" + string(stack)
	}
	return Result{
		Content: content,
		IsError: true,
		Details: &Details{Question: req.Question, Context: req.Context, Options: req.Options},
	}
}

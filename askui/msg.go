// Package askui implements the interactive question widget for the
// AskUserQuestion tool as a Bubble Tea component, plus the surfaces that
// mount it: inside an already-running host program, or standalone on the
// terminal.
package askui

import "github.com/agentui/askuser/ask"

// ResolvedMsg is emitted exactly once when the widget reaches a terminal
// state. Host models react by unmounting the widget and consuming the
// outcome; the standalone runner quits its program on it.
type ResolvedMsg struct {
	Outcome ask.Outcome
}

// RequestMsg asks a running host program to mount the question widget.
// The tool's goroutine blocks on Response until the host replies with
// exactly one outcome.
type RequestMsg struct {
	Req      ask.Request
	Response chan ask.Outcome
}

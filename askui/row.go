package askui

import "github.com/agentui/askuser/ask"

type rowKind int

const (
	rowOption rowKind = iota
	rowFreeform
)

// Label pair rendered for the synthetic freeform row.
const (
	freeformTitle = "Other"
	freeformDesc  = "Write your own answer"
)

// row is one navigable list entry: either a concrete option (carrying
// its original index) or the synthetic freeform row, which is always
// last when present.
type row struct {
	kind   rowKind
	index  int // option index, rowOption only
	option ask.Option
}

func buildRows(req ask.Request) []row {
	rows := make([]row, 0, len(req.Options)+1)
	for i, opt := range req.Options {
		rows = append(rows, row{kind: rowOption, index: i, option: opt})
	}
	if req.AllowFreeform {
		rows = append(rows, row{
			kind:   rowFreeform,
			option: ask.Option{Title: freeformTitle, Description: freeformDesc},
		})
	}
	return rows
}

package ask

import "context"

// Surface is the host capability the tool renders through.
//
// Present mounts the interactive question widget and blocks until the
// user submits or cancels. PromptText asks the question as a single
// free-text prompt with no option list; only the question and context
// fields of the request are used.
//
// A nil Surface means no interactive facility exists; the tool then
// answers with the non-interactive fallback block.
type Surface interface {
	Present(ctx context.Context, req Request) (Outcome, error)
	PromptText(ctx context.Context, req Request) (Outcome, error)
}

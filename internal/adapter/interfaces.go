package adapter

import "context"

// SuggestResult carries the outcome of an asynchronous suggestion request.
type SuggestResult struct {
	Password string
	Err      error
}

// Suggester produces random password suggestions from an external generator
// service. Implementations must be safe for concurrent use.
type Suggester interface {
	// Suggest requests a single password suggestion, blocking until the
	// generator responds or ctx is done.
	Suggest(ctx context.Context) (string, error)

	// SuggestAsync starts the request in the background and returns a
	// channel that yields exactly one result and is then closed.
	SuggestAsync(ctx context.Context) <-chan SuggestResult
}

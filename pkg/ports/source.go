package ports

import "context"

// Source supplies raw user input to the engine. Implementations map
// end-of-input and interrupts to domain.ErrCancelled.
type Source interface {
	// ReadLine reads one line of visible input without its line ending.
	ReadLine(ctx context.Context) (string, error)

	// ReadSecret reads one line without echoing it. Sources that cannot
	// suppress echo may fall back to a plain read.
	ReadSecret(ctx context.Context) (string, error)
}

// Interactive is optionally implemented by sources attached to a real
// terminal. Styling and rich help rendering are enabled only when it
// reports true.
type Interactive interface {
	Interactive() bool
}

package cli

import "context"

// Menu is the interactive terminal session.
type Menu interface {
	// Run loops until the user exits, input ends or ctx is done.
	Run(ctx context.Context) error
}

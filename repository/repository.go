package repository

import (
	"context"

	"github.com/qpost/go-qpost-server/types"
)

// MailRepository owns the single mail collection. The external key-value
// store offers no finer granularity than one blob, so the whole collection
// is read and rewritten on every mutation. Concurrent SaveAll calls race
// and the later write wins.
type MailRepository interface {
	// LoadAll returns the full collection. A missing blob is the normal
	// empty state, not an error.
	LoadAll(ctx context.Context) ([]*types.Mail, error)
	// SaveAll replaces the full collection.
	SaveAll(ctx context.Context, mails []*types.Mail) error
}

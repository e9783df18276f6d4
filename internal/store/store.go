// Package store persists per-session conversation history and research
// reports. Implementations must be safe for concurrent use.
package store

import (
	"context"

	"github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/research"
)

// Store is the persistence backend for research sessions.
type Store interface {
	// History returns the conversation history for a session, oldest
	// first. A missing session yields an empty history.
	History(ctx context.Context, sessionID string) ([]scribe.Message, error)

	// AppendHistory appends messages to a session's history, creating
	// the session if needed.
	AppendHistory(ctx context.Context, sessionID string, messages ...scribe.Message) error

	// SaveReport stores a completed research report for the session.
	// A report with the same topic replaces the earlier one.
	SaveReport(ctx context.Context, sessionID string, report *research.Response) error

	// Report returns the stored report for a topic, if any.
	Report(ctx context.Context, sessionID, topic string) (*research.Response, bool, error)

	// Reports returns all stored reports for a session in the order
	// they were first saved.
	Reports(ctx context.Context, sessionID string) ([]*research.Response, error)
}

// package playlist models the fixed, ordered sequence of videos the player
// walks through. Entries are immutable after construction; the cursor is the
// only mutable field and belongs to the navigation state machine.
package playlist

import (
	"fmt"

	"github.com/desertthunder/vloop/internal/shared"
)

// Entry is a single playlist item: a human-readable display name paired with
// the media source path handed to the playback engine.
type Entry struct {
	Name string
	Path string
}

// Playlist is an ordered, non-empty sequence of entries with a cursor.
// The cursor always satisfies 0 <= cursor < len(entries).
type Playlist struct {
	entries []Entry
	cursor  int
}

// New constructs a Playlist positioned at the first entry.
// Constructing from zero entries fails with [shared.ErrEmptyPlaylist].
func New(entries []Entry) (*Playlist, error) {
	if len(entries) == 0 {
		return nil, shared.ErrEmptyPlaylist
	}
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Playlist{entries: copied}, nil
}

// FromArgs builds a Playlist from raw CLI arguments, which must be an
// even-length, non-empty sequence of alternating name and path values.
// Odd or empty argument lists fail with [shared.ErrInvalidArguments] before
// the empty-playlist guard in [New] is ever reached.
func FromArgs(args []string) (*Playlist, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d arguments", shared.ErrInvalidArguments, len(args))
	}
	entries := make([]Entry, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		entries = append(entries, Entry{Name: args[i], Path: args[i+1]})
	}
	return New(entries)
}

// Len returns the number of entries.
func (p *Playlist) Len() int {
	return len(p.entries)
}

// Index returns the zero-based cursor position.
func (p *Playlist) Index() int {
	return p.cursor
}

// Current returns the entry under the cursor.
func (p *Playlist) Current() Entry {
	return p.entries[p.cursor]
}

// HasPrevious reports whether the cursor can move backward.
func (p *Playlist) HasPrevious() bool {
	return p.cursor > 0
}

// HasNext reports whether the cursor can move forward.
func (p *Playlist) HasNext() bool {
	return p.cursor < len(p.entries)-1
}

// Advance moves the cursor by delta if the result stays in bounds and reports
// whether it moved. Out-of-range requests leave the cursor untouched; the
// playlist is not cyclic.
func (p *Playlist) Advance(delta int) bool {
	next := p.cursor + delta
	if next < 0 || next >= len(p.entries) {
		return false
	}
	p.cursor = next
	return true
}

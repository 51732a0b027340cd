package stream

// Cursor is a movable position within a stream with cheap save and
// restore. Rules use it for bounded lookahead without losing their
// place.
type Cursor struct {
	s  *Stream
	at *Token
}

// CursorAt returns a cursor positioned on t. A nil t positions the
// cursor at the stream head.
func (s *Stream) CursorAt(t *Token) Cursor {
	if t == nil {
		t = s.head
	}
	return Cursor{s: s, at: t}
}

// Token returns the token under the cursor, or nil when exhausted.
func (c *Cursor) Token() *Token { return c.at }

// Advance moves forward one token. Returns false at the end.
func (c *Cursor) Advance() bool {
	if c.at == nil || c.at.next == nil {
		return false
	}
	c.at = c.at.next
	return true
}

// Retreat moves backward one token. Returns false at the head.
func (c *Cursor) Retreat() bool {
	if c.at == nil || c.at.prev == nil {
		return false
	}
	c.at = c.at.prev
	return true
}

// Mark captures the current position.
type Mark struct{ at *Token }

// Save returns a mark for the current position.
func (c *Cursor) Save() Mark { return Mark{at: c.at} }

// Restore moves the cursor back to a saved mark.
func (c *Cursor) Restore(m Mark) { c.at = m.at }

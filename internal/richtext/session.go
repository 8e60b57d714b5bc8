package richtext

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Session is one editor's state: its buffer, the pending format applied to
// newly typed characters, and the current selection in both modalities.
// A Session must not be used from more than one goroutine at a time.
type Session struct {
	buf     Buffer
	pending Format
	sel     Range
	picks   *IndexSet
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{picks: NewIndexSet()}
}

// Buffer returns the session's buffer. The caller must not retain it across
// edits.
func (s *Session) Buffer() Buffer { return s.buf }

// Len is the number of characters in the buffer.
func (s *Session) Len() int { return len(s.buf) }

// Text returns the authored text.
func (s *Session) Text() string { return s.buf.Text() }

// Runs returns the compressed runs of the buffer.
func (s *Session) Runs() []Run { return Compress(s.buf) }

// Pending returns the format newly typed characters receive.
func (s *Session) Pending() Format { return s.pending }

// SetPending merges p into the pending format.
func (s *Session) SetPending(p Patch) { s.pending = p.Merge(s.pending) }

// TogglePending flips one field of the pending format.
func (s *Session) TogglePending(field Field) {
	s.pending = s.pending.With(field, !s.pending.Get(field))
}

// Selection returns the range selection, which doubles as the caret.
func (s *Session) Selection() Range { return s.sel }

// Select sets the range selection, clamped to the buffer. It clears any
// index-set selection.
func (s *Session) Select(r Range) {
	r = r.Normalize()
	r.Start = min(max(r.Start, 0), len(s.buf))
	r.End = min(max(r.End, 0), len(s.buf))
	s.sel = r
	s.picks.Clear()
}

// SelectIndex adds i to the index-set selection, or with extend every index
// between the anchor and i. A range selection collapses to its end so the
// picks become the active selection.
func (s *Session) SelectIndex(i int, extend bool) {
	if i < 0 || i >= len(s.buf) {
		return
	}
	s.sel = Range{Start: s.sel.End, End: s.sel.End}
	if extend {
		s.picks.Extend(i)
		return
	}
	s.picks.Toggle(i)
}

// Picks returns the index-set selection. Changes to it are seen by Apply.
func (s *Session) Picks() *IndexSet { return s.picks }

// active returns the selection a format change applies to: a non-empty
// range wins over picked indices.
func (s *Session) active() Selection {
	if !s.sel.Empty() {
		return s.sel
	}
	return s.picks
}

// Apply merges p into every selected character. With nothing selected it is
// a no-op and the pending format is left alone.
func (s *Session) Apply(p Patch) int {
	return ApplyFormat(s.buf, s.active(), p)
}

// Toggle sets field on the selection, or clears it when every selected
// character already has it.
func (s *Session) Toggle(field Field) int {
	sel := s.active()
	if sel.Empty() {
		return 0
	}
	return ApplyFormat(s.buf, sel, SetField(field, !AllHave(s.buf, sel, field)))
}

// Insert types text at the caret, replacing a non-empty range selection.
// Every new character takes the pending format. The caret ends up after the
// inserted text.
func (s *Session) Insert(text string) {
	if !s.sel.Empty() {
		s.Delete()
	}
	text = norm.NFC.String(strings.ReplaceAll(text, "\r\n", "\n"))
	pos := s.sel.Start
	ins := NewBuffer(text, s.pending)
	buf := make(Buffer, 0, len(s.buf)+len(ins))
	buf = append(buf, s.buf[:pos]...)
	buf = append(buf, ins...)
	buf = append(buf, s.buf[pos:]...)
	s.buf = buf
	s.picks.shift(pos, len(ins))
	s.sel = Range{Start: pos + len(ins), End: pos + len(ins)}
}

// Delete removes the range selection, or the character before a collapsed
// caret (backspace).
func (s *Session) Delete() {
	r := s.sel
	if r.Empty() {
		if r.Start == 0 {
			return
		}
		r.Start--
	}
	s.buf = append(s.buf[:r.Start:r.Start], s.buf[r.End:]...)
	s.picks.shift(r.Start, -(r.End - r.Start))
	s.sel = Range{Start: r.Start, End: r.Start}
}

// Reset replaces the buffer wholesale, as when the editor markup changed.
// The session keeps a copy; later edits do not touch b.
func (s *Session) Reset(b Buffer) {
	s.buf = append(Buffer(nil), b...)
	s.sel = Range{Start: len(b), End: len(b)}
	s.picks.Clear()
}

// Clear discards the buffer, selection and pending format.
func (s *Session) Clear() {
	s.buf = nil
	s.pending = Format{}
	s.sel = Range{}
	s.picks.Clear()
}

package richtext

import "sort"

// Selection is a set of buffer positions a format change applies to.
type Selection interface {
	// Indices returns the covered positions below n in ascending order.
	Indices(n int) []int
	// Empty is true when the selection covers nothing.
	Empty() bool
}

// Range is a contiguous selection over the flattened text. End is exclusive.
// A Range with Start > End is treated as its normalized form.
type Range struct {
	Start, End int
}

// Normalize returns r with Start <= End.
func (r Range) Normalize() Range {
	if r.Start > r.End {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Empty is true for a collapsed range (a caret).
func (r Range) Empty() bool { return r.Start == r.End }

// Len is the number of covered positions.
func (r Range) Len() int {
	n := r.Normalize()
	return n.End - n.Start
}

func (r Range) Indices(n int) []int {
	r = r.Normalize()
	start, end := max(r.Start, 0), min(r.End, n)
	if start >= end {
		return nil
	}
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

// IndexSet is a discontiguous selection of explicit positions, as built by
// clicking characters. It remembers the last clicked position as the anchor
// for shift-extension. The zero value is an empty set with no anchor.
type IndexSet struct {
	set  map[int]struct{}
	mark int // anchor+1; 0 means no anchor
}

// NewIndexSet returns a set holding indices. The last index is the anchor.
func NewIndexSet(indices ...int) *IndexSet {
	s := &IndexSet{}
	for _, i := range indices {
		s.add(i)
		s.setAnchor(i)
	}
	return s
}

func (s *IndexSet) add(i int) {
	if s.set == nil {
		s.set = make(map[int]struct{})
	}
	s.set[i] = struct{}{}
}

func (s *IndexSet) setAnchor(i int) {
	if i < 0 {
		s.mark = 0
		return
	}
	s.mark = i + 1
}

// Select replaces the selection with i.
func (s *IndexSet) Select(i int) {
	clear(s.set)
	s.add(i)
	s.setAnchor(i)
}

// Toggle adds i if absent and removes it otherwise.
func (s *IndexSet) Toggle(i int) {
	if _, ok := s.set[i]; ok {
		delete(s.set, i)
	} else {
		s.add(i)
	}
	s.setAnchor(i)
}

// Extend adds the inclusive range between the anchor and i, then makes i
// the anchor. Without an anchor it behaves like Select.
func (s *IndexSet) Extend(i int) {
	if s.mark == 0 {
		s.Select(i)
		return
	}
	a := s.Anchor()
	for j := min(a, i); j <= max(a, i); j++ {
		s.add(j)
	}
	s.setAnchor(i)
}

// Clear empties the set and forgets the anchor.
func (s *IndexSet) Clear() {
	clear(s.set)
	s.mark = 0
}

// Contains reports whether i is selected.
func (s *IndexSet) Contains(i int) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[i]
	return ok
}

// Anchor returns the anchor position, or -1.
func (s *IndexSet) Anchor() int {
	if s == nil {
		return -1
	}
	return s.mark - 1
}

// Len is the number of selected positions.
func (s *IndexSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

func (s *IndexSet) Empty() bool { return s.Len() == 0 }

func (s *IndexSet) Indices(n int) []int {
	out := make([]int, 0, s.Len())
	if s == nil {
		return out
	}
	for i := range s.set {
		if i >= 0 && i < n {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// shift moves every selected position at or after pos by delta, dropping
// positions that fall below pos.
func (s *IndexSet) shift(pos, delta int) {
	next := make(map[int]struct{}, len(s.set))
	for i := range s.set {
		switch {
		case i < pos:
			next[i] = struct{}{}
		case i+delta >= pos:
			next[i+delta] = struct{}{}
		}
	}
	s.set = next
	if a := s.Anchor(); a >= pos {
		if a+delta < pos {
			s.mark = 0
		} else {
			s.setAnchor(a + delta)
		}
	}
}

// ApplyFormat merges p into the format of every character sel covers and
// returns how many characters were touched. An empty selection or an empty
// patch changes nothing.
func ApplyFormat(b Buffer, sel Selection, p Patch) int {
	if sel == nil || sel.Empty() || p.IsEmpty() {
		return 0
	}
	idx := sel.Indices(len(b))
	for _, i := range idx {
		b[i].Format = p.Merge(b[i].Format)
	}
	return len(idx)
}

// AllHave reports whether every covered character has field set. It is false
// for a selection that covers nothing.
func AllHave(b Buffer, sel Selection, field Field) bool {
	idx := sel.Indices(len(b))
	if len(idx) == 0 {
		return false
	}
	for _, i := range idx {
		if !b[i].Format.Get(field) {
			return false
		}
	}
	return true
}

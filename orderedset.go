package infra

import "slices"

// ============================================================
// Ordered Set of Strings
// ============================================================

// OrderedSet is an ordered set of strings: a list of unique values whose
// insertion order is preserved and observable. The zero value is an empty
// set ready for use.
//
// An OrderedSet is not safe for concurrent mutation; treat it like any
// other Go slice-backed collection.
type OrderedSet struct {
	items []string
}

// NewOrderedSet returns a set containing the given items in order, with
// duplicates after the first occurrence dropped.
func NewOrderedSet(items ...string) *OrderedSet {
	s := &OrderedSet{}
	for _, item := range items {
		s.Append(item)
	}
	return s
}

// Len returns the number of items in the set.
func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Contains reports whether item is in the set.
func (s *OrderedSet) Contains(item string) bool {
	return slices.Contains(s.items, item)
}

// Append adds item to the end of the set if it is not already present.
// Appending an existing item changes neither membership nor order.
func (s *OrderedSet) Append(item string) {
	if !s.Contains(item) {
		s.items = append(s.items, item)
	}
}

// Prepend adds item to the front of the set if it is not already present.
func (s *OrderedSet) Prepend(item string) {
	if !s.Contains(item) {
		s.items = slices.Insert(s.items, 0, item)
	}
}

// Remove deletes item from the set if present.
func (s *OrderedSet) Remove(item string) {
	if i := slices.Index(s.items, item); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
}

// Replace substitutes replacement for item: if the set contains item or
// replacement, the first occurrence of either becomes replacement and any
// other occurrence of the two is removed. Order of unrelated items is
// preserved.
func (s *OrderedSet) Replace(item, replacement string) {
	first := -1
	for i := 0; i < len(s.items); i++ {
		if s.items[i] != item && s.items[i] != replacement {
			continue
		}
		if first < 0 {
			s.items[i] = replacement
			first = i
			continue
		}
		s.items = slices.Delete(s.items, i, i+1)
		i--
	}
}

// Values returns the items in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *OrderedSet) Values() []string {
	return slices.Clone(s.items)
}

// Range calls f for each item in insertion order until f returns false.
func (s *OrderedSet) Range(f func(item string) bool) {
	for _, item := range s.items {
		if !f(item) {
			return
		}
	}
}

// Clone returns an independent copy of the set.
func (s *OrderedSet) Clone() *OrderedSet {
	return &OrderedSet{items: slices.Clone(s.items)}
}

// IsSubsetOf reports whether every item of s is in other.
func (s *OrderedSet) IsSubsetOf(other *OrderedSet) bool {
	for _, item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether every item of other is in s.
func (s *OrderedSet) IsSupersetOf(other *OrderedSet) bool {
	return other.IsSubsetOf(s)
}

// Union returns a new set holding the items of s followed by the items of
// other that s lacks.
func (s *OrderedSet) Union(other *OrderedSet) *OrderedSet {
	out := s.Clone()
	for _, item := range other.items {
		out.Append(item)
	}
	return out
}

// Intersection returns a new set holding the items of s that are also in
// other, in s's order.
func (s *OrderedSet) Intersection(other *OrderedSet) *OrderedSet {
	out := &OrderedSet{}
	for _, item := range s.items {
		if other.Contains(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// Difference returns a new set holding the items of s that are not in
// other, in s's order.
func (s *OrderedSet) Difference(other *OrderedSet) *OrderedSet {
	out := &OrderedSet{}
	for _, item := range s.items {
		if !other.Contains(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// Package slot models the reservable instants a venue keeps in its booked set.
//
// Two slots are the same slot when their normalized instants are equal: UTC, truncated
// to milliseconds. Key renders that instant as an ISO-8601 string, which is also the
// form the API returns.
package slot

import (
	"errors"
	"slices"
	"strings"
	"time"
)

const keyLayout = "2006-01-02T15:04:05.000Z"

var ErrInvalidSlot = errors.New("invalid reservation date time")

// accepted in order; zone-less layouts are read as UTC
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Slot struct {
	at time.Time
}

func New(t time.Time) Slot {
	return Slot{at: t.UTC().Truncate(time.Millisecond)}
}

func Parse(s string) (Slot, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Slot{}, ErrInvalidSlot
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return New(t), nil
		}
	}
	return Slot{}, ErrInvalidSlot
}

func (s Slot) Time() time.Time { return s.at }

func (s Slot) Key() string { return s.at.Format(keyLayout) }

func (s Slot) String() string { return s.Key() }

func (s Slot) IsZero() bool { return s.at.IsZero() }

func (s Slot) Equal(other Slot) bool { return s.at.Equal(other.at) }

func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.Key()), nil
}

func (s *Slot) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Set is an ordered, duplicate-free collection of slots.
type Set struct {
	items []Slot
}

func NewSet(slots ...Slot) Set {
	var s Set
	for _, sl := range slots {
		s.Add(sl)
	}
	return s
}

// Add reports whether the slot was absent before the call.
func (s *Set) Add(sl Slot) bool {
	sl = New(sl.at)
	i, found := s.search(sl)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, i, sl)
	return true
}

// Remove reports whether the slot was present before the call.
func (s *Set) Remove(sl Slot) bool {
	sl = New(sl.at)
	i, found := s.search(sl)
	if !found {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s Set) Contains(sl Slot) bool {
	_, found := s.search(New(sl.at))
	return found
}

func (s Set) Len() int { return len(s.items) }

func (s Set) Slots() []Slot { return slices.Clone(s.items) }

func (s Set) Keys() []string {
	keys := make([]string, len(s.items))
	for i, sl := range s.items {
		keys[i] = sl.Key()
	}
	return keys
}

func (s Set) search(sl Slot) (int, bool) {
	return slices.BinarySearchFunc(s.items, sl, func(a, b Slot) int {
		return a.at.Compare(b.at)
	})
}

package cssom

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Origin is the cascade origin of a stylesheet.
//
// See https://drafts.csswg.org/css-cascade/#cascading-origins
type Origin uint8

// Cascade origins, in the order used for iteration.
const (
	UserAgent Origin = iota // defaults of the styling engine
	User                    // user preferences
	Author                  // sheets coming with the document
	originCount
)

var originNames = [originCount]string{"user-agent", "user", "author"}

func (o Origin) String() string {
	if o >= originCount {
		return fmt.Sprintf("origin(%d)", o)
	}
	return originNames[o]
}

// ErrUnknownOrigin is returned if an origin name cannot be recognized.
var ErrUnknownOrigin = errors.New("unknown cascade origin")

// ParseOrigin returns the origin for a name as produced by Origin.String.
// Matching is case-insensitive and ignores surrounding white space.
func ParseOrigin(name string) (Origin, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for o, n := range originNames {
		if n == name {
			return Origin(o), nil
		}
	}
	tracer().Debugf("cannot parse cascade origin %q", name)
	return UserAgent, fmt.Errorf("%w: %q", ErrUnknownOrigin, name)
}

// --- Origin sets -----------------------------------------------------------

// OriginSet is a set of cascade origins.
type OriginSet uint8

// OriginSetOf creates an origin set from a list of origins.
func OriginSetOf(origins ...Origin) OriginSet {
	var set OriginSet
	for _, o := range origins {
		set = set.Insert(o)
	}
	return set
}

// AllOrigins is the set of every cascade origin.
func AllOrigins() OriginSet {
	return OriginSet(1<<originCount - 1)
}

func bit(o Origin) OriginSet {
	assertThat(o < originCount, "origin out of range: %d", o)
	return OriginSet(1 << o)
}

// Insert returns a set with o added.
func (set OriginSet) Insert(o Origin) OriginSet {
	return set | bit(o)
}

// Union returns a set containing the origins of both sets.
func (set OriginSet) Union(other OriginSet) OriginSet {
	return set | other
}

// Contains is a predicate: is o a member of the set?
func (set OriginSet) Contains(o Origin) bool {
	return set&bit(o) != 0
}

// IsEmpty is a predicate: does the set contain no origin at all?
func (set OriginSet) IsEmpty() bool {
	return set == 0
}

// All iterates over the members of the set in origin order.
func (set OriginSet) All() iter.Seq[Origin] {
	return func(yield func(Origin) bool) {
		for o := UserAgent; o < originCount; o++ {
			if set.Contains(o) && !yield(o) {
				return
			}
		}
	}
}

func (set OriginSet) String() string {
	var names []string
	for o := range set.All() {
		names = append(names, o.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// ParseOriginSet reads a comma-separated list of origin names.
// The empty string denotes the empty set.
func ParseOriginSet(list string) (OriginSet, error) {
	var set OriginSet
	if strings.TrimSpace(list) == "" {
		return set, nil
	}
	for _, name := range strings.Split(list, ",") {
		o, err := ParseOrigin(name)
		if err != nil {
			return 0, err
		}
		set = set.Insert(o)
	}
	return set, nil
}

// --- Per-origin storage ----------------------------------------------------

// PerOrigin holds one item of type T for every cascade origin.
// The zero value holds the zero value of T for every origin.
type PerOrigin[T any] struct {
	items [originCount]T
}

// For returns a reference to the item for origin o.
func (p *PerOrigin[T]) For(o Origin) *T {
	assertThat(o < originCount, "origin out of range: %d", o)
	return &p.items[o]
}

// All iterates over the items in origin order.
func (p *PerOrigin[T]) All() iter.Seq2[Origin, *T] {
	return func(yield func(Origin, *T) bool) {
		for o := UserAgent; o < originCount; o++ {
			if !yield(o, &p.items[o]) {
				return
			}
		}
	}
}

package cssom

import (
	"errors"
	"testing"
)

func TestParseOrigin(t *testing.T) {
	for _, o := range []Origin{UserAgent, User, Author} {
		p, err := ParseOrigin(" " + o.String() + " ")
		if err != nil || p != o {
			t.Errorf("expected %q to parse to %s, is %s (%v)", o.String(), o, p, err)
		}
	}
	if _, err := ParseOrigin("agent"); !errors.Is(err, ErrUnknownOrigin) {
		t.Errorf("expected unknown origin error, is %v", err)
	}
}

func TestOriginSet(t *testing.T) {
	set := OriginSetOf(Author, UserAgent)
	if set.Contains(User) || !set.Contains(Author) || !set.Contains(UserAgent) {
		t.Errorf("wrong members for %s", set)
	}
	if set.String() != "{user-agent,author}" {
		t.Errorf("expected set to print as {user-agent,author}, is %s", set)
	}
	if set.Union(OriginSetOf(User)) != AllOrigins() {
		t.Errorf("expected union to contain all origins")
	}
	var empty OriginSet
	if !empty.IsEmpty() || empty.String() != "{}" {
		t.Errorf("expected zero set to be empty, is %s", empty)
	}
}

func TestParseOriginSet(t *testing.T) {
	set, err := ParseOriginSet("user-agent,USER")
	if err != nil {
		t.Fatal(err)
	}
	if set != OriginSetOf(UserAgent, User) {
		t.Errorf("expected {user-agent,user}, is %s", set)
	}
	set, err = ParseOriginSet("  ")
	if err != nil || !set.IsEmpty() {
		t.Errorf("expected blank list to give empty set, is %s (%v)", set, err)
	}
	if _, err = ParseOriginSet("author,other"); err == nil {
		t.Errorf("expected error for unknown origin, is nil")
	}
}

func TestPerOrigin(t *testing.T) {
	var counts PerOrigin[int]
	*counts.For(User) = 3
	*counts.For(Author) += 4
	sum, order := 0, []Origin{}
	for o, n := range counts.All() {
		sum += *n
		order = append(order, o)
	}
	if sum != 7 || len(order) != 3 || order[0] != UserAgent || order[2] != Author {
		t.Errorf("unexpected iteration: sum=%d, order=%v", sum, order)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected access to an invalid origin to panic")
		}
	}()
	counts.For(originCount)
}

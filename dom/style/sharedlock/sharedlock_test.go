package sharedlock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUnderGuard(t *testing.T) {
	l := New()
	v := Wrap(l, "sheet")
	guard := l.Read()
	defer guard.Release()
	if v.Read(guard) != "sheet" {
		t.Errorf("expected locked value to be 'sheet', is %q", v.Read(guard))
	}
}

func TestWriteUnderGuard(t *testing.T) {
	l := New()
	v := Wrap(l, 1)
	w := l.Write()
	*v.Write(w) = 2
	w.Release()
	r := l.Read()
	defer r.Release()
	require.Equal(t, 2, v.Read(r))
}

func TestForeignGuardPanics(t *testing.T) {
	v := Wrap(New(), 1)
	other := New()
	guard := other.Read()
	defer guard.Release()
	assert.False(t, v.SameLock(other))
	assert.Panics(t, func() { v.Read(guard) })
	guard.Release()
	w := other.Write()
	defer w.Release()
	assert.Panics(t, func() { v.Write(w) })
}

func TestReleasedGuardPanics(t *testing.T) {
	l := New()
	v := Wrap(l, 1)
	guard := l.Read()
	guard.Release()
	guard.Release() // no-op
	assert.Panics(t, func() { v.Read(guard) })
}

func TestConcurrentReaders(t *testing.T) {
	l := New()
	g1 := l.Read()
	g2 := l.Read() // must not block
	g1.Release()
	g2.Release()
	w := l.Write()
	w.Release()
}

/*
Package sharedlock implements a read/write lock which is shared between
many pieces of style data.

Stylesheets of a document are all protected by a single lock. Instead of
every sheet carrying its own mutex, a sheet wraps its contents in a Locked
value that remembers the lock it belongs to. Reading the contents requires
a ReadGuard of exactly that lock, which clients acquire once and then hand
down to every call needing access. Guards are capabilities: functions
receiving a guard must not store it beyond the duration of the call.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sharedlock

import (
	"fmt"
	"sync"
)

// SharedRWLock is a lock shared by a group of Locked values.
type SharedRWLock struct {
	mu sync.RWMutex
}

// New creates a new shared lock.
func New() *SharedRWLock {
	return &SharedRWLock{}
}

// ReadGuard proves that a read lock is held on a SharedRWLock.
type ReadGuard struct {
	lock     *SharedRWLock
	released bool
}

// WriteGuard proves that the write lock is held on a SharedRWLock.
type WriteGuard struct {
	lock     *SharedRWLock
	released bool
}

// Read acquires a read lock. Clients have to call Release on the guard
// when done.
func (l *SharedRWLock) Read() *ReadGuard {
	l.mu.RLock()
	return &ReadGuard{lock: l}
}

// Write acquires the write lock. Clients have to call Release on the guard
// when done.
func (l *SharedRWLock) Write() *WriteGuard {
	l.mu.Lock()
	return &WriteGuard{lock: l}
}

// Release gives up the read lock. Releasing twice is a no-op.
func (g *ReadGuard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.lock.mu.RUnlock()
}

// Release gives up the write lock. Releasing twice is a no-op.
func (g *WriteGuard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.lock.mu.Unlock()
}

// Locked is a value of type T protected by a SharedRWLock.
type Locked[T any] struct {
	lock *SharedRWLock
	data T
}

// Wrap puts data under the protection of lock l.
func Wrap[T any](l *SharedRWLock, data T) *Locked[T] {
	assertThat(l != nil, "cannot wrap data with nil lock")
	return &Locked[T]{lock: l, data: data}
}

// Read returns the protected value. guard must be a live read guard of the
// lock the value was wrapped with.
func (v *Locked[T]) Read(guard *ReadGuard) T {
	assertThat(guard != nil && !guard.released, "read access without a live guard")
	assertThat(v.SameLock(guard.lock), "read guard belongs to a different lock")
	return v.data
}

// Write returns a reference to the protected value for modification.
// guard must be a live write guard of the lock the value was wrapped with.
func (v *Locked[T]) Write(guard *WriteGuard) *T {
	assertThat(guard != nil && !guard.released, "write access without a live guard")
	assertThat(v.SameLock(guard.lock), "write guard belongs to a different lock")
	return &v.data
}

// SameLock is a predicate: is the value protected by lock l?
func (v *Locked[T]) SameLock(l *SharedRWLock) bool {
	return v.lock == l
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("sharedlock: "+msg, msgargs...)
		panic(msg)
	}
}

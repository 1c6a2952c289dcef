// Package seq holds a growable int32 sequence with a single owner, read-only
// borrows and explicit ownership transfer.
//
// Go has no move semantics, so ownership rules are checked at run time: a Vec
// that was moved from, or that is mutated or moved while a View is borrowed,
// panics with ErrMoved or ErrBorrowed.
package seq

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMoved       = errors.New("use of moved sequence")
	ErrBorrowed    = errors.New("sequence is borrowed")
	ErrBorrowEnded = errors.New("use of view after its borrow ended")
)

const historySize = 32

// Vec owns a heap-backed slice of int32. Its storage is collected once the
// last owner is unreachable.
type Vec struct {
	id      uuid.UUID
	elems   []int32
	moved   bool
	borrows BorrowStats
	history *history
}

// WithCapacity creates an empty Vec. The capacity is only a hint; negative
// values are treated as 0.
func WithCapacity(capacity int) *Vec {
	v := &Vec{
		id:      uuid.New(),
		elems:   make([]int32, 0, max(capacity, 0)),
		history: newHistory(historySize),
	}
	v.record(Created)
	return v
}

func (v *Vec) record(kind EventKind) {
	v.history.add(Event{
		Kind:  kind,
		Owner: v.id,
		Len:   len(v.elems),
		Cap:   cap(v.elems),
		At:    time.Now(),
	})
}

func (v *Vec) mustOwn() {
	if v.moved {
		panic(fmt.Errorf("sequence %s: %w", v.id, ErrMoved))
	}
}

func (v *Vec) mustOwnExclusive() {
	v.mustOwn()
	if v.borrows.Active > 0 {
		panic(fmt.Errorf("sequence %s has %d active borrows: %w", v.id, v.borrows.Active, ErrBorrowed))
	}
}

// Extend appends xs in order.
func (v *Vec) Extend(xs ...int32) {
	v.mustOwnExclusive()
	v.elems = append(v.elems, xs...)
	v.record(Extended)
}

func (v *Vec) Len() int {
	v.mustOwn()
	return len(v.elems)
}

func (v *Vec) Cap() int {
	v.mustOwn()
	return cap(v.elems)
}

// ID identifies the storage, not the binding: it survives a Move.
func (v *Vec) ID() uuid.UUID {
	v.mustOwn()
	return v.id
}

func (v *Vec) Borrows() BorrowStats {
	v.mustOwn()
	return v.borrows
}

// History returns the recorded lifecycle events, oldest first.
func (v *Vec) History() []Event {
	v.mustOwn()
	return v.history.all()
}

// Borrow calls fn with a read-only View of the elements. Borrows may nest;
// Extend and Move panic until every borrow has returned.
func (v *Vec) Borrow(fn func(View)) {
	v.mustOwn()
	l := &lease{}
	v.borrows.start()
	v.record(Borrowed)
	defer func() {
		l.ended = true
		v.borrows.stop()
		v.record(Released)
	}()
	fn(View{elems: v.elems, lease: l})
}

// Move transfers the storage to a new Vec and leaves v dead. Any later call
// on v panics with ErrMoved.
func (v *Vec) Move() *Vec {
	v.mustOwnExclusive()
	v.record(Moved)
	dst := &Vec{
		id:      v.id,
		elems:   v.elems,
		borrows: BorrowStats{Max: v.borrows.Max},
		history: v.history,
	}
	v.elems = nil
	v.history = nil
	v.moved = true
	return dst
}

package seq

import "slices"

// BorrowStats counts read-only borrows of a Vec.
type BorrowStats struct {
	Active int64
	Max    int64
}

func (bs *BorrowStats) start() {
	bs.Active++
	if bs.Active > bs.Max {
		bs.Max = bs.Active
	}
}

func (bs *BorrowStats) stop() {
	bs.Active--
}

type lease struct {
	ended bool
}

// View is a read-only window onto a Vec's elements. It is only valid inside
// the Borrow callback that handed it out; using it afterwards panics with
// ErrBorrowEnded.
type View struct {
	elems []int32
	lease *lease
}

func (v View) check() {
	if v.lease == nil || v.lease.ended {
		panic(ErrBorrowEnded)
	}
}

func (v View) Len() int {
	v.check()
	return len(v.elems)
}

func (v View) At(i int) int32 {
	v.check()
	return v.elems[i]
}

func (v View) Sum() int32 {
	v.check()
	return Sum(v.elems)
}

// Values returns a copy of the viewed elements.
func (v View) Values() []int32 {
	v.check()
	return slices.Clone(v.elems)
}

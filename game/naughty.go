package game

import (
	"reflect"
	"sync"
	"unsafe"
)

var iterPool = make(map[int]map[int]*sync.Pool)

func poolFor(m, n int) *sync.Pool {
	rows, ok := iterPool[m]
	if !ok {
		rows = make(map[int]*sync.Pool)
		iterPool[m] = rows
	}
	p, ok := rows[n]
	if !ok {
		p = &sync.Pool{
			New: func() interface{} {
				it := make([][]Colour, m)
				for i := range it {
					it[i] = make([]Colour, n)
				}
				return it
			},
		}
		rows[n] = p
	}
	return p
}

// MakeIterator returns a 2D iterator over a row-major board of m×n colours.
// The rows alias the board's backing slice, so no copying happens; for the
// same reason the iterator is only valid while the board is. Iterators are
// pooled: hand them back with ReturnIterator once done.
func MakeIterator(board []Colour, m, n int) (retVal [][]Colour) {
	retVal = poolFor(m, n).Get().([][]Colour)
	for i := range retVal {
		hdr := (*reflect.SliceHeader)(unsafe.Pointer(&retVal[i]))
		hdr.Data = uintptr(unsafe.Pointer(&board[i*n]))
		hdr.Len = n
		hdr.Cap = n
	}
	return retVal
}

// ReturnIterator hands an iterator back to the pool.
func ReturnIterator(m, n int, it [][]Colour) {
	poolFor(m, n).Put(it)
}

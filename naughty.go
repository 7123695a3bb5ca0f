package iago

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
				it := make([][]float32, m)
				for i := range it {
					it[i] = make([]float32, n)
				}
				return it
			},
		}
		rows[n] = p
	}
	return p
}

// MakeIterator returns a 2D iterator over a row-major m×n plane of encoded
// cells. The rows alias the plane's backing slice, so writes through the
// iterator mutate the plane. Iterators are pooled: hand them back with
// ReturnIterator once done.
func MakeIterator(plane []float32, m, n int) (retVal [][]float32) {
	retVal = poolFor(m, n).Get().([][]float32)
	for i := range retVal {
		hdr := (*reflect.SliceHeader)(unsafe.Pointer(&retVal[i]))
		hdr.Data = uintptr(unsafe.Pointer(&plane[i*n]))
		hdr.Len = n
		hdr.Cap = n
	}
	return retVal
}

// ReturnIterator hands an iterator back to the pool.
func ReturnIterator(m, n int, it [][]float32) {
	poolFor(m, n).Put(it)
}

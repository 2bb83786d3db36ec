package command

import "unsafe"

// Arena hands out zeroed memory that is never moved or freed. The host
// holds pointers into it for the lifetime of the process.
type Arena interface {
	Alloc(size uintptr) unsafe.Pointer
}

// HeapArena is an Arena backed by retained Go allocations. It is meant for
// tests and for hosts that never hand the memory to foreign code; memory
// given to the real host must come from outside the Go heap.
type HeapArena struct {
	blocks [][]uint64
}

// Alloc returns size zeroed bytes aligned to 8.
func (a *HeapArena) Alloc(size uintptr) unsafe.Pointer {
	if size == 0 {
		size = 1
	}
	block := make([]uint64, (size+7)/8)
	a.blocks = append(a.blocks, block)
	return unsafe.Pointer(&block[0])
}

// Allocations returns how many blocks have been handed out.
func (a *HeapArena) Allocations() int {
	return len(a.blocks)
}

package alloc

// Allocator hands out runs of contiguous handles.
type Allocator interface {
	AllocContiguous(n uint64) (uint64, bool)
	ReserveRange(start, count uint64)
	FreeRange(start, count uint64)
	Used(handle uint64) bool
}

var _ Allocator = (*Bitmap)(nil)

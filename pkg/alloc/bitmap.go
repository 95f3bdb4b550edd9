package alloc

const bitsPerByte = 8

// Bitmap tracks `size` handles, one bit each; a set bit marks the handle as
// used.
type Bitmap struct {
	bytes []byte
	size  uint64
}

func New(size uint64) Bitmap {
	return Bitmap{
		bytes: make([]byte, (size+bitsPerByte-1)/bitsPerByte),
		size:  size,
	}
}

func (bm Bitmap) Len() uint64 { return bm.size }

// AllocContiguous marks and returns the first run of `n` free handles,
// scanning in index order. It never compacts: if the free handles are
// fragmented into runs shorter than `n`, allocation fails even though enough
// handles are free in total.
func (bm Bitmap) AllocContiguous(n uint64) (uint64, bool) {
	if n == 0 || n > bm.size {
		return 0, false
	}
	var start, run uint64
	for i := uint64(0); i < bm.size; i++ {
		if bm.Used(i) {
			run = 0
			continue
		}
		if run == 0 {
			start = i
		}
		run++
		if run == n {
			bm.ReserveRange(start, n)
			return start, true
		}
	}
	return 0, false
}

func (bm Bitmap) ReserveRange(start, count uint64) {
	for i := start; i < start+count; i++ {
		b := &bm.bytes[i/bitsPerByte]
		*b = byteSetHigh(*b, uint8(i%bitsPerByte))
	}
}

func (bm Bitmap) FreeRange(start, count uint64) {
	for i := start; i < start+count; i++ {
		b := &bm.bytes[i/bitsPerByte]
		*b = byteSetLow(*b, uint8(i%bitsPerByte))
	}
}

func (bm Bitmap) Used(handle uint64) bool {
	return !byteIsZero(bm.bytes[handle/bitsPerByte], uint8(handle%bitsPerByte))
}

func (bm Bitmap) FreeCount() uint64 {
	var free uint64
	for i := uint64(0); i < bm.size; i++ {
		if !bm.Used(i) {
			free++
		}
	}
	return free
}

// LargestFreeRun returns the length of the longest run of free handles, i.e.
// the largest request AllocContiguous can currently satisfy.
func (bm Bitmap) LargestFreeRun() uint64 {
	var largest, run uint64
	for i := uint64(0); i < bm.size; i++ {
		if bm.Used(i) {
			run = 0
			continue
		}
		run++
		if run > largest {
			largest = run
		}
	}
	return largest
}

func byteIsZero(byt byte, bit uint8) bool {
	return byt&(0b1000_0000>>bit) == 0
}

func byteSetHigh(byt byte, bit uint8) byte {
	return byt | (0b1000_0000 >> bit)
}

func byteSetLow(byt byte, bit uint8) byte {
	return byt & ^(0b1000_0000 >> bit)
}

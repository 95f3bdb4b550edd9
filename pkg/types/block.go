package types

import "fmt"

type Byte int64

type Block uint64

const DefaultBlockSize Byte = 1024

// BlockRange is a run of contiguous blocks. A zero Count means the range is
// absent.
type BlockRange struct {
	Start Block `json:"start"`
	Count Block `json:"count"`
}

func (r BlockRange) Empty() bool { return r.Count == 0 }

// End returns the first block past the range.
func (r BlockRange) End() Block { return r.Start + r.Count }

func (r BlockRange) Contains(b Block) bool {
	return b >= r.Start && b < r.End()
}

func (r BlockRange) String() string {
	if r.Empty() {
		return "[]"
	}
	return fmt.Sprintf("[%d, %d)", r.Start, r.End())
}

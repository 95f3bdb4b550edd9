package block

import (
	"fmt"

	"github.com/weberc2/memfs/pkg/alloc"
	"github.com/weberc2/memfs/pkg/io"
	. "github.com/weberc2/memfs/pkg/types"
)

// Store is a fixed pool of fixed-size blocks backed by one in-memory volume,
// plus a used/free marker per block.
type Store struct {
	blockSize Byte
	volume    io.Volume
	bitmap    alloc.Bitmap
}

func NewStore(blockSize Byte, blocks Block) *Store {
	return &Store{
		blockSize: blockSize,
		volume:    io.NewBuffer(make([]byte, blockSize*Byte(blocks))),
		bitmap:    alloc.New(uint64(blocks)),
	}
}

func (s *Store) BlockSize() Byte { return s.blockSize }

func (s *Store) Len() Block { return Block(s.bitmap.Len()) }

func (s *Store) Used(b Block) bool { return s.bitmap.Used(uint64(b)) }

// BlocksFor returns the number of blocks needed to hold `size` bytes.
func (s *Store) BlocksFor(size Byte) Block {
	return Block((size + s.blockSize - 1) / s.blockSize)
}

// Allocate claims the first run of `n` contiguous free blocks. Allocating
// zero blocks succeeds with an empty range.
func (s *Store) Allocate(n Block) (BlockRange, error) {
	if n == 0 {
		return BlockRange{}, nil
	}
	start, ok := s.bitmap.AllocContiguous(uint64(n))
	if !ok {
		return BlockRange{}, fmt.Errorf(
			"allocating `%d` contiguous blocks (largest free run `%d`): %w",
			n,
			s.bitmap.LargestFreeRun(),
			OutOfSpaceErr,
		)
	}
	return BlockRange{Start: Block(start), Count: n}, nil
}

// Free returns the range to the free pool. The caller guarantees the range
// was previously allocated.
func (s *Store) Free(r BlockRange) {
	s.bitmap.FreeRange(uint64(r.Start), uint64(r.Count))
}

// WriteRange copies `content` into the blocks of `r`; the last block takes a
// partial copy sized to the remainder.
func (s *Store) WriteRange(r BlockRange, content []byte) error {
	if Byte(len(content)) > s.blockSize*Byte(r.Count) {
		return fmt.Errorf(
			"writing `%d` bytes to blocks `%s`: content exceeds range",
			len(content),
			r,
		)
	}
	for i := Block(0); i < r.Count; i++ {
		lo := Byte(i) * s.blockSize
		if lo >= Byte(len(content)) {
			break
		}
		hi := lo + s.blockSize
		if hi > Byte(len(content)) {
			hi = Byte(len(content))
		}
		if err := s.volume.WriteAt(
			s.offset(r.Start+i),
			content[lo:hi],
		); err != nil {
			return fmt.Errorf("writing block `%d`: %w", r.Start+i, err)
		}
	}
	return nil
}

// ReadRange concatenates the blocks of `r` in order, truncated to `size`
// bytes. The returned slice is a fresh copy.
func (s *Store) ReadRange(r BlockRange, size Byte) ([]byte, error) {
	if size > s.blockSize*Byte(r.Count) {
		return nil, fmt.Errorf(
			"reading `%d` bytes from blocks `%s`: size exceeds range",
			size,
			r,
		)
	}
	out := make([]byte, size)
	for i := Block(0); i < r.Count; i++ {
		lo := Byte(i) * s.blockSize
		if lo >= size {
			break
		}
		hi := lo + s.blockSize
		if hi > size {
			hi = size
		}
		if err := s.volume.ReadAt(s.offset(r.Start+i), out[lo:hi]); err != nil {
			return nil, fmt.Errorf("reading block `%d`: %w", r.Start+i, err)
		}
	}
	return out, nil
}

func (s *Store) offset(b Block) Byte { return Byte(b) * s.blockSize }

type Stats struct {
	BlockSize      Byte  `json:"blockSize"`
	Blocks         Block `json:"blocks"`
	Used           Block `json:"used"`
	Free           Block `json:"free"`
	LargestFreeRun Block `json:"largestFreeRun"`
}

func (s *Store) Stats() Stats {
	free := Block(s.bitmap.FreeCount())
	return Stats{
		BlockSize:      s.blockSize,
		Blocks:         s.Len(),
		Used:           s.Len() - free,
		Free:           free,
		LargestFreeRun: Block(s.bitmap.LargestFreeRun()),
	}
}

// Package filesystem is the engine: one explicitly owned value holding the
// entry table, the block store and the session's active directory. Every
// exported method runs under a single mutex, so an instance may be shared,
// but there is only ever one active directory.
package filesystem

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/weberc2/memfs/pkg/block"
	"github.com/weberc2/memfs/pkg/directory"
	"github.com/weberc2/memfs/pkg/entry"
	. "github.com/weberc2/memfs/pkg/types"
)

type FileInfo = directory.FileInfo

const (
	DefaultBlocks  Block = 1000
	DefaultEntries Index = 100
)

type Params struct {
	BlockSize Byte
	Blocks    Block

	// Entries is the capacity of the entry table, the root's slot
	// included.
	Entries  Index
	NameMax  int
	TimeFunc func() time.Time
	Logger   *slog.Logger
}

func (p *Params) withDefaults() Params {
	out := *p
	if out.BlockSize == 0 {
		out.BlockSize = DefaultBlockSize
	}
	if out.Blocks == 0 {
		out.Blocks = DefaultBlocks
	}
	if out.Entries == 0 {
		out.Entries = DefaultEntries
	}
	if out.NameMax == 0 {
		out.NameMax = entry.DefaultNameMax
	}
	if out.TimeFunc == nil {
		out.TimeFunc = time.Now
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return out
}

func (p *Params) Validate() error {
	if p.BlockSize < 0 {
		return fmt.Errorf("validating params: block size `%d` is negative", p.BlockSize)
	}
	if p.Entries < 0 {
		return fmt.Errorf("validating params: entries `%d` is negative", p.Entries)
	}
	if p.NameMax < 0 {
		return fmt.Errorf("validating params: name max `%d` is negative", p.NameMax)
	}
	return nil
}

type FileSystem struct {
	ID       uuid.UUID
	TimeFunc func() time.Time
	Logger   *slog.Logger

	mutex   sync.Mutex
	params  Params
	fs      directory.FileSystem
	current Index
}

// New returns an initialized file system. Zero-valued params take their
// defaults.
func New(params *Params) (*FileSystem, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("creating file system: %w", err)
	}
	p := params.withDefaults()
	fs := FileSystem{
		ID:       uuid.New(),
		TimeFunc: p.TimeFunc,
		params:   p,
	}
	fs.Logger = p.Logger.With("filesystem", fs.ID.String())
	fs.init()
	return &fs, nil
}

// Init discards every entry and block and leaves a lone root directory as
// the active directory.
func (fs *FileSystem) Init() {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	fs.init()
}

func (fs *FileSystem) init() {
	fs.fs.Init(
		entry.New(fs.params.Entries, fs.params.NameMax, fs.TimeFunc()),
		block.NewStore(fs.params.BlockSize, fs.params.Blocks),
	)
	fs.current = IndexRoot
	fs.Logger.Debug(
		"initialized file system",
		"blockSize", fs.params.BlockSize,
		"blocks", fs.params.Blocks,
		"entries", fs.params.Entries,
	)
}

// CurrentDirectory returns the index of the active directory.
func (fs *FileSystem) CurrentDirectory() Index {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	return fs.current
}

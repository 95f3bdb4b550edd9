package directory

import (
	"fmt"

	"github.com/weberc2/memfs/pkg/block"
	"github.com/weberc2/memfs/pkg/entry"
	. "github.com/weberc2/memfs/pkg/types"
)

type FileSystem struct {
	Entries *entry.Table
	Blocks  *block.Store
}

func (fs *FileSystem) Init(entries *entry.Table, blocks *block.Store) {
	*fs = FileSystem{Entries: entries, Blocks: blocks}
}

// maxDepth bounds every walk over parent links: no well-formed tree is
// deeper than the table has slots.
func (fs *FileSystem) maxDepth() int { return int(fs.Entries.Cap()) }

// Dir returns the live directory entry at `i`.
func (fs *FileSystem) Dir(i Index) (*Entry, error) {
	e, err := fs.Entries.Get(i)
	if err != nil {
		return nil, err
	}
	if !e.IsDir() {
		return nil, fmt.Errorf("entry `%d` (`%s`): %w", i, e.Name, NotADirErr)
	}
	return e, nil
}

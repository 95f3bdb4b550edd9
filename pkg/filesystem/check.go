package filesystem

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/weberc2/memfs/pkg/directory"
	. "github.com/weberc2/memfs/pkg/types"
)

// Check verifies the structural invariants of the entry table and the block
// store and reports every violation it finds.
func (fs *FileSystem) Check() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	var result *multierror.Error
	entries := fs.fs.Entries
	blocks := fs.fs.Blocks

	root := entries.Slot(IndexRoot)
	if !root.Live() || !root.IsDir() || root.Parent != IndexRoot {
		result = multierror.Append(
			result,
			fmt.Errorf("root: wanted live self-parented dir; found `%+v`", *root),
		)
	}

	owners := make(map[Block]Index)
	siblings := make(map[Index]map[string]Index)
	live := 0
	for i := IndexRoot; i < entries.Cap(); i++ {
		e := entries.Slot(i)
		if !e.Live() {
			if *e != (Entry{}) {
				result = multierror.Append(
					result,
					fmt.Errorf("entry `%d`: empty slot holds data `%+v`", i, *e),
				)
			}
			continue
		}
		live++

		if err := e.Kind.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("entry `%d`: %w", i, err))
		}

		if i != IndexRoot {
			if _, err := fs.fs.Dir(e.Parent); err != nil || e.Parent == i {
				result = multierror.Append(
					result,
					fmt.Errorf("entry `%d`: parent `%d` is not a live dir", i, e.Parent),
				)
			} else if _, err := directory.IsAncestor(&fs.fs, IndexRoot, i); err != nil {
				result = multierror.Append(result, fmt.Errorf("entry `%d`: %w", i, err))
			}

			names, ok := siblings[e.Parent]
			if !ok {
				names = make(map[string]Index)
				siblings[e.Parent] = names
			}
			if other, exists := names[e.Name]; exists {
				result = multierror.Append(
					result,
					fmt.Errorf(
						"entries `%d` and `%d`: duplicate name `%s` in dir `%d`",
						other,
						i,
						e.Name,
						e.Parent,
					),
				)
			}
			names[e.Name] = i
		}

		if e.IsDir() {
			if !e.Blocks.Empty() || e.Size != 0 {
				result = multierror.Append(
					result,
					fmt.Errorf("dir `%d`: holds content `%s` (`%d` bytes)", i, e.Blocks, e.Size),
				)
			}
			continue
		}

		if wanted := blocks.BlocksFor(e.Size); wanted != e.Blocks.Count {
			result = multierror.Append(
				result,
				fmt.Errorf(
					"file `%d`: size `%d` needs `%d` blocks; range `%s` has `%d`",
					i,
					e.Size,
					wanted,
					e.Blocks,
					e.Blocks.Count,
				),
			)
		}
		if e.Blocks.End() > blocks.Len() {
			result = multierror.Append(
				result,
				fmt.Errorf("file `%d`: range `%s` exceeds the store", i, e.Blocks),
			)
			continue
		}
		for b := e.Blocks.Start; b < e.Blocks.End(); b++ {
			if other, claimed := owners[b]; claimed {
				result = multierror.Append(
					result,
					fmt.Errorf("block `%d`: claimed by files `%d` and `%d`", b, other, i),
				)
			}
			owners[b] = i
			if !blocks.Used(b) {
				result = multierror.Append(
					result,
					fmt.Errorf("block `%d`: claimed by file `%d` but marked free", b, i),
				)
			}
		}
	}

	for b := Block(0); b < blocks.Len(); b++ {
		if _, claimed := owners[b]; blocks.Used(b) && !claimed {
			result = multierror.Append(
				result,
				fmt.Errorf("block `%d`: marked used but owned by no file", b),
			)
		}
	}

	if live != entries.Len() {
		result = multierror.Append(
			result,
			fmt.Errorf("live entries: counted `%d`; table reports `%d`", live, entries.Len()),
		)
	}

	if _, err := fs.fs.Dir(fs.current); err != nil {
		result = multierror.Append(
			result,
			fmt.Errorf("active directory `%d`: %w", fs.current, err),
		)
	}

	return result.ErrorOrNil()
}

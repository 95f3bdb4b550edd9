package directory

import (
	"fmt"

	. "github.com/weberc2/memfs/pkg/types"
)

// RemoveAll deletes the directory `dir` with every descendant, returning the
// blocks of each file to the store. It returns the removed indices, children
// before their parents.
//
// The subtree is collected with an explicit stack before anything is
// touched, so a type error or a corrupted (cyclic) tree fails without
// mutation.
func RemoveAll(fs *FileSystem, dir Index) ([]Index, error) {
	if dir == IndexRoot {
		return nil, fmt.Errorf("removing dir `%d`: %w", dir, CannotDeleteRootErr)
	}
	if _, err := fs.Dir(dir); err != nil {
		return nil, fmt.Errorf("removing dir `%d`: %w", dir, err)
	}

	order, err := collect(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("removing dir `%d`: %w", dir, err)
	}

	// `order` is pre-order, so walking it backwards erases every child
	// before its parent.
	removed := make([]Index, 0, len(order))
	for j := len(order) - 1; j >= 0; j-- {
		i := order[j]
		e, err := fs.Entries.Get(i)
		if err != nil {
			return removed, fmt.Errorf("removing dir `%d`: %w", dir, err)
		}
		if e.IsFile() && !e.Blocks.Empty() {
			fs.Blocks.Free(e.Blocks)
		}
		if err := fs.Entries.Erase(i); err != nil {
			return removed, fmt.Errorf("removing dir `%d`: %w", dir, err)
		}
		removed = append(removed, i)
	}
	return removed, nil
}

type frame struct {
	index Index
	depth int
}

func collect(fs *FileSystem, dir Index) ([]Index, error) {
	visited := map[Index]struct{}{dir: {}}
	order := []Index{}
	stack := []frame{{index: dir}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, top.index)

		e, err := fs.Entries.Get(top.index)
		if err != nil {
			return nil, err
		}
		if !e.IsDir() {
			continue
		}
		if top.depth >= fs.maxDepth() {
			return nil, fmt.Errorf(
				"collecting subtree at depth `%d`: %w",
				top.depth,
				CycleDetectedErr,
			)
		}
		for _, child := range fs.Entries.Children(top.index) {
			if _, seen := visited[child]; seen {
				return nil, fmt.Errorf(
					"collecting subtree: entry `%d` reached twice: %w",
					child,
					CycleDetectedErr,
				)
			}
			visited[child] = struct{}{}
			stack = append(stack, frame{index: child, depth: top.depth + 1})
		}
	}
	return order, nil
}

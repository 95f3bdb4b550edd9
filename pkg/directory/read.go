package directory

import (
	"fmt"

	. "github.com/weberc2/memfs/pkg/types"
)

func IsEmpty(fs *FileSystem, dir Index) (bool, error) {
	if _, err := fs.Dir(dir); err != nil {
		return false, fmt.Errorf("checking whether dir `%d` is empty: %w", dir, err)
	}
	return !fs.Entries.HasChildren(dir), nil
}

// List returns the children of `dir` in slot order.
func List(fs *FileSystem, dir Index) ([]FileInfo, error) {
	if _, err := fs.Dir(dir); err != nil {
		return nil, fmt.Errorf("listing dir `%d`: %w", dir, err)
	}
	children := fs.Entries.Children(dir)
	out := make([]FileInfo, 0, len(children))
	for _, i := range children {
		e, err := fs.Entries.Get(i)
		if err != nil {
			return nil, fmt.Errorf("listing dir `%d`: %w", dir, err)
		}
		out = append(out, NewFileInfo(i, e))
	}
	return out, nil
}

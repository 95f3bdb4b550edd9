package directory

import (
	"fmt"

	. "github.com/weberc2/memfs/pkg/types"
)

// Lookup resolves `name` within the directory `dir`. `.` names the directory
// itself and `..` its parent; the root is its own parent.
func Lookup(fs *FileSystem, dir Index, name string) (Index, error) {
	d, err := fs.Dir(dir)
	if err != nil {
		return IndexNil, fmt.Errorf("looking up `%s` in dir `%d`: %w", name, dir, err)
	}
	switch name {
	case ".":
		return dir, nil
	case "..":
		return d.Parent, nil
	}

	i, err := fs.Entries.FindByName(name, dir)
	if err != nil {
		return IndexNil, fmt.Errorf("looking up `%s` in dir `%d`: %w", name, dir, err)
	}
	return i, nil
}

// ChangeDirectory returns the directory that `name` designates relative to
// `current`. `..` at the root stays at the root.
func ChangeDirectory(fs *FileSystem, current Index, name string) (Index, error) {
	next, err := Lookup(fs, current, name)
	if err != nil {
		return current, fmt.Errorf("changing directory to `%s`: %w", name, err)
	}
	if _, err := fs.Dir(next); err != nil {
		return current, fmt.Errorf("changing directory to `%s`: %w", name, err)
	}
	return next, nil
}

// AbsolutePath walks parent links from `i` up to the root and joins the
// names root-to-leaf. The root alone is `/`.
func AbsolutePath(fs *FileSystem, i Index) (string, error) {
	if _, err := fs.Entries.Get(i); err != nil {
		return "", fmt.Errorf("resolving path of entry `%d`: %w", i, err)
	}

	var names []string
	current := i
	for depth := 0; current != IndexRoot; depth++ {
		if depth >= fs.maxDepth() {
			return "", fmt.Errorf(
				"resolving path of entry `%d`: %w",
				i,
				CycleDetectedErr,
			)
		}
		e, err := fs.Entries.Get(current)
		if err != nil {
			return "", fmt.Errorf(
				"resolving path of entry `%d`: dangling parent: %w",
				i,
				err,
			)
		}
		names = append(names, e.Name)
		current = e.Parent
	}

	if len(names) == 0 {
		return "/", nil
	}
	var path []byte
	for j := len(names) - 1; j >= 0; j-- {
		path = append(path, '/')
		path = append(path, names[j]...)
	}
	return string(path), nil
}

// IsAncestor reports whether `ancestor` appears in the parent chain of `i`.
// An entry is its own ancestor.
func IsAncestor(fs *FileSystem, ancestor, i Index) (bool, error) {
	current := i
	for depth := 0; ; depth++ {
		if current == ancestor {
			return true, nil
		}
		if current == IndexRoot {
			return false, nil
		}
		if depth >= fs.maxDepth() {
			return false, fmt.Errorf(
				"checking whether `%d` is an ancestor of `%d`: %w",
				ancestor,
				i,
				CycleDetectedErr,
			)
		}
		e, err := fs.Entries.Get(current)
		if err != nil {
			return false, fmt.Errorf(
				"checking whether `%d` is an ancestor of `%d`: %w",
				ancestor,
				i,
				err,
			)
		}
		current = e.Parent
	}
}

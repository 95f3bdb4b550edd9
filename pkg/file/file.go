package file

import (
	"fmt"
	"time"

	"github.com/weberc2/memfs/pkg/directory"
	. "github.com/weberc2/memfs/pkg/types"
)

type FileSystem = directory.FileSystem

func Open(fs *FileSystem, i Index) (*Entry, error) {
	e, err := fs.Entries.Get(i)
	if err != nil {
		return nil, err
	}
	if e.IsDir() {
		return nil, fmt.Errorf("entry `%d` (`%s`): %w", i, e.Name, NotAFileErr)
	}
	return e, nil
}

// Write replaces the content of file `i`. The old block range is released
// before the new one is allocated, so a rewrite never holds stale blocks;
// it also means the old content is gone if the new allocation fails.
func Write(fs *FileSystem, i Index, content []byte, now time.Time) error {
	e, err := Open(fs, i)
	if err != nil {
		return fmt.Errorf("writing `%d` bytes to file `%d`: %w", len(content), i, err)
	}

	if !e.Blocks.Empty() {
		fs.Blocks.Free(e.Blocks)
		e.Blocks = BlockRange{}
		e.Size = 0
		e.ModifiedAt = now
	}

	r, err := fs.Blocks.Allocate(fs.Blocks.BlocksFor(Byte(len(content))))
	if err != nil {
		return fmt.Errorf(
			"writing `%d` bytes to file `%d` (`%s`): %w",
			len(content),
			i,
			e.Name,
			err,
		)
	}
	if err := fs.Blocks.WriteRange(r, content); err != nil {
		fs.Blocks.Free(r)
		return fmt.Errorf(
			"writing `%d` bytes to file `%d` (`%s`): %w",
			len(content),
			i,
			e.Name,
			err,
		)
	}

	e.Blocks = r
	e.Size = Byte(len(content))
	e.ModifiedAt = now
	return nil
}

// Read returns a copy of the content of file `i`.
func Read(fs *FileSystem, i Index) ([]byte, error) {
	e, err := Open(fs, i)
	if err != nil {
		return nil, fmt.Errorf("reading file `%d`: %w", i, err)
	}
	if e.Blocks.Empty() {
		return nil, fmt.Errorf("reading file `%d` (`%s`): %w", i, e.Name, EmptyFileErr)
	}

	data, err := fs.Blocks.ReadRange(e.Blocks, e.Size)
	if err != nil {
		return nil, fmt.Errorf("reading file `%d` (`%s`): %w", i, e.Name, err)
	}
	return data, nil
}

// Delete releases the blocks of file `i` and erases its entry. Directories
// go through directory.RemoveAll instead.
func Delete(fs *FileSystem, i Index) error {
	if i == IndexRoot {
		return fmt.Errorf("deleting file `%d`: %w", i, CannotDeleteRootErr)
	}
	e, err := fs.Entries.Get(i)
	if err != nil {
		return fmt.Errorf("deleting file `%d`: %w", i, err)
	}
	if e.IsDir() {
		return fmt.Errorf("deleting file `%d` (`%s`): %w", i, e.Name, IsADirErr)
	}

	if !e.Blocks.Empty() {
		fs.Blocks.Free(e.Blocks)
	}
	if err := fs.Entries.Erase(i); err != nil {
		return fmt.Errorf("deleting file `%d`: %w", i, err)
	}
	return nil
}

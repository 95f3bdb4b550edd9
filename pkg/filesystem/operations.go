package filesystem

import (
	"fmt"
	"strings"

	"github.com/weberc2/memfs/pkg/directory"
	"github.com/weberc2/memfs/pkg/file"
	. "github.com/weberc2/memfs/pkg/types"
)

// Create makes an empty file or directory named `name` in the active
// directory and returns its index.
func (fs *FileSystem) Create(name string, kind Kind) (Index, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	i, err := fs.fs.Entries.Create(name, fs.current, kind, fs.TimeFunc())
	if err != nil {
		return IndexNil, err
	}
	fs.Logger.Debug(
		"created entry",
		"index", i,
		"name", name,
		"kind", kind.String(),
		"parent", fs.current,
	)
	return i, nil
}

func (fs *FileSystem) Mkdir(name string) (Index, error) {
	return fs.Create(name, KindDir)
}

func (fs *FileSystem) Write(t Target, content []byte) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	i, err := fs.resolve(t)
	if err != nil {
		return fmt.Errorf("writing `%s`: %w", t, err)
	}
	if err := file.Write(&fs.fs, i, content, fs.TimeFunc()); err != nil {
		return err
	}
	fs.Logger.Debug("wrote file", "index", i, "size", len(content))
	return nil
}

func (fs *FileSystem) Read(t Target) ([]byte, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	i, err := fs.resolve(t)
	if err != nil {
		return nil, fmt.Errorf("reading `%s`: %w", t, err)
	}
	return file.Read(&fs.fs, i)
}

// Delete removes a file, or a directory with everything beneath it. If the
// active directory is removed, the session moves to the removed
// directory's parent.
func (fs *FileSystem) Delete(t Target) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	i, err := fs.resolve(t)
	if err != nil {
		return fmt.Errorf("deleting `%s`: %w", t, err)
	}
	if i == IndexRoot {
		return fmt.Errorf("deleting `%s`: %w", t, CannotDeleteRootErr)
	}

	e, err := fs.fs.Entries.Get(i)
	if err != nil {
		return fmt.Errorf("deleting `%s`: %w", t, err)
	}
	if !e.IsDir() {
		if err := file.Delete(&fs.fs, i); err != nil {
			return err
		}
		fs.Logger.Debug("deleted file", "index", i)
		return nil
	}

	parent := e.Parent
	inSubtree, err := directory.IsAncestor(&fs.fs, i, fs.current)
	if err != nil {
		return fmt.Errorf("deleting `%s`: %w", t, err)
	}
	removed, err := directory.RemoveAll(&fs.fs, i)
	if err != nil {
		return err
	}
	if inSubtree {
		fs.Logger.Debug(
			"active directory removed; moving to parent",
			"from", fs.current,
			"to", parent,
		)
		fs.current = parent
	}
	fs.Logger.Debug("deleted directory", "index", i, "removed", len(removed))
	return nil
}

// ChangeDirectory moves the session to `name` in the active directory, or
// to the parent for `..`. A name containing `/` is resolved as a path.
func (fs *FileSystem) ChangeDirectory(name string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if strings.Contains(name, "/") {
		i, err := fs.lookup(name)
		if err != nil {
			return fmt.Errorf("changing directory to `%s`: %w", name, err)
		}
		if _, err := fs.fs.Dir(i); err != nil {
			return fmt.Errorf("changing directory to `%s`: %w", name, err)
		}
		fs.current = i
		return nil
	}

	next, err := directory.ChangeDirectory(&fs.fs, fs.current, name)
	if err != nil {
		return err
	}
	fs.current = next
	return nil
}

func (fs *FileSystem) CurrentPath() (string, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	return directory.AbsolutePath(&fs.fs, fs.current)
}

func (fs *FileSystem) Path(t Target) (string, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	i, err := fs.resolve(t)
	if err != nil {
		return "", err
	}
	return directory.AbsolutePath(&fs.fs, i)
}

// ListChildren returns the entries directly inside directory `dir`, in
// table order.
func (fs *FileSystem) ListChildren(dir Index) ([]FileInfo, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	return directory.List(&fs.fs, dir)
}

func (fs *FileSystem) Stat(t Target) (FileInfo, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	i, err := fs.resolve(t)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat `%s`: %w", t, err)
	}
	e, err := fs.fs.Entries.Get(i)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat `%s`: %w", t, err)
	}
	return directory.NewFileInfo(i, e), nil
}

func (fs *FileSystem) IsEmpty(dir Index) (bool, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	return directory.IsEmpty(&fs.fs, dir)
}

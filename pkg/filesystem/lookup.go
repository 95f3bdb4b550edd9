package filesystem

import (
	"fmt"
	"strings"

	"github.com/weberc2/memfs/pkg/directory"
	. "github.com/weberc2/memfs/pkg/types"
)

// Lookup resolves `path`. Absolute paths start at the root; relative paths
// start at the active directory. `.` and `..` segments are honored.
func (fs *FileSystem) Lookup(path string) (Index, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	return fs.lookup(path)
}

func (fs *FileSystem) lookup(path string) (Index, error) {
	if path == "" {
		return IndexNil, fmt.Errorf("looking up path ``: %w", InvalidNameErr)
	}

	i := fs.current
	if path[0] == '/' {
		i = IndexRoot
	}
	for _, chunk := range strings.Split(path, "/") {
		if chunk == "" {
			continue
		}
		next, err := directory.Lookup(&fs.fs, i, chunk)
		if err != nil {
			return IndexNil, fmt.Errorf("looking up path `%s`: %w", path, err)
		}
		i = next
	}
	return i, nil
}

package filesystem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weberc2/memfs/pkg/directory"
	. "github.com/weberc2/memfs/pkg/types"
)

// Target designates an entry either by table index or by name. A name
// containing `/` is resolved as a path; any other name is looked up in the
// active directory.
type Target struct {
	index  Index
	name   string
	byName bool
}

func IndexTarget(i Index) Target { return Target{index: i} }

func NameTarget(name string) Target { return Target{name: name, byName: true} }

// ParseTarget treats an all-digit argument as an index and anything else as
// a name. Prefix a numeric name with `./` to look it up by name.
func ParseTarget(s string) Target {
	if s != "" && strings.Trim(s, "0123456789") == "" {
		if i, err := strconv.Atoi(s); err == nil {
			return IndexTarget(Index(i))
		}
	}
	return NameTarget(s)
}

func (t Target) String() string {
	if t.byName {
		return t.name
	}
	return strconv.Itoa(int(t.index))
}

func (fs *FileSystem) Resolve(t Target) (Index, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	return fs.resolve(t)
}

func (fs *FileSystem) resolve(t Target) (Index, error) {
	if !t.byName {
		if _, err := fs.fs.Entries.Get(t.index); err != nil {
			return IndexNil, fmt.Errorf("resolving target `%s`: %w", t, err)
		}
		return t.index, nil
	}
	if strings.Contains(t.name, "/") {
		i, err := fs.lookup(t.name)
		if err != nil {
			return IndexNil, fmt.Errorf("resolving target `%s`: %w", t, err)
		}
		return i, nil
	}
	i, err := directory.Lookup(&fs.fs, fs.current, t.name)
	if err != nil {
		return IndexNil, fmt.Errorf("resolving target `%s`: %w", t, err)
	}
	return i, nil
}

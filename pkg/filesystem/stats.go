package filesystem

import (
	"github.com/google/uuid"
	"github.com/weberc2/memfs/pkg/block"
	. "github.com/weberc2/memfs/pkg/types"
)

type Stats struct {
	ID      uuid.UUID `json:"id"`
	Entries Index     `json:"entries"`
	Live    int       `json:"live"`
	NameMax int       `json:"nameMax"`
	block.Stats
}

func (fs *FileSystem) Stats() Stats {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	return Stats{
		ID:      fs.ID,
		Entries: fs.fs.Entries.Cap(),
		Live:    fs.fs.Entries.Len(),
		NameMax: fs.fs.Entries.NameMax(),
		Stats:   fs.fs.Blocks.Stats(),
	}
}

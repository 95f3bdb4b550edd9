package directory

import (
	"time"

	. "github.com/weberc2/memfs/pkg/types"
)

type FileInfo struct {
	Index      Index      `json:"index"`
	Name       string     `json:"name"`
	Kind       Kind       `json:"kind"`
	Size       Byte       `json:"size"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt time.Time  `json:"modifiedAt"`
	Blocks     BlockRange `json:"blocks"`
	Parent     Index      `json:"parent"`
}

func NewFileInfo(i Index, e *Entry) FileInfo {
	return FileInfo{
		Index:      i,
		Name:       e.Name,
		Kind:       e.Kind,
		Size:       e.Size,
		CreatedAt:  e.CreatedAt,
		ModifiedAt: e.ModifiedAt,
		Blocks:     e.Blocks,
		Parent:     e.Parent,
	}
}

func (fi *FileInfo) Equal(other *FileInfo) bool {
	return fi.Index == other.Index && fi.Name == other.Name &&
		fi.Kind == other.Kind && fi.Size == other.Size &&
		fi.Blocks == other.Blocks && fi.Parent == other.Parent
}

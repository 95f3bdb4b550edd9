package types

import (
	"fmt"
	"time"
)

type Index int

const (
	IndexRoot Index = 0
	IndexNil  Index = -1
)

type Entry struct {
	Name       string     `json:"name"`
	Kind       Kind       `json:"kind"`
	Size       Byte       `json:"size"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt time.Time  `json:"modifiedAt"`
	Blocks     BlockRange `json:"blocks"`
	Parent     Index      `json:"parent"`
}

// Live reports whether the slot holds an entry. Empty slots have an empty
// name.
func (e *Entry) Live() bool { return e.Name != "" }

func (e *Entry) IsDir() bool { return e.Kind == KindDir }

func (e *Entry) IsFile() bool { return e.Kind == KindFile }

type Kind uint8

const (
	KindInvalid Kind = iota
	KindFile
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindFile:
		return "File"
	case KindDir:
		return "Dir"
	default:
		panic(fmt.Sprintf("invalid kind: `%d`", k))
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	s := k.String()
	out := make([]byte, len(s)+2)
	out[0] = '"'
	out[len(out)-1] = '"'
	copy(out[1:], s)
	return out, nil
}

func (k Kind) Validate() error {
	if k <= KindInvalid || k > KindDir {
		return fmt.Errorf("validating kind `%d`: %w", k, InvalidKindErr)
	}
	return nil
}

const (
	InvalidKindErr ConstError = "invalid kind"
)

package io

import (
	"fmt"
	"io"

	. "github.com/weberc2/memfs/pkg/types"
)

// Buffer is a fixed-length in-memory volume. It never grows; accesses past
// the end fail with `io.EOF`.
type Buffer struct {
	data []byte
}

func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

func (b *Buffer) Len() Byte { return Byte(len(b.data)) }

func (b *Buffer) ReadAt(offset Byte, p []byte) error {
	if offset >= 0 && offset+Byte(len(p)) <= Byte(len(b.data)) {
		copy(p, b.data[offset:offset+Byte(len(p))])
		return nil
	}
	return fmt.Errorf(
		"reading `%d` bytes from buffer at offset `%d`: %w",
		len(p),
		offset,
		io.EOF,
	)
}

func (b *Buffer) WriteAt(offset Byte, p []byte) error {
	if offset >= 0 && offset+Byte(len(p)) <= Byte(len(b.data)) {
		copy(b.data[offset:offset+Byte(len(p))], p)
		return nil
	}
	return fmt.Errorf(
		"writing `%d` bytes to buffer at offset `%d`: %w",
		len(p),
		offset,
		io.EOF,
	)
}

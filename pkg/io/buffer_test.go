package io

import (
	"bytes"
	"errors"
	"io"
	"testing"

	. "github.com/weberc2/memfs/pkg/types"
)

func TestBuffer_WriteAtReadAt(t *testing.T) {
	b := NewBuffer(make([]byte, 8))
	if err := b.WriteAt(3, []byte("abc")); err != nil {
		t.Fatalf("WriteAt(): unexpected err: %v", err)
	}

	found := make([]byte, 5)
	if err := b.ReadAt(2, found); err != nil {
		t.Fatalf("ReadAt(): unexpected err: %v", err)
	}
	if wanted := []byte("\x00abc\x00"); !bytes.Equal(wanted, found) {
		t.Fatalf("ReadAt(): wanted `%#x`; found `%#x`", wanted, found)
	}
}

func TestBuffer_OutOfBounds(t *testing.T) {
	b := NewBuffer(make([]byte, 4))
	if err := b.WriteAt(2, []byte("abc")); !errors.Is(err, io.EOF) {
		t.Fatalf("WriteAt(): wanted `%v`; found `%v`", io.EOF, err)
	}
	if err := b.ReadAt(-1, make([]byte, 1)); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadAt(): wanted `%v`; found `%v`", io.EOF, err)
	}
	if wanted, found := Byte(4), b.Len(); wanted != found {
		t.Fatalf("Len(): wanted `%d`; found `%d`", wanted, found)
	}
}

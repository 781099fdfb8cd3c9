// Package ico writes the legacy Windows icon container format. Modern
// readers accept PNG encoded entries, so the package stores the
// supplied image bytes verbatim and only frames them with the
// ICONDIR/ICONDIRENTRY directory structures.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// An Entry is one image embedded in an icon file.
type Entry struct {
	Size int    // square pixel edge of the embedded image
	Data []byte // encoded image bytes, normally PNG
}

const (
	headerSize = 6
	entrySize  = 16

	// resourceIcon is the resource type tag for icons, as opposed to cursors.
	resourceIcon = 1
)

// iconDir is the fixed file header (ICONDIR).
type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// iconDirEntry describes one embedded image (ICONDIRENTRY). Color
// count, planes and bit count are left zero; readers take those from
// the embedded image itself.
type iconDirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

// Encode writes an icon file holding the given entries. The image data
// blocks follow the directory table in entry order, and each directory
// entry records the absolute offset and byte length of its block. All
// multi byte fields are little endian.
func Encode(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("ico: no entries to encode")
	}

	buf := new(bytes.Buffer)
	dir := iconDir{Type: resourceIcon, Count: uint16(len(entries))}
	if err := binary.Write(buf, binary.LittleEndian, dir); err != nil {
		return err
	}

	offset := headerSize + entrySize*len(entries)
	for _, e := range entries {
		ent := iconDirEntry{
			Width:       dimensionByte(e.Size),
			Height:      dimensionByte(e.Size),
			BytesInRes:  uint32(len(e.Data)),
			ImageOffset: uint32(offset),
		}
		if err := binary.Write(buf, binary.LittleEndian, ent); err != nil {
			return err
		}
		offset += len(e.Data)
	}

	for _, e := range entries {
		buf.Write(e.Data)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// dimensionByte squeezes a pixel dimension into the single byte the
// directory entry provides; zero stands for 256 or larger.
func dimensionByte(size int) uint8 {
	if size >= 256 {
		return 0
	}
	return uint8(size)
}

package favicon

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"io"
)

// pngSignature is the fixed eight byte header every PNG file starts with.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// EncodePNG serializes the canvas as an 8 bit RGBA PNG. Every scanline
// uses filter type zero and the whole image goes into a single IDAT
// chunk compressed at the highest zlib level, so the same canvas always
// encodes to the same bytes. Any standard decoder reads the output.
func (c *Canvas) EncodePNG(w io.Writer) error {
	stride := c.size * 4
	raw := make([]byte, 0, c.size*(stride+1))
	for y := 0; y < c.size; y++ {
		raw = append(raw, 0)
		raw = append(raw, c.pix[y*stride:(y+1)*stride]...)
	}

	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, zlib.BestCompression)
	if err != nil {
		return err
	}
	if _, err := zw.Write(raw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(c.size))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(c.size))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: RGBA
	// compression, filter and interlace method stay zero

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}
	if err := writeChunk(w, "IHDR", ihdr); err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", compressed.Bytes()); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

// writeChunk frames one PNG chunk: big endian payload length, the four
// byte type, the payload and a CRC32 covering type plus payload.
func writeChunk(w io.Writer, typ string, payload []byte) error {
	chunk := make([]byte, 8+len(payload)+4)
	binary.BigEndian.PutUint32(chunk[0:4], uint32(len(payload)))
	copy(chunk[4:8], typ)
	copy(chunk[8:], payload)

	crc := crc32.ChecksumIEEE(chunk[4 : 8+len(payload)])
	binary.BigEndian.PutUint32(chunk[8+len(payload):], crc)

	_, err := w.Write(chunk)
	return err
}

// Package frame implements the payload framing used by the metadata
// carriers (MP3 ID3 tags, PDF properties): a magic marker, a uint32
// little-endian payload length, the payload itself, all base64 encoded so
// it survives text-valued carrier slots. The fake-PNG carrier does not
// use this; its payload is raw and unframed.
package frame

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
)

// magic identifies framed data inside a carrier slot.
var magic = []byte{0xDE, 0xAD, 0xBE, 0xEF, 0xCA, 0xFE, 0xBA, 0xBE}

const sizeFieldLen = 4

// Encode frames payload and returns it base64 encoded.
func Encode(payload []byte) string {
	var buf bytes.Buffer
	buf.Write(magic)

	size := make([]byte, sizeFieldLen)
	binary.LittleEndian.PutUint32(size, uint32(len(payload)))
	buf.Write(size)

	buf.Write(payload)
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// Decode reverses Encode: base64 decode, check the magic marker, read the
// length field and return exactly that many payload bytes.
func Decode(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 data: %w", err)
	}

	if len(raw) < len(magic)+sizeFieldLen {
		return nil, errors.New("framed data too short to contain a payload")
	}
	if !bytes.Equal(raw[:len(magic)], magic) {
		return nil, errors.New("magic marker not found - no framed data")
	}

	size := binary.LittleEndian.Uint32(raw[len(magic) : len(magic)+sizeFieldLen])
	start := len(magic) + sizeFieldLen
	if uint64(len(raw)-start) < uint64(size) {
		return nil, fmt.Errorf("framed payload truncated, expected %d bytes", size)
	}
	return raw[start : start+int(size)], nil
}

// Package header defines the fixed fake-PNG blob prepended to carrier files.
//
// The blob is a real minimal PNG (signature, IHDR, one IDAT chunk, IEND)
// but the transform never looks inside it; it is an opaque constant whose
// only interesting property is its length. The exact bytes must never
// change, or carrier files stop being interoperable with files produced
// by other implementations of the scheme.
package header

import "bytes"

// Size is the length of Blob in bytes.
const Size = 272

// Blob is the byte sequence written in front of every payload. Never mutate.
var Blob = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x44,
	0x08, 0x02, 0x00, 0x00, 0x00, 0xc6, 0x25, 0xaa, 0x3e, 0x00, 0x00, 0x00,
	0xc2, 0x49, 0x44, 0x41, 0x54, 0x78, 0x5e, 0xed, 0xd4, 0x81, 0x06, 0xc3,
	0x30, 0x14, 0x40, 0xd1, 0xb7, 0x34, 0xdd, 0xff, 0xff, 0x6f, 0xb3, 0x74,
	0x56, 0xea, 0x89, 0x12, 0x6c, 0x28, 0x73, 0xe2, 0xaa, 0x34, 0x49, 0x03,
	0x87, 0xd6, 0xfe, 0xd8, 0x7b, 0x89, 0xbb, 0x52, 0x8d, 0x3b, 0x87, 0xfe,
	0x01, 0x00, 0x80, 0x00, 0x00, 0x10, 0x00, 0x00, 0x02, 0x00, 0x40, 0x00,
	0x00, 0x08, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00, 0x00, 0x04, 0x00, 0x80,
	0x00, 0x00, 0x10, 0x00, 0x00, 0x02, 0x00, 0x40, 0x00, 0x00, 0x08, 0x00,
	0x00, 0x01, 0x00, 0x20, 0x00, 0x00, 0x04, 0x00, 0x80, 0x00, 0x00, 0x10,
	0x00, 0x00, 0x02, 0x00, 0x40, 0x00, 0x00, 0x08, 0x00, 0x00, 0x01, 0x00,
	0x20, 0x00, 0x00, 0x00, 0xd4, 0x5e, 0x6a, 0x64, 0x4b, 0x94, 0xf5, 0x98,
	0x7c, 0xd1, 0xf4, 0x92, 0x5c, 0x5c, 0x3e, 0xcf, 0x9c, 0x3f, 0x73, 0x71,
	0x58, 0x5f, 0xaf, 0x8b, 0x79, 0x5b, 0xee, 0x96, 0xb6, 0x47, 0xeb, 0xf1,
	0xea, 0xd1, 0xce, 0xb6, 0xe3, 0x75, 0x3b, 0xe6, 0xb9, 0x95, 0x8d, 0xc7,
	0xce, 0x03, 0x39, 0xc9, 0xaf, 0xc6, 0x33, 0x93, 0x7b, 0x66, 0x37, 0xcf,
	0xab, 0xbf, 0xf9, 0xc9, 0x2f, 0x08, 0x80, 0x00, 0x00, 0x10, 0x00, 0x00,
	0x02, 0x00, 0x40, 0x00, 0x00, 0x08, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
	0x00, 0x04, 0x00, 0x80, 0x00, 0x00, 0x10, 0x00, 0x00, 0x02, 0x00, 0x40,
	0x00, 0x00, 0x08, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00, 0x00, 0x8c, 0x37,
	0xdb, 0x68, 0x03, 0x20, 0xfb, 0xed, 0x96, 0x65, 0x00, 0x00, 0x00, 0x00,
	0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

// HasSignature reports whether b starts with the 8-byte PNG signature.
// Extraction never calls this; it exists for callers that want a quick
// sanity check before handing a file to a picky viewer.
func HasSignature(b []byte) bool {
	return len(b) >= len(pngSignature) && bytes.Equal(b[:len(pngSignature)], pngSignature)
}

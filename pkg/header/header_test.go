package header

import (
	"bytes"
	"testing"
)

func TestBlobLength(t *testing.T) {
	if len(Blob) != Size {
		t.Fatalf("len(Blob) = %d, want %d", len(Blob), Size)
	}
}

func TestBlobLooksLikePNG(t *testing.T) {
	if !HasSignature(Blob) {
		t.Error("Blob does not start with the PNG signature")
	}

	// IEND chunk type plus its fixed CRC close out the blob.
	trailer := []byte{0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82}
	if !bytes.HasSuffix(Blob, trailer) {
		t.Error("Blob does not end with an IEND chunk")
	}
}

func TestHasSignature(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "nil", data: nil, want: false},
		{name: "short", data: []byte{0x89, 0x50}, want: false},
		{name: "wrong bytes", data: []byte("GIF89a general"), want: false},
		{name: "signature only", data: Blob[:8], want: true},
		{name: "full blob", data: Blob, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSignature(tt.data); got != tt.want {
				t.Errorf("HasSignature = %v, want %v", got, tt.want)
			}
		})
	}
}

package frame

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{name: "empty", payload: []byte{}},
		{name: "text", payload: []byte("hidden message")},
		{name: "binary", payload: []byte{0x00, 0xff, 0x10, 0x80, 0x7f}},
		{name: "larger than one base64 line", payload: bytes.Repeat([]byte{0xAB, 0xCD}, 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(Encode(tt.payload))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(tt.payload, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	if _, err := Decode("not valid base64!!!"); err == nil {
		t.Fatal("Decode accepted malformed base64")
	}
}

func TestDecodeRejectsShortData(t *testing.T) {
	short := base64.StdEncoding.EncodeToString([]byte("tiny"))
	if _, err := Decode(short); err == nil {
		t.Fatal("Decode accepted data shorter than the frame prefix")
	}
}

func TestDecodeRejectsMissingMagic(t *testing.T) {
	raw := make([]byte, 16)
	if _, err := Decode(base64.StdEncoding.EncodeToString(raw)); err == nil {
		t.Fatal("Decode accepted data without the magic marker")
	}
}

func TestDecodeRejectsTruncatedPayload(t *testing.T) {
	encoded := Encode([]byte("payload that will be cut short"))
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}

	truncated := base64.StdEncoding.EncodeToString(raw[:len(raw)-5])
	if _, err := Decode(truncated); err == nil {
		t.Fatal("Decode accepted a truncated payload")
	}
}

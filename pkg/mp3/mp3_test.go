package mp3

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// fakeMP3 returns bytes that pass for an untagged MPEG stream: a frame
// sync header followed by silence. id3v2 prepends a fresh tag on save.
func fakeMP3() []byte {
	data := make([]byte, 512)
	data[0] = 0xFF
	data[1] = 0xFB
	return data
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cover := filepath.Join(dir, "cover.mp3")
	if err := os.WriteFile(cover, fakeMP3(), 0644); err != nil {
		t.Fatalf("write cover: %v", err)
	}

	payload := []byte("secret payload\x00with binary bytes\xff\xfe")
	input := filepath.Join(dir, "secret.bin")
	if err := os.WriteFile(input, payload, 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	tagged := filepath.Join(dir, "tagged.mp3")
	if err := Embed(cover, input, tagged); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	recovered := filepath.Join(dir, "recovered.bin")
	if err := Extract(tagged, recovered); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	got, err := os.ReadFile(recovered)
	if err != nil {
		t.Fatalf("read recovered: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("round trip changed payload: got %q, want %q", got, payload)
	}
}

func TestExtractWithoutHiddenData(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.mp3")
	if err := os.WriteFile(plain, fakeMP3(), 0644); err != nil {
		t.Fatalf("write cover: %v", err)
	}

	if err := Extract(plain, filepath.Join(dir, "out")); err == nil {
		t.Fatal("Extract found hidden data in an untouched MP3")
	}
}

func TestEmbedMissingInput(t *testing.T) {
	dir := t.TempDir()

	cover := filepath.Join(dir, "cover.mp3")
	if err := os.WriteFile(cover, fakeMP3(), 0644); err != nil {
		t.Fatalf("write cover: %v", err)
	}

	if err := Embed(cover, filepath.Join(dir, "missing"), filepath.Join(dir, "out.mp3")); err == nil {
		t.Fatal("Embed with missing input succeeded, want error")
	}
}

func TestEmbedMissingCover(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "secret")
	if err := os.WriteFile(input, []byte("x"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if err := Embed(filepath.Join(dir, "missing.mp3"), input, filepath.Join(dir, "out.mp3")); err == nil {
		t.Fatal("Embed with missing cover succeeded, want error")
	}
}

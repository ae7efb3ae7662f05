// Package mp3 hides a payload inside an MP3 file's ID3v2 tag, in a COMM
// frame the player ignores.
package mp3

import (
	"fmt"
	"io"
	"os"

	"github.com/bogem/id3v2"

	"github.com/DavidOnSoftware/pnger/pkg/frame"
)

const stegoDescription = "STEGO"

// Embed copies coverPath to outputPath and adds a comment frame holding
// the framed content of inputPath. The cover's audio data is untouched.
func Embed(coverPath, inputPath, outputPath string) error {
	payload, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", inputPath, err)
	}

	if err := copyFile(coverPath, outputPath); err != nil {
		return err
	}

	tag, err := id3v2.Open(outputPath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open output MP3 %s: %w", outputPath, err)
	}
	defer tag.Close()

	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: stegoDescription,
		Text:        frame.Encode(payload),
	})

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save MP3 tag in %s: %w", outputPath, err)
	}
	return nil
}

// Extract recovers the payload hidden by Embed and writes it to
// outputPath. It looks for the COMM frame first, then falls back to a
// user-defined TXXX frame with the same description.
func Extract(inputPath, outputPath string) error {
	tag, err := id3v2.Open(inputPath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open MP3 file %s: %w", inputPath, err)
	}
	defer tag.Close()

	var encoded string
	for _, f := range tag.GetFrames(tag.CommonID("Comments")) {
		comment, ok := f.(id3v2.CommentFrame)
		if !ok {
			continue
		}
		if comment.Description == stegoDescription {
			encoded = comment.Text
			break
		}
	}
	if encoded == "" {
		for _, f := range tag.GetFrames(tag.CommonID("User defined text information frame")) {
			text, ok := f.(id3v2.UserDefinedTextFrame)
			if !ok {
				continue
			}
			if text.Description == stegoDescription {
				encoded = text.Value
				break
			}
		}
	}
	if encoded == "" {
		return fmt.Errorf("no hidden data found in ID3 tags of %s", inputPath)
	}

	payload, err := frame.Decode(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode hidden data in %s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, payload, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}
	return nil
}

func copyFile(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open cover file %s: %w", srcPath, err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", dstPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", srcPath, dstPath, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", dstPath, err)
	}
	return nil
}

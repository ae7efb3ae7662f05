// Package pdfmeta hides a payload inside a PDF file's document
// properties. The cover PDF still opens normally in any viewer.
package pdfmeta

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/DavidOnSoftware/pnger/pkg/frame"
)

const stegoProperty = "STEGO"

// Embed copies coverPath to outputPath and records the framed content of
// inputPath under the STEGO document property.
func Embed(coverPath, inputPath, outputPath string) error {
	payload, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", inputPath, err)
	}

	if err := copyFile(coverPath, outputPath); err != nil {
		return err
	}

	properties := map[string]string{
		stegoProperty: frame.Encode(payload),
	}
	if err := api.AddPropertiesFile(outputPath, outputPath, properties, nil); err != nil {
		return fmt.Errorf("failed to add properties to PDF %s: %w", outputPath, err)
	}
	return nil
}

// Extract recovers the payload hidden by Embed and writes it to outputPath.
func Extract(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open PDF file %s: %w", inputPath, err)
	}
	defer in.Close()

	properties, err := api.Properties(in, nil)
	if err != nil {
		return fmt.Errorf("failed to read properties of PDF %s: %w", inputPath, err)
	}

	encoded, ok := properties[stegoProperty]
	if !ok {
		return fmt.Errorf("no hidden data found in properties of %s", inputPath)
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

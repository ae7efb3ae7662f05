package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/DavidOnSoftware/pnger/pkg/carrier"
	"github.com/DavidOnSoftware/pnger/pkg/env"
	"github.com/DavidOnSoftware/pnger/pkg/logger"
	"github.com/DavidOnSoftware/pnger/pkg/mp3"
	"github.com/DavidOnSoftware/pnger/pkg/pdfmeta"
)

type Config struct {
	Input    string
	Output   string
	Cover    string
	Carrier  string
	Extract  bool
	Progress bool
}

func parseFlags() (*Config, error) {
	config := &Config{}

	flag.StringVar(&config.Input, "i", "", "Input file. For embedding: the file to hide. For extracting: the carrier file.")
	flag.StringVar(&config.Output, "o", "", "Output file. For embedding: the carrier to produce. For extracting: the recovered file.")
	flag.BoolVar(&config.Extract, "u", false, "Unpng: extract the hidden file from a carrier instead of embedding")
	flag.StringVar(&config.Carrier, "carrier", "png", "Carrier type: png (fake header prepend), mp3 (ID3 tag) or pdf (document properties)")
	flag.StringVar(&config.Cover, "cover", "", "Cover media file to hide the payload in (mp3/pdf embedding only)")
	flag.BoolVar(&config.Progress, "progress", false, "Show a progress bar while embedding (png carrier only)")
	flag.Parse()

	if config.Input == "" || config.Output == "" {
		return nil, errors.New("both -i and -o are required")
	}

	switch config.Carrier {
	case "png", "mp3", "pdf":
	default:
		return nil, fmt.Errorf("unknown carrier type %q (supported: png, mp3, pdf)", config.Carrier)
	}

	if !config.Extract && config.Carrier != "png" && config.Cover == "" {
		return nil, fmt.Errorf("-cover is required to embed into a %s carrier", config.Carrier)
	}

	return config, nil
}

func run() error {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()
	logger.Init(env.LogLevel())

	config, err := parseFlags()
	if err != nil {
		return err
	}

	switch config.Carrier {
	case "mp3":
		if config.Extract {
			if err := mp3.Extract(config.Input, config.Output); err != nil {
				return err
			}
			logger.Info("extracted hidden file from MP3 tag", "carrier", config.Input, "output", config.Output)
			return nil
		}
		if err := mp3.Embed(config.Cover, config.Input, config.Output); err != nil {
			return err
		}
		logger.Info("hid file in MP3 tag", "input", config.Input, "cover", config.Cover, "output", config.Output)
		return nil

	case "pdf":
		if config.Extract {
			if err := pdfmeta.Extract(config.Input, config.Output); err != nil {
				return err
			}
			logger.Info("extracted hidden file from PDF properties", "carrier", config.Input, "output", config.Output)
			return nil
		}
		if err := pdfmeta.Embed(config.Cover, config.Input, config.Output); err != nil {
			return err
		}
		logger.Info("hid file in PDF properties", "input", config.Input, "cover", config.Cover, "output", config.Output)
		return nil
	}

	fsys := afero.NewOsFs()
	chunkSize := env.CopyChunkSize()

	if config.Extract {
		if err := carrier.Extract(fsys, config.Input, config.Output, chunkSize); err != nil {
			return err
		}
		logger.Info("extracted hidden file", "carrier", config.Input, "output", config.Output)
		return nil
	}

	if err := embedPNG(fsys, config, chunkSize); err != nil {
		return err
	}
	logger.Info("hid file behind fake PNG header", "input", config.Input, "output", config.Output)
	return nil
}

// embedPNG runs the fake-PNG embed, optionally wrapping the input in a
// progress bar proxy reader.
func embedPNG(fsys afero.Fs, config *Config, chunkSize int) error {
	if !config.Progress {
		return carrier.Embed(fsys, config.Input, config.Output, chunkSize)
	}

	in, err := fsys.Open(config.Input)
	if err != nil {
		return fmt.Errorf("failed to open input file %s: %w", config.Input, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat input file %s: %w", config.Input, err)
	}

	out, err := fsys.Create(config.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", config.Output, err)
	}

	bar := pb.Full.Start64(info.Size())
	if _, err := carrier.Wrap(out, bar.NewProxyReader(in), chunkSize); err != nil {
		bar.Finish()
		out.Close()
		return fmt.Errorf("failed to embed %s into %s: %w", config.Input, config.Output, err)
	}
	bar.Finish()

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", config.Output, err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintf(os.Stderr, "\t%s -i <from_file> -o <to_file.png>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\t%s -i <from_file.png> -o <recovered_file> -u\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Flags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/docuar/pkg/docu"
)

func packCmd() *cli.Command {
	var outputPath string

	return &cli.Command{
		Name:      "pack",
		Usage:     "Pack files into a DOCU archive",
		ArgsUsage: "file...",
		Flags: append(loggingFlags(),
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output archive path",
				Required:    true,
				Destination: &outputPath,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs := cmd.Args().Slice()
			if len(inputs) == 0 {
				return errors.New("missing input files, usage: docuar pack -o <archive>.env file...")
			}
			log := newLog()

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("create archive %s: %w", outputPath, err)
			}
			defer func() { _ = out.Close() }()

			w := docu.NewWriter(out)
			for _, in := range inputs {
				data, err := os.ReadFile(in)
				if err != nil {
					return fmt.Errorf("read input %s: %w", in, err)
				}
				name := filepath.Base(in)
				ext := strings.TrimPrefix(filepath.Ext(name), ".")
				if ext == "" {
					return fmt.Errorf("input %s has no extension", in)
				}
				if err := w.Append(docu.Record{Name: name, Ext: ext, Data: data}); err != nil {
					return fmt.Errorf("pack %s: %w", in, err)
				}
				log.Debug("packed entry", "name", name, "bytes", len(data))
			}

			if err := out.Close(); err != nil {
				return fmt.Errorf("close archive %s: %w", outputPath, err)
			}
			log.Info("archive written", "path", outputPath, "files", len(inputs))
			return nil
		},
	}
}

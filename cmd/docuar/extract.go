package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/docuar/internal/extract"
)

// validateArchiveArg enforces the CLI input contract: the archive argument is
// required, must carry the .env suffix and must exist on disk.
func validateArchiveArg(path string) error {
	if path == "" {
		return errors.New("missing archive argument, usage: docuar extract <archive>.env")
	}
	if !strings.HasSuffix(strings.ToLower(path), ".env") {
		return fmt.Errorf("archive must have a .env suffix: %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s: %w", path, err)
	}
	return nil
}

func extractCmd() *cli.Command {
	var outputDir string

	return &cli.Command{
		Name:      "extract",
		Aliases:   []string{"x"},
		Usage:     "Extract every embedded file from an archive",
		ArgsUsage: "<archive>.env",
		Flags: append(loggingFlags(),
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output directory",
				Value:       "output",
				Destination: &outputDir,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if err := validateArchiveArg(path); err != nil {
				return err
			}
			applyConfig(cmd, LoadConfig(), &outputDir, nil)
			log := newLog()

			ex := &extract.Extractor{Log: log, OutputDir: outputDir}
			report, err := ex.Run(path)
			if err != nil {
				return err
			}

			log.Info("archive extracted", "archive", path, "files", len(report.Files))
			fmt.Printf("Content saved into %s directory\n", outputDir)
			report.Tree(os.Stdout)
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/docuar/pkg/docu"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"l"},
		Usage:     "List embedded files without extracting them",
		ArgsUsage: "<archive>.env",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if err := validateArchiveArg(path); err != nil {
				return err
			}

			f, err := docu.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			records, err := f.Scan()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Printf("%-32s %-6s %10s  %s\n", "NAME", "EXT", "SIZE", "KIND")
			for _, rec := range records {
				kind := "binary"
				if rec.Textual() {
					kind = "text"
				}
				fmt.Printf("%-32s %-6s %10d  %s\n", rec.Name, rec.Ext, rec.Size(), kind)
			}
			fmt.Printf("%d file(s)\n", len(records))
			return nil
		},
	}
}

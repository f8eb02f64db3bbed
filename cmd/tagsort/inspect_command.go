package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tagsort/internal/tags"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "inspect <file>",
		Short:       "Dump every tag found in one audio file",
		Long:        "inspect reads a single file with a format-agnostic tag parser and prints everything it finds. Useful for diagnosing why copy_sort rejected a file.",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			if info, err := os.Stat(path); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file does not exist: %s", path)
				}
				return fmt.Errorf("inspect file: %w", err)
			} else if info.IsDir() {
				return fmt.Errorf("%s is a directory", path)
			}

			result, err := tags.Probe(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Format: %s (%s)\n", result.Format, result.FileType)
			if len(result.Fields) == 0 {
				fmt.Fprintln(out, "No tags found.")
				return nil
			}
			rows := make([][]string, 0, len(result.Fields))
			for _, field := range result.Fields {
				rows = append(rows, []string{field.Name, field.Value})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Tag", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}

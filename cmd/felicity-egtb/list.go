package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kvhoang/felicity-egtb/internal/egtbdb"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every table found under the data folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.DataDir == "" {
				return fmt.Errorf("list: -d DATA_DIR is required")
			}
			game, _, err := rootGame()
			if err != nil {
				return err
			}
			names, err := scanNames(opts.DataDir, egtbdb.Ext(game))
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}
	return cmd
}

// scanNames walks root and returns every distinct table name found, sorted,
// without loading any file contents.
func scanNames(root, ext string) ([]string, error) {
	suffixW := ".w" + ext
	suffixB := ".b" + ext
	seen := map[string]struct{}{}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		switch {
		case strings.HasSuffix(base, suffixW):
			seen[strings.TrimSuffix(base, suffixW)] = struct{}{}
		case strings.HasSuffix(base, suffixB):
			seen[strings.TrimSuffix(base, suffixB)] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list: walk %s: %w", root, err)
	}

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

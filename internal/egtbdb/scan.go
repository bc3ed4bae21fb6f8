package egtbdb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kvhoang/felicity-egtb/internal/egtbfile"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

// Ext returns the fixed per-variant table file extension.
func Ext(g variant.Game) string {
	if g == variant.Xiangqi {
		return ".fexq"
	}
	return ".fegtb"
}

// Preload walks root recursively, classifying every "<name>.<w|b><ext>"
// file it finds by name and side, constructing (or merging into) one File
// per name.
func (db *Db) Preload(root string, loadMode egtbfile.LoadMode) error {
	ext := Ext(db.Game)
	suffixW := ".w" + ext
	suffixB := ".b" + ext

	pending := map[string]struct{ w, b string }{}

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
			nm := strings.TrimSuffix(base, suffixW)
			e := pending[nm]
			e.w = path
			pending[nm] = e
		case strings.HasSuffix(base, suffixB):
			nm := strings.TrimSuffix(base, suffixB)
			e := pending[nm]
			e.b = path
			pending[nm] = e
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("egtbdb: walk %s: %w", root, err)
	}

	for nm, e := range pending {
		f := egtbfile.NewFile(nm, e.w, e.b, db.Mode, db.Cache)
		if err := f.Preload(loadMode); err != nil {
			return fmt.Errorf("egtbdb: preload %s: %w", nm, err)
		}
		db.Add(f)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kvhoang/felicity-egtb/internal/egtbdb"
	"github.com/kvhoang/felicity-egtb/internal/egtbfile"
	"github.com/kvhoang/felicity-egtb/internal/egtbgen"
	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/score"
	"github.com/kvhoang/felicity-egtb/internal/variant"
)

func newGenerateCmd() *cobra.Command {
	var nameFlag string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build one endgame table, or every table in a material profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nameFlag == "" {
				return fmt.Errorf("generate: -n NAME|PROFILE is required")
			}
			if opts.DataDir == "" {
				return fmt.Errorf("generate: -d DATA_DIR is required")
			}
			game, newBoard, err := rootGame()
			if err != nil {
				return err
			}
			targets, err := resolveTargets(game, nameFlag)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(opts.DataDir, 0755); err != nil {
				return err
			}
			cache, err := egtbfile.NewBlockCache(256)
			if err != nil {
				return err
			}
			db := egtbdb.New(game, newBoard, opts.MemMode(), cache)
			if err := db.Preload(opts.DataDir, egtbfile.LoadOnRequest); err != nil {
				return err
			}

			for _, rec := range buildQueue(game, targets) {
				if _, ok := db.Lookup(rec.String()); ok {
					continue
				}
				log.Info().Str("name", rec.String()).Msg("generate: starting")
				if err := generateOne(cmd.Context(), rec, db, newBoard); err != nil {
					return fmt.Errorf("generate %s: %w", rec.String(), err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "endgame name (e.g. kqkr) or attacker-count profile (e.g. 3 or 2-1)")
	return cmd
}

// resolveTargets accepts either a single validated name or a numeric
// attacker-count profile expanding to every name it denotes.
func resolveTargets(game variant.Game, raw string) ([]name.Record, error) {
	if rec, err := name.Parse(game, raw); err == nil {
		return []name.Record{rec}, nil
	}
	recs, err := name.ExpandProfile(game, raw)
	if err != nil {
		return nil, fmt.Errorf("-n %q is neither a valid name nor a valid profile: %w", raw, err)
	}
	return recs, nil
}

// buildQueue expands targets into every sub-endgame each one depends on,
// deduplicated and sorted into one build order where every dependency
// precedes the names that need it.
func buildQueue(g variant.Game, targets []name.Record) []name.Record {
	seen := map[string]name.Record{}
	for _, t := range targets {
		for _, s := range name.EnumerateSubs(t) {
			seen[s.String()] = s
		}
		seen[t.String()] = t
	}
	out := make([]name.Record, 0, len(seen))
	for _, r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return lessDependency(g, out[i], out[j]) })
	return out
}

func lessDependency(g variant.Game, a, b name.Record) bool {
	ta := a.Strong.AttackerCount() + a.Weak.AttackerCount()
	tb := b.Strong.AttackerCount() + b.Weak.AttackerCount()
	if ta != tb {
		return ta < tb
	}
	ma := a.Strong.TotalValue(g) + a.Weak.TotalValue(g)
	mb := b.Strong.TotalValue(g) + b.Weak.TotalValue(g)
	if ma != mb {
		return ma < mb
	}
	return a.String() < b.String()
}

// generateOne runs the generator for rec, writes both sides to disk under
// their canonical subfolder, and registers the result in db so later
// queue entries can depend on it.
func generateOne(ctx context.Context, rec name.Record, db *egtbdb.Db, newBoard func() variant.Board) error {
	genOpts := egtbgen.Options{
		Workers:     opts.Workers,
		NoTempFiles: opts.NoTempFiles,
	}
	res, err := egtbgen.Generate(ctx, rec, db, newBoard, genOpts)
	if err != nil {
		return err
	}

	dir := filepath.Join(opts.DataDir, name.CanonicalSubfolder(rec))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	ext := egtbdb.Ext(rec.Game)
	cellWidth := opts.CellWidth()

	whitePath := filepath.Join(dir, rec.String()+".w"+ext)
	blackPath := filepath.Join(dir, rec.String()+".b"+ext)

	recName := rec.String()
	if err := writeSide(whitePath, recName, true, res.White, cellWidth, res.DtmMax); err != nil {
		return err
	}
	if err := writeSide(blackPath, recName, false, res.Black, cellWidth, res.DtmMax); err != nil {
		return err
	}

	f := egtbfile.NewFile(rec.String(), whitePath, blackPath, opts.MemMode(), db.Cache)
	if err := f.Preload(egtbfile.LoadNow); err != nil {
		return err
	}
	db.Add(f)

	log.Info().Str("name", rec.String()).Int16("dtm_max", res.DtmMax).Msg("generate: wrote table")
	return nil
}

func writeSide(path, recName string, white bool, cells []score.Score, cellWidth int, dtmMax int16) error {
	packed, err := packCells(cells, cellWidth)
	if err != nil {
		return fmt.Errorf("generate: %s: %w", recName, err)
	}
	return egtbfile.WriteFile(path, egtbfile.WriteSpec{
		Name:      recName,
		White:     white,
		Cells:     packed,
		CellWidth: cellWidth,
		DtmMax:    dtmMax,
		Copyright: "felicity-egtb",
		Workers:   opts.Workers,
	})
}

func packCells(cells []score.Score, cellWidth int) ([]byte, error) {
	if cellWidth == 2 {
		out := make([]byte, len(cells)*2)
		for i, c := range cells {
			b, err := score.Encode2(c)
			if err != nil {
				return nil, err
			}
			out[2*i], out[2*i+1] = b[0], b[1]
		}
		return out, nil
	}
	out := make([]byte, len(cells))
	for i, c := range cells {
		b, err := score.Encode1(c)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kvhoang/felicity-egtb/internal/egtbdb"
	"github.com/kvhoang/felicity-egtb/internal/egtbfile"
	"github.com/kvhoang/felicity-egtb/internal/name"
	"github.com/kvhoang/felicity-egtb/internal/verify"
)

func newVerifyKeysCmd() *cobra.Command {
	var nameFlag string
	cmd := &cobra.Command{
		Use:   "verify-keys",
		Short: "Check that every index in a table's domain round-trips through its codec",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nameFlag == "" {
				return fmt.Errorf("verify-keys: -n NAME is required")
			}
			game, newBoard, err := rootGame()
			if err != nil {
				return err
			}
			rec, err := name.Parse(game, nameFlag)
			if err != nil {
				return err
			}
			workers := opts.Workers
			if workers <= 0 {
				workers = 1
			}
			mism, err := verify.VerifyKeys(cmd.Context(), rec, newBoard, workers)
			if err != nil {
				return err
			}
			if len(mism) == 0 {
				log.Info().Str("name", rec.String()).Msg("verify-keys: no mismatches")
				return nil
			}
			for _, m := range mism {
				fmt.Printf("index %d: got %d (err=%v)\n", m.Index, m.Got, m.Err)
			}
			return fmt.Errorf("verify-keys: %d mismatches", len(mism))
		},
	}
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "endgame name to verify")
	return cmd
}

func newVerifyDataCmd() *cobra.Command {
	var nameFlag string
	cmd := &cobra.Command{
		Use:   "verify-data",
		Short: "Recompute every stored cell by one-ply lookahead and compare it to what's on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nameFlag == "" {
				return fmt.Errorf("verify-data: -n NAME is required")
			}
			if opts.DataDir == "" {
				return fmt.Errorf("verify-data: -d DATA_DIR is required")
			}
			game, newBoard, err := rootGame()
			if err != nil {
				return err
			}
			rec, err := name.Parse(game, nameFlag)
			if err != nil {
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
			f, ok := db.Lookup(rec.String())
			if !ok {
				return fmt.Errorf("verify-data: %s not found under %s", rec.String(), opts.DataDir)
			}

			mism, err := verify.VerifyData(cmd.Context(), rec, db, newBoard, f)
			if err != nil {
				return err
			}
			if len(mism) == 0 {
				log.Info().Str("name", rec.String()).Msg("verify-data: no mismatches")
				return nil
			}
			for _, m := range mism {
				fmt.Printf("index %d white=%v: want %v got %v\n", m.Index, m.White, m.Want, m.Got)
			}
			return fmt.Errorf("verify-data: %d mismatches", len(mism))
		},
	}
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "endgame name to verify")
	return cmd
}

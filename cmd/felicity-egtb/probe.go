package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvhoang/felicity-egtb/internal/chessboard"
	"github.com/kvhoang/felicity-egtb/internal/egtbdb"
	"github.com/kvhoang/felicity-egtb/internal/egtbfile"
	"github.com/kvhoang/felicity-egtb/internal/variant"
	"github.com/kvhoang/felicity-egtb/internal/xqboard"
)

func newProbeCmd() *cobra.Command {
	var fen string
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Look up a position's score and mating line from a FEN string",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fen == "" {
				return fmt.Errorf("probe: -fen STRING is required")
			}
			if opts.DataDir == "" {
				return fmt.Errorf("probe: -d DATA_DIR is required")
			}
			game, newBoard, err := rootGame()
			if err != nil {
				return err
			}
			b, err := boardFromFEN(game, fen)
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

			line, s, err := db.Probe(b)
			if err != nil {
				return err
			}
			fmt.Printf("score: %s\n", s)
			for i, ply := range line {
				fmt.Printf("%2d. %-8s (%s)\n", i+1, ply.Label, ply.Score)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fen, "fen", "", "FEN string of the position to probe")
	return cmd
}

func boardFromFEN(g variant.Game, fen string) (variant.Board, error) {
	if g == variant.Xiangqi {
		return xqboard.NewAdapterFromFEN(fen)
	}
	return chessboard.NewAdapterFromFEN(fen)
}

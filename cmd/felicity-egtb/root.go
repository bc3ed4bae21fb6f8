// Command felicity-egtb is the generator/prober CLI: a cobra command tree
// for generating tables, verifying them, listing known endgames, and
// probing a position by FEN.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kvhoang/felicity-egtb/internal/chessboard"
	"github.com/kvhoang/felicity-egtb/internal/config"
	"github.com/kvhoang/felicity-egtb/internal/variant"
	"github.com/kvhoang/felicity-egtb/internal/xqboard"
)

var opts config.Options

var variantFlag string

func rootGame() (variant.Game, func() variant.Board, error) {
	switch variantFlag {
	case "chess", "":
		return variant.Chess, func() variant.Board { return chessboard.NewAdapter() }, nil
	case "xiangqi":
		return variant.Xiangqi, func() variant.Board { return xqboard.NewAdapter() }, nil
	default:
		return 0, nil, fmt.Errorf("unknown -variant %q (want chess|xiangqi)", variantFlag)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "felicity-egtb",
		Short:         "Retrograde endgame tablebase generator and prober",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if opts.Verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.DataDir, "data", "d", "", "data folder")
	flags.StringVar(&opts.CompareDir, "d2", "", "comparison data folder")
	flags.IntVar(&opts.Workers, "core", 0, "worker count, 0 = runtime.NumCPU()")
	flags.BoolVarP(&opts.TwoByteCells, "two-byte", "2", false, "use two-byte cells")
	flags.BoolVar(&opts.NoTempFiles, "notempfiles", false, "disable checkpoint temp files")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")
	flags.StringVar(&variantFlag, "variant", "chess", "rule set: chess|xiangqi")

	root.AddCommand(
		newGenerateCmd(),
		newVerifyKeysCmd(),
		newVerifyDataCmd(),
		newListCmd(),
		newSubInfoCmd(),
		newProbeCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("felicity-egtb: failed")
		os.Exit(1)
	}
}

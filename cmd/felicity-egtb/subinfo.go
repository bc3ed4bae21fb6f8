package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvhoang/felicity-egtb/internal/name"
)

func newSubInfoCmd() *cobra.Command {
	var nameFlag string
	cmd := &cobra.Command{
		Use:   "sub-info",
		Short: "List every sub-endgame a name depends on, in build order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nameFlag == "" {
				return fmt.Errorf("sub-info: -n NAME is required")
			}
			game, _, err := rootGame()
			if err != nil {
				return err
			}
			rec, err := name.Parse(game, nameFlag)
			if err != nil {
				return err
			}
			subs := name.EnumerateSubs(rec)
			fmt.Printf("%s depends on %d sub-endgame(s):\n", rec.String(), len(subs))
			for _, s := range subs {
				fmt.Println(" ", s.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "endgame name")
	return cmd
}

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sartorproj/tsviz/render"
)

func newRecentCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently opened files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := root.store().Load()
			if err != nil {
				return err
			}
			render.RecentTable(root.out, entries, time.Now())
			return nil
		},
	}
}

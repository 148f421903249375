package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/brochure/ogimage"
)

func newOGImageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "og-image <in> <out>",
		Short: "Crop and resize an image into a 1200x630 JPEG social card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			card, data, err := ogimage.Fit(in)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return err
			}
			note := ""
			if card.CroppedToRatio {
				note = " (cropped)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d -> %dx%d%s, %d bytes\n",
				args[1], card.SourceWidth, card.SourceHeight, card.Width, card.Height, note, card.Size)
			return nil
		},
	}
}

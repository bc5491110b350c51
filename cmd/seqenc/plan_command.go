package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqenc/internal/encoding"
	"seqenc/internal/services"
)

func newPlanCommand() *cobra.Command {
	var (
		prefix      string
		suffix      string
		fps         string
		format      string
		transparent bool
		crop        string
		output      string
	)

	cmd := &cobra.Command{
		Use:         "plan",
		Short:       "Print the ffmpeg command for a set of choices without running it",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			chosen, err := encoding.ParseFormat(format)
			if err != nil {
				return services.Wrap(services.ErrValidation, "plan", "parse --format", "", err)
			}
			settings := encoding.Settings{
				Prefix:      prefix,
				Suffix:      suffix,
				FPS:         encoding.ParseFPS(fps),
				Format:      chosen,
				Transparent: transparent && chosen.SupportsAlpha(),
				Output:      output,
			}
			if crop != "" {
				region, err := encoding.ParseCrop(crop)
				if err != nil {
					return services.Wrap(services.ErrValidation, "plan", "parse --crop", "", err)
				}
				settings.Crop = &region
			}
			fmt.Fprintln(cmd.OutOrStdout(), encoding.CommandLine("ffmpeg", settings.Args()))
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Frame name text before the frame number")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Frame name text after the frame number")
	cmd.Flags().StringVar(&fps, "fps", "", "Frame rate (default 24)")
	cmd.Flags().StringVar(&format, "format", "webm", "Output format: webm, mp4, gif")
	cmd.Flags().BoolVar(&transparent, "transparent", true, "Keep the alpha channel (webm and gif only)")
	cmd.Flags().StringVar(&crop, "crop", "", "Crop region as W:H:X:Y")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default output.<format>)")
	return cmd
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seqenc/internal/deps"
	"seqenc/internal/services"
)

var errFFmpegUnavailable = errors.New("ffmpeg is not available")

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that ffmpeg can be found and report where logs go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			ffmpegStatus := deps.CheckFFmpeg(cfg.Encoder.Binary)

			for _, line := range renderSectionHeader("seqenc doctor", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, dependencyLine(ffmpegStatus, colorize))
			fmt.Fprintln(out, renderStatusLine("Config", statusInfo, configLabel(ctx), colorize))
			if logPath := cfg.LogPath(); logPath != "" {
				fmt.Fprintln(out, renderStatusLine("Log file", statusInfo, logPath, colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Log file", statusWarn, "file logging disabled", colorize))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(
				[]string{"Dependency", "Command", "Source", "Available", "Detail"},
				[][]string{dependencyRow(ffmpegStatus)},
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if !ffmpegStatus.Available {
				return services.Wrap(services.ErrNotFound, "doctor", "resolve ffmpeg", ffmpegStatus.Detail, errFFmpegUnavailable)
			}
			return nil
		},
	}
}

func dependencyLine(status deps.Status, colorize bool) string {
	if status.Available {
		return renderStatusLine(status.Name, statusOK, status.Command, colorize)
	}
	return renderStatusLine(status.Name, statusError, status.Detail, colorize)
}

func dependencyRow(status deps.Status) []string {
	detail := strings.TrimSpace(status.Detail)
	if detail == "" {
		detail = status.Description
	}
	return []string{status.Name, status.Command, string(status.Source), yesNo(status.Available), detail}
}

func configLabel(ctx *commandContext) string {
	if ctx.configExists {
		return ctx.configPath
	}
	return "defaults (no config file found)"
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seqenc/internal/logging"
	"seqenc/internal/services/ffmpeg"
	"seqenc/internal/wizard"
)

func runWizard(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	defer ctx.closeLogger() //nolint:errcheck
	if ctx.logWarning != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", ctx.logWarning)
	}

	binary := ctx.ffmpegBinary()
	logging.NewComponentLogger(logger, "cli").Debug("ffmpeg resolved",
		logging.String("binary", binary),
		logging.String("config_path", ctx.configPath),
		logging.Bool("config_exists", ctx.configExists),
	)

	streams := ffmpeg.Streams{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	// ffmpeg gets the console only; a piped reader would be drained by the
	// copy goroutine and starve the next prompt.
	if console, ok := cmd.InOrStdin().(*os.File); ok {
		streams.Stdin = console
	}
	client := ffmpeg.New(ffmpeg.WithBinary(binary), ffmpeg.WithStreams(streams))

	return wizard.New(wizard.Options{
		In:           cmd.InOrStdin(),
		Out:          cmd.OutOrStdout(),
		Err:          cmd.ErrOrStderr(),
		Runner:       client,
		Logger:       logger,
		ShowMetadata: cfg.Encoder.ShowMetadata,
	}).Run(cmd.Context())
}

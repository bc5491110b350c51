package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"seqenc/internal/encoding"
	"seqenc/internal/logging"
	"seqenc/internal/services"
	"seqenc/internal/services/ffmpeg"
)

// displayName is the program name shown in the echoed command line.
const displayName = "ffmpeg"

const downloadURL = "https://ffmpeg.org/download.html"

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// Options wires the wizard to its console and encoder.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Runner ffmpeg.Runner
	Logger *slog.Logger
	// ShowMetadata runs the info-only probe after a successful encode.
	ShowMetadata bool
}

// Wizard is the interactive conversion loop.
type Wizard struct {
	prompt       *prompter
	out          io.Writer
	errOut       io.Writer
	runner       ffmpeg.Runner
	logger       *slog.Logger
	showMetadata bool
}

// New builds a wizard. Nil streams default to the process console.
func New(opts Options) *Wizard {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	runner := opts.Runner
	if runner == nil {
		runner = ffmpeg.New()
	}
	return &Wizard{
		prompt:       newPrompter(in, out),
		out:          out,
		errOut:       errOut,
		runner:       runner,
		logger:       logging.NewComponentLogger(opts.Logger, "wizard"),
		showMetadata: opts.ShowMetadata,
	}
}

// Run prints the banner and loops until input ends. Encoder failures are
// reported and never end the loop. The returned error is non-nil only for
// console I/O problems or a cancelled context.
func (w *Wizard) Run(ctx context.Context) error {
	w.banner()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sessionCtx := services.WithSessionID(ctx, uuid.NewString())
		logger := logging.WithContext(sessionCtx, w.logger)
		logger.Debug("session started", logging.String(logging.FieldEventType, "session_start"))

		settings, err := w.collect()
		if err == nil {
			var proceed bool
			proceed, err = w.confirm(settings)
			if err == nil && !proceed {
				w.say("Cancelled by user. Starting over...")
				logger.Info("session cancelled", logging.String(logging.FieldEventType, "session_cancelled"))
				continue
			}
		}
		if errors.Is(err, io.EOF) {
			w.say("")
			logger.Info("input closed", logging.String(logging.FieldEventType, "input_closed"))
			return nil
		}
		if err != nil {
			return err
		}

		w.execute(sessionCtx, settings)
	}
}

func (w *Wizard) banner() {
	w.say("=== Image Series Converter (ffmpeg wrapper) ===")
	w.say("NOTE: This program requires ffmpeg to be installed.")
	w.say("  - Either install ffmpeg and make sure it is in your PATH")
	w.say("  - Or place the ffmpeg executable in the same folder as this program.")
	w.say("Download: " + downloadURL + "\n")
}

// execute runs the encode and, on success, the metadata probe.
func (w *Wizard) execute(ctx context.Context, settings encoding.Settings) {
	args := settings.Args()
	output := settings.OutputPath()
	w.say("\nRunning ffmpeg command:")
	w.say(encoding.CommandLine(displayName, args))

	encodeCtx := services.WithStep(ctx, "encode")
	logger := logging.WithContext(encodeCtx, w.logger)
	logger.Info("encode started",
		logging.String(logging.FieldEventType, "encode_start"),
		logging.String("binary", w.runner.Binary()),
		logging.String("format", settings.Format.String()),
		logging.String("output", output),
		logging.String("args", strings.Join(args, " ")),
	)

	started := time.Now()
	err := w.runner.Encode(encodeCtx, args)
	elapsed := time.Since(started)

	var exitErr *ffmpeg.ExitError
	switch {
	case err == nil:
		attrs := []logging.Attr{
			logging.String(logging.FieldEventType, "encode_complete"),
			logging.String("output", output),
			logging.Duration("elapsed", elapsed),
		}
		if info, statErr := os.Stat(output); statErr == nil {
			attrs = append(attrs, logging.String("output_size", humanize.Bytes(uint64(info.Size()))))
		}
		logger.Info("encode finished", logging.Args(attrs...)...)
		w.say("\n" + paint("✅ Conversion finished successfully!", ansiGreen, w.out))
		if w.showMetadata {
			w.probe(ctx, output)
		}
	case errors.As(err, &exitErr):
		logging.WarnWithContext(logger, "encode failed", "encode_failed",
			logging.Int("exit_code", exitErr.Code),
			logging.Duration("elapsed", elapsed),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "review ffmpeg output above"),
			logging.String(logging.FieldImpact, "output file may be missing or incomplete"),
		)
		w.warn("\n" + paint("❌ "+exitErr.Error(), ansiRed, w.errOut))
	default:
		logging.WarnWithContext(logger, "ffmpeg did not start", "encode_launch_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "install ffmpeg or set encoder.binary"),
			logging.String(logging.FieldImpact, "no output written"),
		)
		w.warn("\n" + paint(fmt.Sprintf("❌ Failed to start ffmpeg: %v", launchCause(err)), ansiRed, w.errOut))
		w.warn("Make sure 'ffmpeg' is installed and visible in your PATH,")
		w.warn("or put the ffmpeg executable in the same folder as this program.")
		w.warn("Download: " + downloadURL)
	}
}

func (w *Wizard) probe(ctx context.Context, output string) {
	w.say("\n=== Output file metadata (ffmpeg -i) ===")
	probeCtx := services.WithStep(ctx, "probe")
	// ffmpeg -i without an output always exits nonzero; the result is informational.
	err := w.runner.Probe(probeCtx, output)
	logging.WithContext(probeCtx, w.logger).Debug("probe finished",
		logging.String(logging.FieldEventType, "probe_complete"),
		logging.Bool("clean_exit", err == nil),
	)
}

// launchCause returns the operating system's reason for a failed start
// without the classification prefix.
func launchCause(err error) error {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return execErr
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr
	}
	return err
}

func (w *Wizard) say(line string) {
	fmt.Fprintln(w.out, line)
}

func (w *Wizard) warn(line string) {
	fmt.Fprintln(w.errOut, line)
}

func paint(text, color string, target io.Writer) string {
	if !shouldColorize(target) {
		return text
	}
	return color + text + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

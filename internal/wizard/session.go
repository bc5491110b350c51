package wizard

import (
	"fmt"
	"strings"

	"seqenc/internal/encoding"
)

// collect walks the user through one full set of choices. Every call starts
// from zero values so a cancelled pass leaves nothing behind.
func (w *Wizard) collect() (encoding.Settings, error) {
	var settings encoding.Settings

	w.say("\nStep 1: Frame name pattern")
	prefix, err := w.prompt.ask("Enter file prefix (before frame number, e.g. 'S_Film.'): ")
	if err != nil {
		return settings, err
	}
	suffix, err := w.prompt.ask("Enter file suffix (after frame number, e.g. '_5p.png'): ")
	if err != nil {
		return settings, err
	}
	settings.Prefix, settings.Suffix = prefix, suffix
	first, second := settings.ExampleFrames()
	w.say("→ Using input pattern: " + settings.InputPattern())
	w.say(fmt.Sprintf("  (This expects files like: %s , %s , ...)", first, second))

	w.say("\nStep 2: Frame rate")
	fps, err := w.prompt.ask(fmt.Sprintf("Enter FPS (default %d): ", encoding.DefaultFPS))
	if err != nil {
		return settings, err
	}
	settings.FPS = encoding.ParseFPS(fps)
	w.say(fmt.Sprintf("→ FPS set to %d", settings.FPS))

	w.say("\nStep 3: Output format")
	w.say("  [1] WebM (VP9, can keep transparency)")
	w.say("  [2] MP4 (H.264, no alpha)")
	w.say("  [3] GIF (8-bit)")
	for {
		choice, err := w.prompt.ask("Choose format (1/2/3, default 1): ")
		if err != nil {
			return settings, err
		}
		if format, ok := encoding.ParseMenuChoice(choice); ok {
			settings.Format = format
			break
		}
		w.say("Invalid choice, please type 1, 2, or 3.")
	}

	if settings.Format.SupportsAlpha() {
		answer, err := w.prompt.ask("Keep transparency (alpha)? (y/n, default y): ")
		if err != nil {
			return settings, err
		}
		answer = strings.ToLower(answer)
		settings.Transparent = answer == "" || strings.HasPrefix(answer, "y")
		w.say("→ Transparency: " + onOff(settings.Transparent))
	} else {
		w.say("→ Transparency ignored for MP4 (no alpha support).")
	}

	w.say("\nStep 4: Crop (optional)")
	answer, err := w.prompt.ask("Apply crop? (y/n, default n): ")
	if err != nil {
		return settings, err
	}
	if strings.HasPrefix(strings.ToLower(answer), "y") {
		crop, err := w.collectCrop()
		if err != nil {
			return settings, err
		}
		settings.Crop = &crop
		w.say("→ Crop set to: " + crop.String())
	} else {
		w.say("→ No crop will be applied.")
	}

	w.say("\nStep 5: Output file name")
	output, err := w.prompt.ask(fmt.Sprintf("Enter output file name (default '%s'): ", settings.DefaultOutput()))
	if err != nil {
		return settings, err
	}
	settings.Output = strings.TrimSpace(output)
	if settings.Output == "" {
		settings.Output = settings.DefaultOutput()
	}
	w.say("→ Output file: " + settings.Output)

	return settings, nil
}

func (w *Wizard) collectCrop() (encoding.Crop, error) {
	fields := []struct {
		prompt   string
		fallback int
	}{
		{"  Enter crop width (w): ", encoding.DefaultCropWidth},
		{"  Enter crop height (h): ", encoding.DefaultCropHeight},
		{"  Enter crop x offset: ", encoding.DefaultCropX},
		{"  Enter crop y offset: ", encoding.DefaultCropY},
	}
	values := make([]int, len(fields))
	for i, field := range fields {
		answer, err := w.prompt.ask(field.prompt)
		if err != nil {
			return encoding.Crop{}, err
		}
		values[i] = encoding.ParseCropValue(answer, field.fallback)
	}
	return encoding.Crop{Width: values[0], Height: values[1], X: values[2], Y: values[3]}, nil
}

// confirm shows the summary and asks whether to proceed. Only a non-empty
// answer that does not start with y declines.
func (w *Wizard) confirm(settings encoding.Settings) (bool, error) {
	w.say("\n=== Summary ===")
	w.say(renderSummary(settings))
	answer, err := w.prompt.ask("\nProceed with these settings? (y/n, default y): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "" || strings.HasPrefix(answer, "y"), nil
}

func onOff(value bool) string {
	if value {
		return "ON"
	}
	return "OFF"
}

// Package config loads, normalizes, and validates seqenc configuration.
//
// Configuration is optional: without a file the defaults reproduce the plain
// interactive wrapper (ffmpeg discovered next to the program or on PATH,
// metadata shown after each encode, logs written under
// ~/.local/share/seqenc/logs). A TOML file at ~/.config/seqenc/config.toml or
// ./seqenc.toml, or one passed with --config, can override the encoder binary
// and the logging setup. The package also embeds the sample file written by
// "seqenc config init".
package config

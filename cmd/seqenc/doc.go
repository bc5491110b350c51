// Package main hosts the seqenc CLI entrypoint and command graph.
//
// Running seqenc without a subcommand starts the interactive wizard. The plan,
// doctor and config subcommands cover scripting and setup. Configuration and
// logger construction are resolved once per invocation in commandContext.
package main

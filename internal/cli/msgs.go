package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compile indentation-based markup into HTML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"
	MsgSyntaxShort     = "Describe the markup syntax"
	MsgGenConfigShort  = "Print the default configuration"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the configuration wieldy would use here, after merging defaults, config files, environment variables and flags."

	// Status messages
	MsgVersionFormat = "wieldy version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"
	MsgConfigWritten = "Wrote %s\n"
	MsgWatching      = "Watching for changes, press Ctrl-C to stop"

	// Error messages
	MsgErrConfigExists = "%s already exists"
	MsgErrWriteConfig  = "failed to write %s"
	MsgErrBuildFailed  = "%d file(s) failed to compile"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagCompress = "Write output without indentation or newlines"
	MsgFlagOutput   = "Write outputs below `dir`, mirroring the input layout"
	MsgFlagWorkers  = "Compile `n` files at once (0 uses every CPU)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagMirror   = "Keep watching the inputs and recompile files as they change"
	MsgFlagWrite    = "Write the configuration to .wieldy.toml instead of printing it"
)

// Long messages, embedded from msgs/
var (
	//go:embed msgs/root-long.txt
	msgRootLong string

	//go:embed msgs/root-example.txt
	msgRootExample string

	//go:embed msgs/completion-long.txt
	msgCompletionLong string

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLong string

	//go:embed msgs/usage-template.txt
	msgUsageTemplate string
)

var (
	MsgRootLong       = strings.TrimSpace(msgRootLong)
	MsgRootExample    = strings.TrimRight(msgRootExample, "\n")
	MsgCompletionLong = strings.TrimSpace(msgCompletionLong)
	MsgGenConfigLong  = strings.TrimSpace(msgGenConfigLong)
	MsgUsageTemplate  = strings.TrimSpace(msgUsageTemplate) + "\n"
)

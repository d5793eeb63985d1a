package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort     = "Assemble tool invocations and emit CI pipeline files"
	MsgVersionShort  = "Print version information"
	MsgVersionLong   = "Print detailed version information including commit hash and build date"
	MsgArgsShort     = "Render the command line described by an invocation file"
	MsgPipelineShort = "Re-emit a YAML document with the configured indentation"
	MsgConfigShort   = "Print the effective configuration as TOML"
	MsgConfigLong    = "Print the configuration after applying defaults, cigen.toml and CIGEN_* environment variables."

	// Notices
	MsgRevealNotice = "secrets are shown in plaintext"
	MsgWroteFile    = "Wrote %s"

	// Version output
	MsgVersionFormat = "cigen version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default is ./cigen.toml or ./.cigen.toml)"
	MsgFlagArgsFile   = "Invocation file (YAML)"
	MsgFlagReveal     = "Print secret values instead of the redaction marker"
	MsgFlagDocFile    = "YAML document to re-emit"
	MsgFlagOutput     = "Write to this file instead of stdout"
	MsgFlagHeader     = "Comment line written before the document (repeatable)"
	MsgErrorPrefix    = "Error:"
	MsgErrEmptyDoc    = "document %s is empty"
	MsgErrReadDoc     = "cannot read document %s"
	MsgErrParseDoc    = "failed to parse document %s"
	MsgErrWriteOutput = "failed to write %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/args-long.txt
	msgArgsLongRaw string
	MsgArgsLong    = strings.TrimSpace(msgArgsLongRaw)

	//go:embed msgs/args-example.txt
	msgArgsExampleRaw string
	MsgArgsExample    = strings.TrimSpace(msgArgsExampleRaw)

	//go:embed msgs/pipeline-long.txt
	msgPipelineLongRaw string
	MsgPipelineLong    = strings.TrimSpace(msgPipelineLongRaw)

	//go:embed msgs/pipeline-example.txt
	msgPipelineExampleRaw string
	MsgPipelineExample    = strings.TrimSpace(msgPipelineExampleRaw)
)

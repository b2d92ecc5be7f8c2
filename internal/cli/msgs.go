package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Evaluate carrier restriction rules against SIM cards"
	MsgCheckShort          = "Check SIM slots against carrier restriction rules"
	MsgRulesShort          = "Inspect, validate and convert rules files"
	MsgRulesShowShort      = "Summarize a rules file"
	MsgRulesValidateShort  = "Validate rules files against the schema"
	MsgRulesConvertShort   = "Convert a rules file to another format"
	MsgRulesSchemaShort    = "Print the JSON Schema of rules or slots files"
	MsgDisconnectShort     = "Look up call disconnect causes"
	MsgConfigShort         = "Manage the carrierlock configuration"
	MsgConfigInitShort     = "Print or write the default configuration"
	MsgVersionShort        = "Print version information"
	MsgTopicsShort         = "Display available documentation topics"
	MsgTopicsLong          = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort     = "Generate shell completion script"
	MsgGroupCore           = "COMMANDS:"
	MsgGroupMisc           = "MISC:"
	MsgConfigWritten       = "Wrote configuration to %s"
	MsgConvertWritten      = "Wrote %s rules to %s"
	MsgRulesInvalidSummary = "%d of %d rules files are invalid"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Configuration file (TOML or YAML)"
	MsgFlagFormat     = "Output format: auto, term, text or json"
	MsgFlagNoValidate = "Skip JSON Schema validation of rules and slots files"
	MsgFlagRules      = "Rules file (defaults to rules.path from the configuration)"
	MsgFlagSim        = "SIM identifier as key=value pairs, e.g. mcc=310,mnc=001 (repeatable)"
	MsgFlagSims       = "Slots file listing one SIM per slot"
	MsgFlagStrict     = "Exit with status 2 when any slot is denied"
	MsgFlagTo         = "Target format: toml, yaml, json or xml"
	MsgFlagOutput     = "Write to this file instead of standard output"
	MsgFlagSlots      = "Print the schema of slots files instead of rules files"
	MsgFlagAll        = "List every named disconnect cause"
	MsgFlagWrite      = "Write the configuration to the user config file"
	MsgFlagForce      = "Replace an existing configuration file"
	MsgFlagPath       = "Write the configuration to this path instead"
	MsgFlagOverwrite  = "Replace the output file when it already exists"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/disconnect-long.txt
	msgDisconnectLongRaw string
	MsgDisconnectLong    = strings.TrimSpace(msgDisconnectLongRaw)

	//go:embed msgs/disconnect-example.txt
	msgDisconnectExampleRaw string
	MsgDisconnectExample    = strings.TrimRight(msgDisconnectExampleRaw, "\n")

	//go:embed msgs/config-init-long.txt
	msgConfigInitLongRaw string
	MsgConfigInitLong    = strings.TrimSpace(msgConfigInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

package main

// Short messages (one-liners)
const (
	MsgRootShort = "Initialize a workspace ignore-file from a template"
	MsgRootLong  = `wsinit initializes a local workspace by rendering the exclude template
shipped next to the binary into the workspace's git metadata directory.
Template placeholders like {{user}} are filled from the wsinit.toml config
file found next to the binary.

Subcommands:
  init-workspace   Render the exclude template into .git/info/exclude
  gen-config       Write a starter wsinit.toml next to the binary`

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without writing anything"

	// CLI usage errors. These exact strings are part of the CLI contract.
	MsgSubcommandRequired    = "Subcommand is required!"
	MsgCommandNotImplemented = "Command '%s' is not implemented!"
)

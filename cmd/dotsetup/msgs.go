package main

// Message constants
const (
	MsgRootShort = "Install and verify a dotfiles environment"
	MsgRootLong  = `dotsetup brings a machine to a working dotfiles state: it installs the
tools the configuration depends on, backs up whatever real files sit at the
config locations, and symlinks the checked-out configuration tree into
place. A separate verify command audits the same set without touching
anything.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)

package genconfig

// Message constants
const (
	MsgShort = "Show or write the dotsetup configuration"
	MsgLong  = `Without flags, prints the effective configuration after merging
built-in defaults, the user config file and DOTSETUP_* environment
variables. With --write, seeds ~/.config/dotsetup/dotsetup.toml with the
commented defaults for editing.`

	MsgFlagWrite = "Write the default config file instead of printing"

	MsgExists  = "Config already exists at %s, not overwriting"
	MsgWritten = "Wrote default config to %s"
)

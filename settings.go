// FILE: lixenwraith/xrmconfig/settings.go

package xrmconfig

// Settings is the launcher's built-in configuration. Field order defines the
// static table order; aliases sit next to their primary key.
type Settings struct {
	Switchers     string `xrm:"switchers"`
	WindowOpacity uint32 `xrm:"opacity"`

	MenuWidth   int32  `xrm:"width"`
	MenuLines   uint32 `xrm:"lines"`
	MenuColumns uint32 `xrm:"columns"`

	MenuFont  string `xrm:"font"`
	MenuFg    string `xrm:"foreground,fg"`
	MenuBg    string `xrm:"background,bg"`
	MenuBgAlt string `xrm:"background-alternate,bgalt"`
	MenuHlfg  string `xrm:"highlightfg,hlfg"`
	MenuHlbg  string `xrm:"highlightbg,hlbg"`
	MenuBc    string `xrm:"bordercolor,bc"`
	MenuBw    uint32 `xrm:"borderwidth,bw"`

	Location      uint32 `xrm:"location"`
	Padding       uint32 `xrm:"padding"`
	YOffset       int32  `xrm:"yoffset"`
	XOffset       int32  `xrm:"xoffset"`
	FixedNumLines bool   `xrm:"fixed-num-lines"`

	TerminalEmulator string `xrm:"terminal"`
	SSHClient        string `xrm:"ssh-client"`
	SSHCommand       string `xrm:"ssh-command"`
	RunCommand       string `xrm:"run-command"`
	RunListCommand   string `xrm:"run-list-command"`
	RunShellCommand  string `xrm:"run-shell-command"`

	DisableHistory  bool   `xrm:"disable-history"`
	LevenshteinSort bool   `xrm:"levenshtein-sort"`
	CaseSensitive   bool   `xrm:"case-sensitive"`
	SidebarMode     bool   `xrm:"sidebar-mode"`
	LazyFilterLimit uint32 `xrm:"lazy-filter-limit"`
	ElementHeight   int32  `xrm:"eh"`
}

// Window locations, numbered like a keypad starting at the centre.
const (
	LocationCenter uint32 = iota
	LocationNorthWest
	LocationNorth
	LocationNorthEast
	LocationEast
	LocationSouthEast
	LocationSouth
	LocationSouthWest
	LocationWest
)

// DefaultSettings returns the compiled-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Switchers:        "window,run,ssh",
		WindowOpacity:    100,
		MenuWidth:        50,
		MenuLines:        15,
		MenuColumns:      1,
		MenuFont:         "mono 12",
		MenuFg:           "#FF222222",
		MenuBg:           "#FFF2F1F0",
		MenuBgAlt:        "",
		MenuHlfg:         "#FFFFFFFF",
		MenuHlbg:         "#FF005577",
		MenuBc:           "black",
		MenuBw:           1,
		Location:         LocationCenter,
		Padding:          5,
		TerminalEmulator: "x-terminal-emulator",
		SSHClient:        "ssh",
		SSHCommand:       "{terminal} -e {ssh-client} {host}",
		RunCommand:       "{cmd}",
		RunListCommand:   "",
		RunShellCommand:  "{terminal} -e {cmd}",
		LazyFilterLimit:  5000,
		ElementHeight:    1,
	}
}

// BuiltinOptions returns the static table bound to the fields of s.
func BuiltinOptions(s *Settings) []Option {
	options, err := OptionsFromStruct(s)
	if err != nil {
		// The Settings tags are fixed at compile time.
		panic(err)
	}
	return options
}

// Package palette defines the ANSI color palettes behind the built-in themes.
package palette

import "strconv"

// SGR attributes shared by all palettes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Strikethrough = "\x1b[9m"
)

// Palette holds a foreground color sequence per semantic role.
type Palette struct {
	Text       string
	H1         string
	H2         string
	H3         string
	H4         string
	H5         string
	H6         string
	Strong     string
	Emphasis   string
	Strike     string
	Underline  string
	CodeInline string
	CodeBlock  string
	ListMarker string
	Chip       string
	ChipURL    string
	Comment    string
	String     string
	Keyword    string
	Number     string
}

// fg returns a 24-bit foreground sequence for a 0xRRGGBB color.
func fg(rgb uint32) string {
	r := strconv.Itoa(int(rgb >> 16 & 0xff))
	g := strconv.Itoa(int(rgb >> 8 & 0xff))
	b := strconv.Itoa(int(rgb & 0xff))
	return "\x1b[38;2;" + r + ";" + g + ";" + b + "m"
}

var (
	PaletteDefault = Palette{
		Text:       "",
		H1:         Bold + fg(0xff5f87),
		H2:         Bold + fg(0xff875f),
		H3:         Bold + fg(0xffaf5f),
		H4:         fg(0xd7af5f),
		H5:         fg(0xafaf87),
		H6:         fg(0x87875f),
		Strong:     fg(0xffd7af),
		Emphasis:   fg(0xd7d7ff),
		Strike:     fg(0x8a8a8a),
		Underline:  fg(0xafd7ff),
		CodeInline: fg(0x87d7af),
		CodeBlock:  fg(0xbcbcbc),
		ListMarker: fg(0xff87af),
		Chip:       Bold + fg(0x5fafff),
		ChipURL:    fg(0x5f87af),
		Comment:    Italic + fg(0x6c6c6c),
		String:     fg(0xafd787),
		Keyword:    fg(0xd787ff),
		Number:     fg(0xffaf87),
	}

	PaletteDracula = Palette{
		Text:       fg(0xf8f8f2),
		H1:         Bold + fg(0xff79c6),
		H2:         Bold + fg(0xbd93f9),
		H3:         Bold + fg(0x8be9fd),
		H4:         fg(0x50fa7b),
		H5:         fg(0xf1fa8c),
		H6:         fg(0xffb86c),
		Strong:     fg(0xffb86c),
		Emphasis:   fg(0xf1fa8c),
		Strike:     fg(0x6272a4),
		Underline:  fg(0x8be9fd),
		CodeInline: fg(0x50fa7b),
		CodeBlock:  fg(0xf8f8f2),
		ListMarker: fg(0xff79c6),
		Chip:       Bold + fg(0x8be9fd),
		ChipURL:    fg(0x6272a4),
		Comment:    Italic + fg(0x6272a4),
		String:     fg(0xf1fa8c),
		Keyword:    fg(0xff79c6),
		Number:     fg(0xbd93f9),
	}

	PaletteNord = Palette{
		Text:       fg(0xd8dee9),
		H1:         Bold + fg(0x88c0d0),
		H2:         Bold + fg(0x81a1c1),
		H3:         Bold + fg(0x5e81ac),
		H4:         fg(0x8fbcbb),
		H5:         fg(0xa3be8c),
		H6:         fg(0xb48ead),
		Strong:     fg(0xeceff4),
		Emphasis:   fg(0xe5e9f0),
		Strike:     fg(0x4c566a),
		Underline:  fg(0x88c0d0),
		CodeInline: fg(0xa3be8c),
		CodeBlock:  fg(0xd8dee9),
		ListMarker: fg(0x81a1c1),
		Chip:       Bold + fg(0x88c0d0),
		ChipURL:    fg(0x5e81ac),
		Comment:    Italic + fg(0x616e88),
		String:     fg(0xa3be8c),
		Keyword:    fg(0x81a1c1),
		Number:     fg(0xb48ead),
	}

	PaletteGruvbox = Palette{
		Text:       fg(0xebdbb2),
		H1:         Bold + fg(0xfb4934),
		H2:         Bold + fg(0xfe8019),
		H3:         Bold + fg(0xfabd2f),
		H4:         fg(0xb8bb26),
		H5:         fg(0x8ec07c),
		H6:         fg(0x83a598),
		Strong:     fg(0xfabd2f),
		Emphasis:   fg(0xd3869b),
		Strike:     fg(0x928374),
		Underline:  fg(0x83a598),
		CodeInline: fg(0x8ec07c),
		CodeBlock:  fg(0xd5c4a1),
		ListMarker: fg(0xfe8019),
		Chip:       Bold + fg(0x83a598),
		ChipURL:    fg(0x928374),
		Comment:    Italic + fg(0x928374),
		String:     fg(0xb8bb26),
		Keyword:    fg(0xfb4934),
		Number:     fg(0xd3869b),
	}

	PaletteTokyoNight = Palette{
		Text:       fg(0xc0caf5),
		H1:         Bold + fg(0x7aa2f7),
		H2:         Bold + fg(0xbb9af7),
		H3:         Bold + fg(0x7dcfff),
		H4:         fg(0x9ece6a),
		H5:         fg(0xe0af68),
		H6:         fg(0xff9e64),
		Strong:     fg(0xff9e64),
		Emphasis:   fg(0xbb9af7),
		Strike:     fg(0x565f89),
		Underline:  fg(0x7dcfff),
		CodeInline: fg(0x9ece6a),
		CodeBlock:  fg(0xa9b1d6),
		ListMarker: fg(0x7aa2f7),
		Chip:       Bold + fg(0x2ac3de),
		ChipURL:    fg(0x565f89),
		Comment:    Italic + fg(0x565f89),
		String:     fg(0x9ece6a),
		Keyword:    fg(0xbb9af7),
		Number:     fg(0xff9e64),
	}

	PaletteSolarizedLight = Palette{
		Text:       fg(0x657b83),
		H1:         Bold + fg(0xcb4b16),
		H2:         Bold + fg(0xb58900),
		H3:         Bold + fg(0x859900),
		H4:         fg(0x2aa198),
		H5:         fg(0x268bd2),
		H6:         fg(0x6c71c4),
		Strong:     fg(0x586e75),
		Emphasis:   fg(0x6c71c4),
		Strike:     fg(0x93a1a1),
		Underline:  fg(0x268bd2),
		CodeInline: fg(0x2aa198),
		CodeBlock:  fg(0x586e75),
		ListMarker: fg(0xcb4b16),
		Chip:       Bold + fg(0x268bd2),
		ChipURL:    fg(0x93a1a1),
		Comment:    Italic + fg(0x93a1a1),
		String:     fg(0x2aa198),
		Keyword:    fg(0x859900),
		Number:     fg(0xd33682),
	}
)

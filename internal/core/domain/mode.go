package domain

const DefaultMode = "r"

// Mode holds the capability flags derived from a mode string.
type Mode struct {
	Readable bool
	Writable bool
}

// ParseMode derives capability flags from the characters of mode by position.
// Unrecognized modes grant nothing; the raw string is still handed to the
// opener, which decides whether it can be opened at all.
func ParseMode(mode string) Mode {
	var m Mode
	if len(mode) > 0 {
		switch mode[0] {
		case 'r':
			m.Readable = true
		case 'w', 'a':
			m.Writable = true
		}
	}
	if len(mode) > 1 && mode[1] == '+' {
		m.Readable, m.Writable = true, true
	}
	if len(mode) > 2 && mode[2] == '+' {
		m.Readable, m.Writable = true, true
	}
	return m
}

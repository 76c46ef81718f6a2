package gui

// The debug font covers printable ASCII only
var glyphFallback = map[rune]rune{
	'◆': '*',
	'▪': '#',
	'·': '.',
	'─': '-',
	'▸': '>',
	'↓': 'v',
	'•': '*',
	'©': 'c',
	'…': '~',
}

// printable maps r onto a rune the debug font can draw; zero means draw nothing
func printable(r rune) rune {
	switch {
	case r == 0 || r == ' ':
		return 0
	case r > ' ' && r < 0x7f:
		return r
	}
	if f, ok := glyphFallback[r]; ok {
		return f
	}
	return '?'
}

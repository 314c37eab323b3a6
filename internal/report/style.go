package report

import "fmt"

const ansiReset = "\x1b[0m"

// rowStyle is the ANSI palette for one forecast line.
type rowStyle struct {
	background int
	temp       int
	conditions int
	wind       int
}

// rowStyles alternates by period index: even rows light gray, odd rows dark gray.
var rowStyles = [2]rowStyle{
	{background: 47, temp: 30, conditions: 34, wind: 35},
	{background: 100, temp: 30, conditions: 34, wind: 35},
}

func styleFor(index int) rowStyle {
	return rowStyles[index%2]
}

func (s rowStyle) paint(fg int, text string) string {
	return fmt.Sprintf("\x1b[%d;%dm%s%s", s.background, fg, text, ansiReset)
}

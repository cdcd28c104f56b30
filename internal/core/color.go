package core

// Color is a terminal color for a screen cell: either an ANSI 256-color
// code ("245") or a hex string ("#d2b48c"). The empty Color means the
// terminal default.
type Color string

// Interface colors.
const (
	ColorDefault Color = ""
	ColorGray    Color = "245"
	ColorDim     Color = "240"
	ColorWhite   Color = "15"
	ColorYellow  Color = "11"
	ColorCyan    Color = "14"
	ColorRed     Color = "9"
)

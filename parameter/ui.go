package parameter

// Layout
const (
	// PaneWidthRatio is the share of the screen width given to the content pane
	PaneWidthRatio = 0.4

	// HeaderHeight is the number of rows used by the header chrome
	HeaderHeight = 2

	// PanePaddingX is the horizontal padding inside the content pane, in cells
	PanePaddingX = 3

	// MinPaneWidth below which the pane is not drawn
	MinPaneWidth = 16
)

// Window Frontend
const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTPS    = 60
)

package render

// Palette
var (
	RgbBlack      = RGB{0, 0, 0}
	RgbWhite      = RGB{255, 255, 255}
	RgbBackground = RGB{10, 10, 14}
	RgbPane       = RGB{31, 31, 35}
	RgbPaneText   = RGB{217, 217, 217}
	RgbHeader     = RGB{18, 18, 22}
	RgbHeaderLink = RGB{204, 204, 204}
	RgbFinal      = RGB{12, 12, 16}
	RgbButton     = RGB{216, 169, 65}
	RgbButtonText = RGB{20, 14, 4}
	RgbButtonAlt  = RGB{48, 48, 54}
	RgbStatusText = RGB{120, 200, 120}
	RgbSceneDim   = RGB{40, 44, 60}
)

// phaseColors tints the scene per phase, matching the section title colours
var phaseColors = [4]RGB{
	{216, 169, 65},
	{255, 255, 255},
	{0, 240, 255},
	{255, 136, 0},
}

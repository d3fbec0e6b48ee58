package engine

import (
	"fmt"

	"github.com/vovakirdan/arcade-trio/internal/core"
)

// HUDRows is the number of screen rows reserved above the play area.
const HUDRows = 2

// DrawHUD draws score, the depletable resource and the high score on the
// first row, and either extra or a separator on the second.
func DrawHUD(dst *core.Screen, st core.GameState, resource, extra string) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(0, resource)

	high := fmt.Sprintf("High: %d", st.HighScore)
	dst.DrawTextColored(dst.Width()-len(high)-1, 0, high, core.ColorYellow)

	if extra != "" {
		dst.DrawTextColored(1, 1, extra, core.ColorGray)
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// DrawOverlay draws the pause or end-of-run message box. winTitle is shown
// when the run ended in a win.
func DrawOverlay(dst *core.Screen, st core.GameState, winTitle string) {
	switch {
	case st.Paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case st.Phase == core.PhaseEnded && st.Result == core.ResultWin:
		dst.DrawMessageBox(winTitle, fmt.Sprintf("Final Score: %d  |  Press R to restart", st.Score))
	case st.Phase == core.PhaseEnded:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", st.Score))
	}
}

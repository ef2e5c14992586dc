package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Glyphs for game elements.
const (
	GroundChar   = '═'
	NinjaHead    = '◉'
	NinjaBody    = '█'
	NinjaBlade   = '╱'
	CoinChar     = 'o'
	CoinRareChar = '◆'
	EnemyHead    = '▲'
	EnemyBody    = '▓'
)

// Obstacle fill per cosmetic variant.
var obstacleVariants = [3]rune{'▒', '░', '▓'}

// Render draws the full frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.actor == nil {
		return
	}

	groundY := int(g.groundY)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	for _, o := range g.obstacles.Obstacles() {
		g.drawObstacle(dst, o)
	}
	for _, c := range g.coins.Coins() {
		g.drawCoin(dst, c)
	}
	for _, e := range g.enemies.Enemies() {
		g.drawEnemy(dst, e)
	}
	g.drawNinja(dst)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawNinja renders the actor. The body flashes while invincible and shows
// a blade while attacking.
func (g *Game) drawNinja(dst *core.Screen) {
	x := int(g.actor.X)
	y := int(g.actor.Y)

	color := core.ColorWhite
	switch {
	case g.actor.Power() == PowerSuper:
		color = core.ColorBrightMagenta
	case g.actor.Power() == PowerRegular:
		color = core.ColorBrightCyan
	case g.actor.AttackInvincible():
		color = core.ColorBrightYellow
	}

	// Blink on alternating ticks while invincible.
	if g.actor.Invincible() && g.tickCount%10 < 3 {
		color = core.ColorGray
	}

	dst.SetCell(x+1, y, NinjaHead, color)
	dst.SetCell(x, y+1, NinjaBody, color)
	dst.SetCell(x+1, y+1, NinjaBody, color)
	dst.SetCell(x+2, y+1, NinjaBody, color)

	if g.actor.Grounded {
		// Running legs alternate with the tick counter.
		if g.tickCount%10 < 5 {
			dst.SetCell(x, y+2, '╱', color)
			dst.SetCell(x+2, y+2, '╲', color)
		} else {
			dst.SetCell(x+1, y+2, '╱', color)
			dst.SetCell(x+2, y+2, '╲', color)
		}
	} else {
		dst.SetCell(x, y+2, '╲', color)
		dst.SetCell(x+1, y+2, '╱', color)
	}

	if g.actor.Attacking {
		dst.SetCell(x+3, y+1, NinjaBlade, core.ColorBrightRed)
	}
}

// drawObstacle renders one obstacle with its variant fill.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	fill := obstacleVariants[o.Variant%len(obstacleVariants)]
	for dy := 0; dy < int(o.H); dy++ {
		for dx := 0; dx < int(o.W); dx++ {
			dst.SetCell(int(o.X)+dx, int(o.Y)+dy, fill, core.ColorGreen)
		}
	}
}

// drawCoin renders one coin; rare coins get a distinct glyph.
func (g *Game) drawCoin(dst *core.Screen, c Coin) {
	glyph := CoinChar
	color := core.ColorYellow
	switch c.Class {
	case CoinUncommon:
		color = core.ColorBrightYellow
	case CoinRare:
		glyph = CoinRareChar
		color = core.ColorBrightCyan
	}
	dst.SetCell(int(c.X), int(c.Y), glyph, color)
}

// drawEnemy renders one enemy; attackers turn red.
func (g *Game) drawEnemy(dst *core.Screen, e Enemy) {
	color := core.ColorMagenta
	if e.State == EnemyAttacking {
		color = core.ColorBrightRed
	}
	x, y := int(e.X), int(e.Y)
	dst.SetCell(x+1, y, EnemyHead, color)
	for dx := 0; dx < int(e.W); dx++ {
		dst.SetCell(x+dx, y+1, EnemyBody, color)
	}
}

// drawHUD renders score, best and the power-up bar on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	bestText := fmt.Sprintf(" Best: %d ", g.best)
	dst.DrawText(dst.Width()-len(bestText)-2, 0, bestText)

	if g.actor.HasPowerUp() {
		total := g.cfg.PowerUps.RegularDuration
		label := "POWER"
		color := core.ColorBrightCyan
		if g.actor.Power() == PowerSuper {
			total = g.cfg.PowerUps.SuperDuration
			label = "SUPER"
			color = core.ColorBrightMagenta
		}
		barW := 10
		filled := 0
		if total > 0 {
			filled = g.actor.PowerTicks() * barW / total
		}
		bar := fmt.Sprintf(" %s [%s%s] ", label,
			strings.Repeat("#", filled), strings.Repeat("-", barW-filled))
		dst.DrawTextColored((dst.Width()-len(bar))/2, 0, bar, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

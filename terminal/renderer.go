package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/game"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Glyphs
const (
	glyphPlayer      = '@'
	glyphMelee       = 'Z'
	glyphRanged      = 'H'
	glyphBlood       = '*'
	glyphCrosshair   = '+'
	glyphArenaBorder = '#'
)

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMelee   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRanged  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBlood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleAim     = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleSelect  = tcell.StyleDefault.Reverse(true)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
)

// themeStyle returns the arena floor style for a theme
func themeStyle(t config.Theme) tcell.Style {
	switch t {
	case config.ThemeCity:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case config.ThemeSpace:
		return tcell.StyleDefault.Foreground(tcell.ColorNavy)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	}
}

// View is the front-end state the renderer needs beyond the game itself
type View struct {
	Yaw           float64
	ShowScores    bool
	SettingsIndex int
}

// Renderer draws the game onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame for the current phase
func (r *Renderer) Draw(g *game.Game, v View) {
	r.screen.Clear()

	switch g.Phase() {
	case engine.PhaseMenu:
		r.drawMenu(g, v)
	case engine.PhasePlaying:
		r.drawArena(g, v)
		r.drawHUD(g)
	case engine.PhaseGameOver:
		r.drawGameOver(g)
	}
	if g.SettingsOpen() {
		r.drawSettings(g, v)
	}

	r.screen.Show()
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) centered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	r.text(x, y, s, style)
}

func (r *Renderer) drawMenu(g *game.Game, v View) {
	_, h := r.screen.Size()
	y := h / 4
	r.centered(y, "ARENA FIGHTER", styleTitle)
	cfg := g.Config()
	r.centered(y+2, fmt.Sprintf("theme %s  enemies %s  difficulty %s  %ds",
		cfg.Theme, cfg.EnemyMode, cfg.Difficulty, cfg.MatchDurationSeconds), styleDefault)
	r.centered(y+4, "Enter: start   h: high scores   Esc: settings   q: quit", styleHelp)

	if v.ShowScores {
		r.drawScores(y+6, "HIGH SCORES", g.TopScores(parameter.MenuTopScores))
	}
}

func (r *Renderer) drawScores(y int, title string, scores []int) {
	r.centered(y, title, styleHUD)
	if len(scores) == 0 {
		r.centered(y+1, "no scores yet", styleHelp)
		return
	}
	for i, s := range scores {
		r.centered(y+1+i, fmt.Sprintf("%2d. %6d", i+1, s), styleDefault)
	}
}

func (r *Renderer) drawGameOver(g *game.Game) {
	_, h := r.screen.Size()
	y := h / 4
	r.centered(y, "GAME OVER", styleTitle)
	sum, ok := g.Summary()
	if ok {
		r.centered(y+2, fmt.Sprintf("score %d   kills %d   headshots %d   wave %d",
			sum.Score, sum.EnemiesKilled, sum.HeadshotKills, sum.Wave), styleHUD)
		r.drawScores(y+4, "TOP SCORES", sum.TopScores)
	}
	r.centered(h-2, "Enter: play again   q: menu", styleHelp)
}

func (r *Renderer) drawHUD(g *game.Game) {
	st := g.State()
	w := g.Weapon()
	hud := fmt.Sprintf(" HP %3d  SCORE %6d  TIME %5.1f  WAVE %d  AMMO %2d/%3d  KILLS %d (%d hs)",
		st.Health, st.Score, st.TimeRemaining, st.Wave, w.RoundsInMagazine, w.ReserveAmmo,
		st.EnemiesKilled, st.HeadshotKills)
	r.text(0, 0, hud, styleHUD)

	_, h := r.screen.Size()
	if g.Config().Debug {
		r.text(0, h-1, " "+g.Metrics().Line(), styleHelp)
		return
	}
	r.text(0, h-1, " wasd move  arrows aim  f/click fire  r reload  space jump  Esc settings  q menu", styleHelp)
}

// project maps a world position to a screen cell in the player-relative, view-up map
func project(pos, center vmath.Vec3F, yaw float64, cx, cy int) (int, int) {
	rel := vmath.V3FRotateY(vmath.V3FSub(vmath.V3FFlat(pos), vmath.V3FFlat(center)), -yaw)
	x := cx + int(math.Round(rel.X/parameter.ViewMetersPerRow*parameter.ViewColumnsPerRow))
	y := cy + int(math.Round(rel.Z/parameter.ViewMetersPerRow))
	return x, y
}

func (r *Renderer) drawArena(g *game.Game, v View) {
	w, h := r.screen.Size()
	top, bottom := parameter.TopMargin, h-parameter.BottomMargin
	if bottom <= top {
		return
	}
	cx, cy := w/2, top+(bottom-top)/2
	inView := func(x, y int) bool { return x >= 0 && x < w && y >= top && y < bottom }

	phys := g.Physics()
	center, err := phys.Position(g.Pool().Player())
	if err != nil {
		return
	}

	// Arena edge
	floor := themeStyle(g.Config().Theme)
	edge := parameter.ArenaHalfExtent
	for i := -edge; i <= edge; i += parameter.ViewMetersPerRow / 2 {
		for _, p := range [...]vmath.Vec3F{{X: i, Z: -edge}, {X: i, Z: edge}, {X: -edge, Z: i}, {X: edge, Z: i}} {
			if x, y := project(p, center, v.Yaw, cx, cy); inView(x, y) {
				r.screen.SetContent(x, y, glyphArenaBorder, nil, floor)
			}
		}
	}

	g.Pool().EachParticle(func(_ core.Handle, p *engine.ParticleData) {
		if x, y := project(p.Position, center, v.Yaw, cx, cy); inView(x, y) {
			r.screen.SetContent(x, y, glyphBlood, nil, styleBlood)
		}
	})

	for _, h := range g.Pool().LivingEnemies() {
		e, ok := g.Pool().Enemy(h)
		if !ok {
			continue
		}
		pos, err := phys.Position(h)
		if err != nil {
			continue
		}
		glyph, style := glyphMelee, styleMelee
		if e.Kind == engine.EnemyRanged {
			glyph, style = glyphRanged, styleRanged
		}
		if x, y := project(pos, center, v.Yaw, cx, cy); inView(x, y) {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}

	// View-up map: the crosshair is always straight ahead of the player
	if inView(cx, cy-2) {
		r.screen.SetContent(cx, cy-2, glyphCrosshair, nil, styleAim)
	}
	r.screen.SetContent(cx, cy, glyphPlayer, nil, stylePlayer)
}

// settingsRows renders the settings overlay lines in selection order
func settingsRows(cfg *config.Config) []string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return []string{
		fmt.Sprintf("Volume       %3.0f%%", cfg.MasterVolume*100),
		fmt.Sprintf("Sound        %s", onOff(cfg.SoundEnabled)),
		fmt.Sprintf("Blood        %s", onOff(cfg.BloodEffectsEnabled)),
		fmt.Sprintf("Difficulty   %s", cfg.Difficulty),
		fmt.Sprintf("Duration     %ds", cfg.MatchDurationSeconds),
		fmt.Sprintf("Theme        %s", cfg.Theme),
		fmt.Sprintf("Enemies      %s", cfg.EnemyMode),
	}
}

func (r *Renderer) drawSettings(g *game.Game, v View) {
	w, h := r.screen.Size()
	rows := settingsRows(g.Config())
	boxW := int(float64(w) * parameter.OverlayWidthPercent)
	boxH := len(rows) + 4
	x0, y0 := (w-boxW)/2, (h-boxH)/2

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleDefault)
		}
	}
	r.text(x0+parameter.OverlayPaddingX, y0, "SETTINGS", styleTitle)
	for i, row := range rows {
		style := styleDefault
		if i == v.SettingsIndex {
			style = styleSelect
		}
		r.text(x0+parameter.OverlayPaddingX, y0+2+i, row, style)
	}
	r.text(x0+parameter.OverlayPaddingX, y0+boxH-1, "up/down select  left/right change  Esc close", styleHelp)
}

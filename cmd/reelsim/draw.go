package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/session"
)

// radarRange is how many world units the radar shows from the boat to the
// top edge.
const radarRange = 150.0

var (
	styleText   = tcell.StyleDefault
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBoat   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleRing   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWarn   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDanger = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var noticeStyles = map[session.NoticeKind]tcell.Style{
	session.NoticeHooked:  styleWarn,
	session.NoticeCaught:  styleGood,
	session.NoticeQuest:   styleGood,
	session.NoticeLevel:   styleGood,
	session.NoticeEscaped: styleDim,
	session.NoticeSlack:   styleDim,
	session.NoticeNoEcho:  styleRing,
	session.NoticeSnapped: styleDanger,
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// draw renders one frame: radar on the left, status on the right.
func draw(s tcell.Screen, sess *session.Session, castRadius float64) {
	s.Clear()
	w, h := s.Size()

	radarW := max(20, w*3/5)
	drawRadar(s, sess, castRadius, radarW, h)
	drawStatus(s, sess, radarW+2, w, h)

	s.Show()
}

func drawRadar(s tcell.Screen, sess *session.Session, castRadius float64, width, height int) {
	cx, cy := width/2, height/2
	scale := float64(cy) / radarRange // rows per unit
	// Terminal cells are about twice as tall as wide.
	toScreen := func(dx, dz float64) (int, int) {
		return cx + int(math.Round(dx*scale*2)), cy - int(math.Round(dz*scale))
	}

	boat := sess.Player().Boat()
	origin := boat.Position()

	// Cast radius ring.
	for a := 0.0; a < 2*math.Pi; a += 0.05 {
		x, y := toScreen(math.Cos(a)*castRadius, math.Sin(a)*castRadius)
		if x >= 0 && x < width && y >= 0 && y < height {
			s.SetContent(x, y, '·', nil, styleRing)
		}
	}

	lifetime := sess.World().Config().PingLifetime
	for _, p := range sess.World().Pings() {
		x, y := toScreen(p.Position.X-origin.X, p.Position.Z-origin.Z)
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		glyph, style := 'o', styleRing
		if p.Intensity(lifetime) > 0.35 {
			glyph, style = 'O', tcell.StyleDefault.Foreground(tcell.ColorAqua)
		}
		s.SetContent(x, y, glyph, nil, style)
	}

	s.SetContent(cx, cy, headingGlyph(boat.Heading()), nil, styleBoat)
}

// headingGlyph picks an arrow for a heading in radians (0 = +Z = up, +X = right).
func headingGlyph(heading float64) rune {
	arrows := []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
	sector := int(math.Round(heading/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return arrows[sector]
}

func drawStatus(s tcell.Screen, sess *session.Session, x, width, height int) {
	y := 0
	line := func(style tcell.Style, format string, args ...any) {
		if y < height {
			drawText(s, x, y, style, fmt.Sprintf(format, args...))
		}
		y++
	}

	w := sess.World()
	stats := sess.Player().Stats()
	hour := w.Hour()
	line(styleText, "%02d:%02d  %s", int(hour), int((hour-math.Floor(hour))*60), w.Weather().Current())
	line(styleText, "Level %d  XP %d  Funds %d", stats.MasteryLevel, stats.Experience, stats.Funds)
	line(styleText, "Stamina %d  Speed %.1f", stats.Stamina, sess.Player().Boat().Speed())
	if stats.EquippedLure != nil {
		line(styleText, "Lure: %s", stats.EquippedLure.Name)
	}
	y++

	if hud, ok := sess.HUD(); ok {
		line(styleWarn, "%s (%s, %s)", hud.FishName, hud.Rarity, hud.DifficultyLabel)
		line(styleGood, "Progress %s", bar(hud.Progress, width-x-10))
		line(tensionStyle(hud.Tension), "Tension  %s", bar(hud.Tension/100, width-x-10))
	} else if cd := sess.Cooldown(); cd > 0 {
		line(styleDim, "Recasting in %.1fs", cd)
	} else {
		line(styleDim, "Ready to cast")
	}
	y++

	for _, n := range sess.Feed() {
		style, ok := noticeStyles[n.Kind]
		if !ok {
			style = styleText
		}
		line(style, "%s", n.Message)
	}

	help := []string{
		"w/s a/d  steer    c/click  cast",
		"space/hold mouse  reel",
		fmt.Sprintf("1-%d  lure   q  quit", len(data.Lures)),
	}
	for i, h := range help {
		if row := height - len(help) + i; row > y {
			drawText(s, x, row, styleDim, h)
		}
	}
}

func tensionStyle(t float64) tcell.Style {
	switch {
	case t >= 80:
		return styleDanger
	case t >= 55:
		return styleWarn
	case t < 15:
		return styleDim
	default:
		return styleGood
	}
}

func bar(frac float64, width int) string {
	width = max(width, 5)
	filled := int(math.Round(math.Max(0, math.Min(1, frac)) * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Package plot renders the CORDIC curves against the stdlib reference in
// the terminal. Reference curves draw as dim dots, CORDIC samples on top of
// them; at low iteration counts the divergence between the two is visible
// directly.
package plot

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cordic/cordic"
)

var (
	sinStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	cosStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	refStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	barStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// Show opens the screen and runs the interactive plot until the user quits.
// Keys: +/- adjust the iteration count, s/c toggle the curves, q or Esc
// exits.
func Show(iters int) error {
	if iters < 1 {
		return cordic.ErrInvalidIterations
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	showSin, showCos := true, true
	for {
		draw(screen, iters, showSin, showCos)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Rune() == 'q':
				return nil
			case ev.Rune() == '+' || ev.Rune() == '=':
				iters++
			case ev.Rune() == '-':
				if iters > 1 {
					iters--
				}
			case ev.Rune() == 's':
				showSin = !showSin
			case ev.Rune() == 'c':
				showCos = !showCos
			}
		}
	}
}

// curveRow maps a value in [-1, 1] to a screen row inside the plot area.
// Values are clamped so gain overshoot at tiny iteration counts still lands
// on screen.
func curveRow(v float64, top, height int) int {
	if height < 1 {
		return top
	}
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	// +1 maps to the top row, -1 to the bottom row
	row := top + int((1-v)/2*float64(height-1)+0.5)
	if row < top {
		row = top
	}
	if row > top+height-1 {
		row = top + height - 1
	}
	return row
}

func draw(screen tcell.Screen, iters int, showSin, showCos bool) {
	screen.Clear()
	width, height := screen.Size()
	if width < 2 || height < 4 {
		screen.Show()
		return
	}

	plotTop := 1
	plotHeight := height - 2

	// Zero axis
	axisRow := curveRow(0, plotTop, plotHeight)
	for x := 0; x < width; x++ {
		screen.SetContent(x, axisRow, '-', nil, refStyle)
	}

	var maxSinErr, maxCosErr float64
	for x := 0; x < width; x++ {
		theta := 2 * math.Pi * float64(x) / float64(width-1)

		c, s, err := cordic.SinCos(theta, iters)
		if err != nil {
			continue
		}
		refSin, refCos := math.Sin(theta), math.Cos(theta)

		if e := math.Abs(s - refSin); e > maxSinErr {
			maxSinErr = e
		}
		if e := math.Abs(c - refCos); e > maxCosErr {
			maxCosErr = e
		}

		if showSin {
			screen.SetContent(x, curveRow(refSin, plotTop, plotHeight), '·', nil, refStyle)
			screen.SetContent(x, curveRow(s, plotTop, plotHeight), 's', nil, sinStyle)
		}
		if showCos {
			screen.SetContent(x, curveRow(refCos, plotTop, plotHeight), '·', nil, refStyle)
			screen.SetContent(x, curveRow(c, plotTop, plotHeight), 'c', nil, cosStyle)
		}
	}

	status := fmt.Sprintf(" iterations: %d   max |sin err|: %.2e   max |cos err|: %.2e   [+/-] iterations  [s/c] toggle  [q] quit ",
		iters, maxSinErr, maxCosErr)
	emitStr(screen, 0, 0, barStyle, status, width)

	screen.Show()
}

func emitStr(screen tcell.Screen, x, y int, style tcell.Style, s string, max int) {
	for i, r := range s {
		if x+i >= max {
			break
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}

package fixed

import (
	"math"
	"strconv"
)

// Float is the float64-backed scalar. It exists to keep the engine honest:
// everything goes through the Real operation set, so Float can be replaced
// by Q32 (or any future representation) without touching callers.
type Float struct {
	val float64
}

// F wraps a float64.
func F(v float64) Float { return Float{val: v} }

func (f Float) Add(o Float) Float { return Float{val: f.val + o.val} }
func (f Float) Sub(o Float) Float { return Float{val: f.val - o.val} }
func (f Float) Mul(o Float) Float { return Float{val: f.val * o.val} }
func (f Float) Div(o Float) Float { return Float{val: f.val / o.val} }

// Rem is the floating remainder; sign follows the dividend, as math.Mod does.
func (f Float) Rem(o Float) Float { return Float{val: math.Mod(f.val, o.val)} }

func (f Float) Less(o Float) bool { return f.val < o.val }

func (f Float) FromFloat(v float64) Float { return Float{val: v} }

func (f Float) Float() float64 { return f.val }

func (f Float) String() string {
	return strconv.FormatFloat(f.val, 'g', -1, 64)
}

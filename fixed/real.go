// Package fixed provides the scalar number types the rotation engine runs
// on. The engine only ever touches a value through the Real constraint, so
// swapping the representation (float64 wrapper vs. binary fixed point) never
// touches the algorithm.
package fixed

// Real is the capability set the rotation engine requires from a scalar
// type. All operations are pure. Rem must follow the dividend-sign
// convention (the sign of the result matches the sign of the first operand),
// since angle normalization branches on it.
type Real[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Rem(T) T

	// Less reports whether the receiver orders strictly before the argument.
	Less(T) bool

	// FromFloat constructs a value of the same representation from a
	// float64. The receiver is only used to select the type; calling it on
	// the zero value is the normal pattern.
	FromFloat(float64) T

	// Float converts to float64 for reference comparisons and rendering.
	// Precision beyond the representation's own is not promised.
	Float() float64

	String() string
}

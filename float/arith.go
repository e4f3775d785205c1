package float

// Each operation computes the exact result of the operands and rounds it
// once into the profile of the receiver.

// Add returns f + x.
func (f Float) Add(x Float) Float {
	return f.Wide().Add(x.Wide()).round(f.prof())
}

// Sub returns f - x.
func (f Float) Sub(x Float) Float {
	return f.Wide().Sub(x.Wide()).round(f.prof())
}

// Mul returns f * x.
func (f Float) Mul(x Float) Float {
	return f.Wide().Mul(x.Wide()).round(f.prof())
}

// Quo returns f / x. Division by zero is not an error: it gives a signed
// infinity, or NaN for 0/0.
func (f Float) Quo(x Float) Float {
	return f.Wide().Quo(x.Wide()).round(f.prof())
}

// Neg flips the sign bit. It is exact and applies to NaN as well.
func (f Float) Neg() Float {
	p := f.prof()
	pattern := f.pattern()
	pattern.SetBit(pattern, int(p.Width()-1), pattern.Bit(int(p.Width()-1))^1)

	return fromPattern(p, pattern)
}

// Abs clears the sign bit.
func (f Float) Abs() Float {
	p := f.prof()
	pattern := f.pattern()
	pattern.SetBit(pattern, int(p.Width()-1), 0)

	return fromPattern(p, pattern)
}

// Cmp compares the values of f and x. ordered is false when either is NaN.
func (f Float) Cmp(x Float) (c int, ordered bool) {
	return f.Wide().Cmp(x.Wide())
}

// Equal reports whether f and x are ordered and equal. NaN is not equal to
// itself and -0 equals +0.
func (f Float) Equal(x Float) bool {
	c, ok := f.Cmp(x)

	return ok && c == 0
}

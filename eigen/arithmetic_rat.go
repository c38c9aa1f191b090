// SPDX-License-Identifier: MIT

package eigen

import (
	"math"
	"math/big"
)

// ratArithmetic adapts math/big rationals to the Arithmetic provider.
// Every method allocates a fresh *big.Rat (new(big.Rat).Op(a, b)) so that
// operands held by the working matrix are never mutated in place.
//
// Ring operations are exact. The trigonometric primitives have no closed
// rational form, so they round-trip through float64: project, apply math.*,
// lift the result back with SetFloat64. The rotation angle is therefore
// float64-accurate while the rotation application itself stays rational.
type ratArithmetic struct{}

// ratOps is the package-wide provider instance for FamilyRational.
var ratOps Arithmetic[*big.Rat] = ratArithmetic{}

func (ratArithmetic) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (ratArithmetic) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (ratArithmetic) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (ratArithmetic) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (ratArithmetic) Abs(a *big.Rat) *big.Rat    { return new(big.Rat).Abs(a) }
func (ratArithmetic) Cmp(a, b *big.Rat) int      { return a.Cmp(b) }

func (ratArithmetic) Sin(a *big.Rat) *big.Rat  { return ratTrig(a, math.Sin) }
func (ratArithmetic) Cos(a *big.Rat) *big.Rat  { return ratTrig(a, math.Cos) }
func (ratArithmetic) Atan(a *big.Rat) *big.Rat { return ratTrig(a, math.Atan) }

func (ratArithmetic) Zero() *big.Rat { return new(big.Rat) }
func (ratArithmetic) One() *big.Rat  { return big.NewRat(1, 1) }

func (ratArithmetic) FromFloat64(f float64) *big.Rat {
	if r := new(big.Rat).SetFloat64(f); r != nil {
		return r
	}
	// SetFloat64 rejects NaN/±Inf; fall back to zero rather than nil.
	return new(big.Rat)
}

func (ratArithmetic) Float64(a *big.Rat) float64 {
	f, _ := a.Float64()
	return f
}

// ratTrig applies a native trigonometric function through a float64
// round-trip. Sin/Cos of an overflowing projection yield NaN, which
// SetFloat64 rejects; zero is the only sane rational fallback there.
func ratTrig(a *big.Rat, fn func(float64) float64) *big.Rat {
	f, _ := a.Float64()
	if r := new(big.Rat).SetFloat64(fn(f)); r != nil {
		return r
	}
	return new(big.Rat)
}

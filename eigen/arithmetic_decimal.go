// SPDX-License-Identifier: MIT

package eigen

import "github.com/shopspring/decimal"

// decimalArithmetic adapts shopspring/decimal to the Arithmetic provider.
// decimal.Decimal is an immutable value type, so every method is trivially
// pure. Division and the trigonometric primitives honor the library's
// decimal.DivisionPrecision (16 significant places by default).
type decimalArithmetic struct{}

// decimalOps is the package-wide provider instance for FamilyDecimal.
var decimalOps Arithmetic[decimal.Decimal] = decimalArithmetic{}

func (decimalArithmetic) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (decimalArithmetic) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (decimalArithmetic) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (decimalArithmetic) Div(a, b decimal.Decimal) decimal.Decimal { return a.Div(b) }
func (decimalArithmetic) Abs(a decimal.Decimal) decimal.Decimal    { return a.Abs() }
func (decimalArithmetic) Cmp(a, b decimal.Decimal) int             { return a.Cmp(b) }
func (decimalArithmetic) Sin(a decimal.Decimal) decimal.Decimal    { return a.Sin() }
func (decimalArithmetic) Cos(a decimal.Decimal) decimal.Decimal    { return a.Cos() }
func (decimalArithmetic) Atan(a decimal.Decimal) decimal.Decimal   { return a.Atan() }
func (decimalArithmetic) Zero() decimal.Decimal                    { return decimal.Zero }
func (decimalArithmetic) One() decimal.Decimal                     { return decimal.NewFromInt(1) }

func (decimalArithmetic) FromFloat64(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
func (decimalArithmetic) Float64(a decimal.Decimal) float64     { return a.InexactFloat64() }

package score

import "github.com/shopspring/decimal"

// TCS derivation constants. The scale factor and investment unit are part of
// the token contract and never come from a reference table.
var (
	tcsScaleFactor    = decimal.RequireFromString("0.3")
	tcsInvestmentUnit = decimal.NewFromInt(10000)
)

// MinimumTCS is the floor applied after the full multiplication, so a tiny
// project still mints a visible token amount.
const MinimumTCS int64 = 100

// Tokens derives the recommended TCS issuance from the UISV composite and the
// total investment. The fractional part is truncated, not rounded.
func Tokens(uisv, investment decimal.Decimal) int64 {
	tcs := uisv.Mul(tcsScaleFactor).Mul(investment.Div(tcsInvestmentUnit)).IntPart()
	if tcs < MinimumTCS {
		return MinimumTCS
	}
	return tcs
}

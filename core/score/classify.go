package score

import (
	"github.com/shopspring/decimal"

	"visia/internal/errors"
)

// Classification is the human-facing impact band attached to a result.
type Classification string

// UISV bands.
const (
	ClassA Classification = "A"
	ClassB Classification = "B"
	ClassC Classification = "C"
	ClassD Classification = "D"
)

// Integrated-methodology bands.
const (
	ClassExcellent    Classification = "EXCELENTE"
	ClassGood         Classification = "BOM"
	ClassRegular      Classification = "REGULAR"
	ClassInsufficient Classification = "INSUFICIENTE"
)

// UISV thresholds. Lower bounds are inclusive.
var (
	uisvThresholdA = decimal.NewFromInt(20)
	uisvThresholdB = decimal.NewFromInt(12)
	uisvThresholdC = decimal.NewFromInt(6)
)

// Integrated thresholds. Lower bounds are inclusive.
var (
	integratedThresholdExcellent = decimal.NewFromInt(50)
	integratedThresholdGood      = decimal.NewFromInt(30)
	integratedThresholdRegular   = decimal.NewFromInt(15)
)

// ClassifyUISV maps a UISV composite to its band. Negative scores land in the
// lowest band rather than erroring.
func ClassifyUISV(uisv decimal.Decimal) Classification {
	switch {
	case uisv.GreaterThanOrEqual(uisvThresholdA):
		return ClassA
	case uisv.GreaterThanOrEqual(uisvThresholdB):
		return ClassB
	case uisv.GreaterThanOrEqual(uisvThresholdC):
		return ClassC
	default:
		return ClassD
	}
}

// ClassifyIntegrated maps an integrated composite index to its band.
func ClassifyIntegrated(total decimal.Decimal) Classification {
	switch {
	case total.GreaterThanOrEqual(integratedThresholdExcellent):
		return ClassExcellent
	case total.GreaterThanOrEqual(integratedThresholdGood):
		return ClassGood
	case total.GreaterThanOrEqual(integratedThresholdRegular):
		return ClassRegular
	default:
		return ClassInsufficient
	}
}

// boundedScore guards composites before classification.
func boundedScore(v decimal.Decimal, name string) error {
	// decimal.Decimal cannot represent NaN or Inf, but magnitudes far outside
	// the scale indicate a corrupted input upstream.
	limit := decimal.New(1, 9) // 1e9
	if v.Abs().GreaterThan(limit) {
		return errors.OutOfRange(name + " is outside the representable score range").
			WithContext(name, v.String())
	}
	return nil
}

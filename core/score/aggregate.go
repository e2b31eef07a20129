package score

import (
	"github.com/shopspring/decimal"

	"visia/internal/errors"
)

// UISV composite weights.
var (
	sroiWeight       = decimal.NewFromInt(2)
	fiscalWeight     = decimal.NewFromInt(3)
	peopleDivisor    = decimal.NewFromInt(100)
	sideEffectWeight = decimal.RequireFromString("0.5")
)

func findDimension(dims []DimensionScore, d Dimension) (DimensionScore, bool) {
	for _, ds := range dims {
		if ds.Dimension == d {
			return ds, true
		}
	}
	return DimensionScore{}, false
}

// AggregateUISV folds the dimension scores into the UISV composite:
//
//	uisv = sroi*2 + fiscal*3 + people/100 + crime*0.5 + env*0.5
//
// SROI and fiscal return are mandatory; crime and environmental impact
// contribute only when their triggering inputs were present.
func AggregateUISV(dims []DimensionScore, peopleImpacted int) (decimal.Decimal, error) {
	sroi, ok := findDimension(dims, DimensionSROI)
	if !ok {
		return decimal.Zero, errors.IncompleteScore(len(dims), 2).
			WithContext("missing", string(DimensionSROI))
	}
	fiscal, ok := findDimension(dims, DimensionFiscal)
	if !ok {
		return decimal.Zero, errors.IncompleteScore(len(dims), 2).
			WithContext("missing", string(DimensionFiscal))
	}

	uisv := sroi.Value.Mul(sroiWeight).
		Add(fiscal.Value.Mul(fiscalWeight)).
		Add(decimal.NewFromInt(int64(peopleImpacted)).Div(peopleDivisor))

	if crime, ok := findDimension(dims, DimensionCrime); ok {
		uisv = uisv.Add(crime.Value.Mul(sideEffectWeight))
	}
	if env, ok := findDimension(dims, DimensionEnvironmental); ok {
		uisv = uisv.Add(env.Value.Mul(sideEffectWeight))
	}

	return uisv.Round(2), nil
}

// integratedDimensions is the full dimension set the integrated composite
// averages over. All four must be present.
var integratedDimensions = []Dimension{
	DimensionEducational,
	DimensionEconomic,
	DimensionSocialEnv,
	DimensionPolitical,
}

// AggregateIntegrated averages the four integrated-methodology indices.
func AggregateIntegrated(dims []DimensionScore) (decimal.Decimal, error) {
	sum := decimal.Zero
	found := 0
	for _, d := range integratedDimensions {
		ds, ok := findDimension(dims, d)
		if !ok {
			continue
		}
		sum = sum.Add(ds.Value)
		found++
	}
	if found != len(integratedDimensions) {
		return decimal.Zero, errors.IncompleteScore(found, len(integratedDimensions))
	}
	return sum.Div(four).Round(2), nil
}

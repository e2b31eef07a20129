package score

import (
	"fmt"

	"github.com/shopspring/decimal"

	"visia/core/project"
	"visia/core/reference"
	"visia/internal/errors"
)

var environmentInvestmentShare = decimal.RequireFromString("0.4")

// EnvironmentalImpact computes the land-restoration dimension: carbon
// sequestration, payments for environmental services and a conservative
// biodiversity value, over a horizon of at least ten years. The
// environmental share of the investment (40%) is the denominator.
func EnvironmentalImpact(in *project.Input, tbl *reference.Table) (DimensionScore, error) {
	score := DimensionScore{
		Dimension:  DimensionEnvironmental,
		Components: map[string]decimal.Decimal{},
	}

	investment := in.TotalInvestment.Mul(environmentInvestmentShare)
	if investment.IsZero() {
		return score, errors.DivisionByZero("investimento_total")
	}

	horizon := in.DurationYears
	if horizon < 10 {
		horizon = 10
	}
	years := decimal.NewFromInt(int64(horizon))

	costPerHectare, err := tbl.RecoveryCostPerHectare(string(in.Biome))
	if err != nil {
		return score, err
	}

	sequestration, err := tbl.Lookup(reference.KeyCarbonSequestrationTonHaYear)
	if err != nil {
		return score, err
	}
	carbonPrice, err := tbl.CarbonPriceBRL()
	if err != nil {
		return score, err
	}
	tonsCO2 := in.HectaresRecovered.Mul(sequestration).Mul(years)
	carbonBenefit := tonsCO2.Mul(carbonPrice)

	psaPerHectare, err := tbl.PSAPerHectareYear()
	if err != nil {
		return score, err
	}
	psaBenefit := in.HectaresRecovered.Mul(psaPerHectare).Mul(years)

	biodiversityPerHectare, err := tbl.Lookup(reference.KeyBiodiversityPerHectareYear)
	if err != nil {
		return score, err
	}
	biodiversityBenefit := in.HectaresRecovered.Mul(biodiversityPerHectare).Mul(years)

	total := carbonBenefit.Add(psaBenefit).Add(biodiversityBenefit)

	score.Value = total.Sub(investment).Div(investment).Round(2)
	score.Components["beneficio_carbono"] = carbonBenefit
	score.Components["beneficio_psa"] = psaBenefit
	score.Components["beneficio_biodiversidade"] = biodiversityBenefit
	score.Components["valor_total_beneficios"] = total
	score.Components["toneladas_co2"] = tonsCO2
	score.Components["custo_recuperacao_ha"] = costPerHectare
	score.Notes = append(score.Notes,
		fmt.Sprintf("Sequestro: %s tCO2 em %d anos", tonsCO2.StringFixed(0), horizon),
		fmt.Sprintf("Bioma: %s", in.Biome),
		fmt.Sprintf("Custo recuperação: R$ %s/ha", costPerHectare.StringFixed(2)),
	)

	return score, nil
}

package score

import (
	"fmt"

	"github.com/shopspring/decimal"

	"visia/core/project"
	"visia/core/reference"
	"visia/internal/errors"
)

// Crime-prevention behavior constants. These characterize the calculator
// itself, not the reference data, and are fixed across table versions.
var (
	crimeInvestmentShare  = decimal.RequireFromString("0.3")
	urbanInvolvementRate  = decimal.RequireFromString("0.05")
	ruralInvolvementRate  = decimal.RequireFromString("0.03")
	crimeReductionRate    = decimal.RequireFromString("0.7")
	homicideShare         = decimal.RequireFromString("0.02")
	robberyShare          = decimal.RequireFromString("0.15")
	theftShare            = decimal.RequireFromString("0.25")
	traffickingShare      = decimal.RequireFromString("0.10")
	otherCrimeShare       = decimal.RequireFromString("0.48")
	incarcerationShare    = decimal.RequireFromString("0.30")
	securitySavingsFactor = decimal.RequireFromString("0.15")
)

// CrimeImpact computes the avoided-crime dimension for projects serving
// at-risk youth. The security share of the investment (30%) is the
// denominator, mirroring how the integrated evaluation apportions it.
func CrimeImpact(in *project.Input, tbl *reference.Table) (DimensionScore, error) {
	score := DimensionScore{
		Dimension:  DimensionCrime,
		Components: map[string]decimal.Decimal{},
	}

	investment := in.TotalInvestment.Mul(crimeInvestmentShare)
	if investment.IsZero() {
		return score, errors.DivisionByZero("investimento_total")
	}

	involvement := urbanInvolvementRate
	if in.AreaType != "" && in.AreaType != project.AreaUrban {
		involvement = ruralInvolvementRate
	}

	youth := decimal.NewFromInt(int64(in.YouthServed))
	avoided := youth.Mul(involvement).Mul(crimeReductionRate).IntPart()
	avoidedDec := decimal.NewFromInt(avoided)

	homicides := avoidedDec.Mul(homicideShare).IntPart()
	if homicides < 1 {
		homicides = 1
	}
	robberies := avoidedDec.Mul(robberyShare).IntPart()
	thefts := avoidedDec.Mul(theftShare).IntPart()
	trafficking := avoidedDec.Mul(traffickingShare).IntPart()
	others := avoidedDec.Mul(otherCrimeShare).IntPart()
	totalAvoided := homicides + robberies + thefts + trafficking + others

	costs := map[string]struct {
		key   string
		count int64
	}{
		"economia_homicidios": {reference.KeyCrimeCostHomicide, homicides},
		"economia_roubos":     {reference.KeyCrimeCostCargoRobbery, robberies},
		"economia_furtos":     {reference.KeyCrimeCostTheft, thefts},
		"economia_trafico":    {reference.KeyCrimeCostTrafficking, trafficking},
		"economia_outros":     {reference.KeyCrimeCostOther, others},
	}

	crimeSavings := decimal.Zero
	for name, c := range costs {
		unitCost, err := tbl.Lookup(c.key)
		if err != nil {
			return score, err
		}
		value := unitCost.Mul(decimal.NewFromInt(c.count))
		score.Components[name] = value
		crimeSavings = crimeSavings.Add(value)
	}

	// Incarceration avoided: 30% of the diverted youth, for at most 5 years.
	prisonerYear, err := tbl.Lookup(reference.KeyPrisonerCostStateYear)
	if err != nil {
		return score, err
	}
	incarcerated := avoidedDec.Mul(incarcerationShare).IntPart()
	horizonYears := in.DurationYears
	if horizonYears > 5 {
		horizonYears = 5
	}
	incarcerationSavings := decimal.NewFromInt(incarcerated).
		Mul(prisonerYear).
		Mul(decimal.NewFromInt(int64(horizonYears)))

	securitySavings := crimeSavings.Mul(securitySavingsFactor)

	victimCost, err := tbl.Lookup(reference.KeyCrimeVictimMedicalCost)
	if err != nil {
		return score, err
	}
	injuryCost, err := tbl.Lookup(reference.KeyCrimeInjuryMedicalCost)
	if err != nil {
		return score, err
	}
	healthSavings := decimal.NewFromInt(homicides).Mul(victimCost).
		Add(decimal.NewFromInt(robberies + others).Mul(injuryCost))

	total := crimeSavings.Add(incarcerationSavings).Add(securitySavings).Add(healthSavings)

	score.Value = total.Div(investment).Round(2)
	score.Components["crimes_evitados_total"] = decimal.NewFromInt(totalAvoided)
	score.Components["economia_encarceramento"] = incarcerationSavings
	score.Components["economia_seguranca"] = securitySavings
	score.Components["economia_saude"] = healthSavings
	score.Components["economia_total"] = total
	score.Notes = append(score.Notes,
		fmt.Sprintf("%d jovens atendidos", in.YouthServed),
		fmt.Sprintf("%d jovens evitam envolvimento criminal", avoided),
		fmt.Sprintf("%d encarceramentos evitados", incarcerated),
		fmt.Sprintf("Economia total: R$ %s", total.StringFixed(2)),
	)

	return score, nil
}

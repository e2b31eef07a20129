package score

import (
	"fmt"

	"github.com/shopspring/decimal"

	"visia/core/project"
	"visia/core/reference"
	"visia/internal/errors"
)

var (
	two   = decimal.NewFromInt(2)
	three = decimal.NewFromInt(3)
	half  = decimal.RequireFromString("0.5")
	tenth = decimal.RequireFromString("0.1")
)

// SROI computes the social-return-on-investment dimension: the net social
// value attributed to the project divided by the investment, clamped to the
// reference band for the project type.
func SROI(in *project.Input, tbl *reference.Table) (DimensionScore, error) {
	score := DimensionScore{
		Dimension:  DimensionSROI,
		Components: map[string]decimal.Decimal{},
	}

	band, err := tbl.SROIBand(string(in.ProjectType))
	if err != nil {
		return score, err
	}

	years := decimal.NewFromInt(int64(in.DurationYears))

	if in.JobsCreated > 0 {
		taxPerJob, err := tbl.Lookup(reference.KeyTaxRevenueWorker2SMYear)
		if err != nil {
			return score, err
		}
		jobs := decimal.NewFromInt(int64(in.JobsCreated))
		value := jobs.Mul(taxPerJob).Mul(years)
		score.Components["empregos_gerados"] = value
		score.Notes = append(score.Notes,
			fmt.Sprintf("%d empregos gerando R$ %s em arrecadação", in.JobsCreated, value.StringFixed(2)))
	}

	if in.FamiliesLeavingVulnerability > 0 {
		savings, err := tbl.Lookup(reference.KeyBolsaFamiliaFamilyYear)
		if err != nil {
			return score, err
		}
		families := decimal.NewFromInt(int64(in.FamiliesLeavingVulnerability))
		score.Components["saida_vulnerabilidade"] = families.Mul(savings).Mul(years)
		score.Notes = append(score.Notes,
			fmt.Sprintf("%d famílias saem do Bolsa Família", in.FamiliesLeavingVulnerability))
	}

	if in.StudentsAvoidingDropout > 0 {
		savings, err := tbl.Lookup(reference.KeyDropoutAvoidedSavings)
		if err != nil {
			return score, err
		}
		students := decimal.NewFromInt(int64(in.StudentsAvoidingDropout))
		// 10% of the avoided-dropout value is attributed to the project.
		score.Components["prevencao_evasao"] = students.Mul(savings).Mul(tenth)
		score.Notes = append(score.Notes,
			fmt.Sprintf("%d alunos evitam evasão", in.StudentsAvoidingDropout))
	}

	if in.HectaresRecovered.IsPositive() {
		sequestration, err := tbl.Lookup(reference.KeyCarbonSequestrationTonHaYear)
		if err != nil {
			return score, err
		}
		carbonPrice, err := tbl.CarbonPriceBRL()
		if err != nil {
			return score, err
		}
		value := in.HectaresRecovered.Mul(sequestration).Mul(carbonPrice).Mul(years)
		score.Components["recuperacao_ambiental"] = value
		score.Notes = append(score.Notes,
			fmt.Sprintf("%s ha recuperados", in.HectaresRecovered.String()))
	}

	if len(score.Components) == 0 {
		// No specific components reported: estimate direct beneficiary value
		// from the reference band average.
		if in.DirectBeneficiaries == 0 {
			return score, errors.DivisionByZero("beneficiarios_diretos")
		}
		beneficiaries := decimal.NewFromInt(int64(in.DirectBeneficiaries))
		perBeneficiary := in.TotalInvestment.Mul(band.Avg).Div(beneficiaries)
		score.Components["impacto_direto_beneficiarios"] = beneficiaries.Mul(perBeneficiary).Mul(half)
	}

	gross := decimal.Zero
	for _, v := range score.Components {
		gross = gross.Add(v)
	}
	net := gross.Sub(in.TotalInvestment)

	if in.TotalInvestment.IsZero() {
		return score, errors.DivisionByZero("investimento_total")
	}
	raw := net.Div(in.TotalInvestment)

	// Clamp to [0.5 x band min, 1.5 x band max] so self-reported outliers
	// stay within the documented reference range.
	lower := band.Min.Mul(half)
	upper := band.Max.Mul(decimal.RequireFromString("1.5"))
	clamped := raw
	if clamped.GreaterThan(upper) {
		clamped = upper
	}
	if clamped.LessThan(lower) {
		clamped = lower
	}

	score.Value = clamped.Round(2)
	score.Components["valor_social_bruto"] = gross
	score.Components["valor_social_liquido"] = net
	score.Components["sroi_bruto"] = raw.Round(4)
	score.Components["banda_min"] = band.Min
	score.Components["banda_max"] = band.Max

	return score, nil
}

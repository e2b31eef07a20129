package score

import (
	"fmt"

	"github.com/shopspring/decimal"

	"visia/core/project"
	"visia/core/reference"
	"visia/internal/errors"
)

// FiscalReturn computes the government-return dimension: tax revenue from
// formal jobs, savings from families leaving cash-transfer programs, avoided
// crime and avoided hospitalizations, over a horizon of at least ten years.
// crimesAvoided comes from the crime dimension when computed, zero otherwise.
func FiscalReturn(in *project.Input, crimesAvoided int64, tbl *reference.Table) (DimensionScore, error) {
	score := DimensionScore{
		Dimension:  DimensionFiscal,
		Components: map[string]decimal.Decimal{},
	}

	if in.TotalInvestment.IsZero() {
		return score, errors.DivisionByZero("investimento_total")
	}

	horizon := in.DurationYears
	if horizon < 10 {
		horizon = 10
	}
	years := decimal.NewFromInt(int64(horizon))

	jobRevenue := decimal.Zero
	if in.JobsCreated > 0 {
		taxPerJob, err := tbl.Lookup(reference.KeyTaxRevenueWorker2SMYear)
		if err != nil {
			return score, err
		}
		jobRevenue = decimal.NewFromInt(int64(in.JobsCreated)).Mul(taxPerJob).Mul(years)
		score.Notes = append(score.Notes,
			fmt.Sprintf("%d empregos → R$ %s arrecadação", in.JobsCreated, jobRevenue.StringFixed(2)))
	}

	programSavings := decimal.Zero
	if in.FamiliesLeavingVulnerability > 0 {
		perFamily, err := tbl.Lookup(reference.KeyBolsaFamiliaFamilyYear)
		if err != nil {
			return score, err
		}
		programSavings = decimal.NewFromInt(int64(in.FamiliesLeavingVulnerability)).Mul(perFamily).Mul(years)
		score.Notes = append(score.Notes,
			fmt.Sprintf("%d famílias saem do Bolsa Família → R$ %s economia",
				in.FamiliesLeavingVulnerability, programSavings.StringFixed(2)))
	}

	securitySavings := decimal.Zero
	if crimesAvoided > 0 {
		avgCrimeCost, err := tbl.Lookup(reference.KeyCrimeCostAverage)
		if err != nil {
			return score, err
		}
		securitySavings = decimal.NewFromInt(crimesAvoided).Mul(avgCrimeCost)
		score.Notes = append(score.Notes,
			fmt.Sprintf("%d crimes evitados → R$ %s economia", crimesAvoided, securitySavings.StringFixed(2)))
	}

	healthSavings := decimal.Zero
	if in.HospitalizationsAvoided > 0 {
		perStay, err := tbl.Lookup(reference.KeyHospitalizationCostSUS)
		if err != nil {
			return score, err
		}
		healthSavings = decimal.NewFromInt(int64(in.HospitalizationsAvoided)).Mul(perStay)
		score.Notes = append(score.Notes,
			fmt.Sprintf("%d internações evitadas", in.HospitalizationsAvoided))
	}

	total := jobRevenue.Add(programSavings).Add(securitySavings).Add(healthSavings)

	score.Value = total.Div(in.TotalInvestment).Round(2)
	score.Components["arrecadacao_gerada"] = jobRevenue
	score.Components["economia_programas_sociais"] = programSavings
	score.Components["economia_seguranca"] = securitySavings
	score.Components["economia_saude"] = healthSavings
	score.Components["retorno_fiscal_total"] = total

	// Payback in years: investment over annualized return.
	annual := total.Div(years)
	if annual.IsPositive() {
		score.Components["tempo_payback_anos"] = in.TotalInvestment.Div(annual).Round(1)
	}

	return score, nil
}

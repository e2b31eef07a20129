package score

import (
	"github.com/shopspring/decimal"

	"visia/core/project"
	"visia/core/reference"
	"visia/internal/errors"
)

// Integrated-methodology constants. Each dimension index is the social value
// generated per real invested, scaled so a 4x return marks 100%.
var (
	indexScale = decimal.NewFromInt(25)
	hundred    = decimal.NewFromInt(100)
	four       = decimal.NewFromInt(4)
	twelve     = decimal.NewFromInt(12)

	defaultLifeQualityImprovement = decimal.NewFromInt(10)
)

// dimensionInvestment returns the denominator for one dimension: its
// reported investment, or an even quarter of the total when unreported.
func dimensionInvestment(total, reported decimal.Decimal) (decimal.Decimal, error) {
	if reported.IsPositive() {
		return reported, nil
	}
	if total.IsZero() {
		return decimal.Zero, errors.DivisionByZero("investimento_total")
	}
	return total.Div(four), nil
}

// valueIndex converts a generated social value and its dimension investment
// into a 0-100 percentage index.
func valueIndex(value, investment decimal.Decimal) decimal.Decimal {
	index := value.Div(investment).Mul(indexScale)
	if index.GreaterThan(hundred) {
		return hundred
	}
	if index.IsNegative() {
		return decimal.Zero
	}
	return index.Round(2)
}

// EducationalIndex computes the educational dimension percentage.
func EducationalIndex(in *project.Input, tbl *reference.Table) (DimensionScore, error) {
	score := DimensionScore{
		Dimension:  DimensionEducational,
		Components: map[string]decimal.Decimal{},
	}

	block := in.Educational
	if block == nil {
		block = &project.EducationalDimension{
			StudentsImpacted:       in.DirectBeneficiaries,
			PerformanceImprovement: defaultLifeQualityImprovement,
		}
	}

	investment, err := dimensionInvestment(in.TotalInvestment, block.Investment)
	if err != nil {
		return score, err
	}

	fundeb, err := tbl.Lookup(reference.KeyFundebPerStudentYear)
	if err != nil {
		return score, err
	}
	taxPerJob, err := tbl.Lookup(reference.KeyTaxRevenueWorker2SMYear)
	if err != nil {
		return score, err
	}

	studentValue := decimal.NewFromInt(int64(block.StudentsImpacted)).
		Mul(fundeb).
		Mul(block.PerformanceImprovement.Div(hundred))
	trainingValue := decimal.NewFromInt(int64(block.YouthTrained)).
		Mul(block.EmployabilityRate.Div(hundred)).
		Mul(taxPerJob)

	value := studentValue.Add(trainingValue)

	score.Value = valueIndex(value, investment)
	score.Components["valor_alunos"] = studentValue
	score.Components["valor_capacitacao"] = trainingValue
	score.Components["investimento_dimensao"] = investment
	return score, nil
}

// EconomicIndex computes the economic dimension percentage.
func EconomicIndex(in *project.Input, tbl *reference.Table) (DimensionScore, error) {
	score := DimensionScore{
		Dimension:  DimensionEconomic,
		Components: map[string]decimal.Decimal{},
	}

	block := in.Economic
	if block == nil {
		block = &project.EconomicDimension{JobsCreated: in.JobsCreated}
	}

	investment, err := dimensionInvestment(in.TotalInvestment, block.Investment)
	if err != nil {
		return score, err
	}

	taxPerWorker, err := tbl.Lookup(reference.KeyTaxRevenueWorkerAvgYear)
	if err != nil {
		return score, err
	}
	uplift, err := tbl.Lookup(reference.KeyIncomeUpliftRate)
	if err != nil {
		return score, err
	}

	jobs := decimal.NewFromInt(int64(block.JobsCreated))
	taxValue := jobs.Mul(taxPerWorker)
	incomeValue := jobs.Mul(block.AverageIncome).Mul(twelve).Mul(uplift)
	creditValue := decimal.NewFromInt(int64(block.MicrocreditsGranted)).
		Mul(block.AverageCreditValue).
		Mul(uplift)

	value := taxValue.Add(incomeValue).Add(creditValue)

	score.Value = valueIndex(value, investment)
	score.Components["valor_arrecadacao"] = taxValue
	score.Components["valor_renda"] = incomeValue
	score.Components["valor_microcredito"] = creditValue
	score.Components["investimento_dimensao"] = investment
	return score, nil
}

// SocialEnvironmentalIndex computes the social-environmental dimension
// percentage. The index is non-decreasing in the benefited population.
func SocialEnvironmentalIndex(in *project.Input, tbl *reference.Table) (DimensionScore, error) {
	score := DimensionScore{
		Dimension:  DimensionSocialEnv,
		Components: map[string]decimal.Decimal{},
	}

	block := in.SocialEnvironmental
	if block == nil {
		block = &project.SocialEnvironmentalDimension{
			PopulationBenefited:    in.DirectBeneficiaries,
			LifeQualityImprovement: defaultLifeQualityImprovement,
		}
	}

	investment, err := dimensionInvestment(in.TotalInvestment, block.Investment)
	if err != nil {
		return score, err
	}

	crasCost, err := tbl.Lookup(reference.KeyCRASCostPersonYear)
	if err != nil {
		return score, err
	}
	carbonPrice, err := tbl.CarbonPriceBRL()
	if err != nil {
		return score, err
	}

	populationValue := decimal.NewFromInt(int64(block.PopulationBenefited)).
		Mul(block.LifeQualityImprovement.Div(hundred)).
		Mul(crasCost)
	carbonValue := block.CarbonCredits.Mul(carbonPrice)

	value := populationValue.Add(carbonValue).Add(block.CircularEconomyValue)

	score.Value = valueIndex(value, investment)
	score.Components["valor_populacao"] = populationValue
	score.Components["valor_carbono"] = carbonValue
	score.Components["valor_economia_circular"] = block.CircularEconomyValue
	score.Components["investimento_dimensao"] = investment
	return score, nil
}

// PoliticalPublicIndex computes the political-public dimension percentage.
func PoliticalPublicIndex(in *project.Input, tbl *reference.Table) (DimensionScore, error) {
	score := DimensionScore{
		Dimension:  DimensionPolitical,
		Components: map[string]decimal.Decimal{},
	}

	block := in.PoliticalPublic
	if block == nil {
		block = &project.PoliticalPublicDimension{}
	}

	investment, err := dimensionInvestment(in.TotalInvestment, block.Investment)
	if err != nil {
		return score, err
	}

	trainingCost, err := tbl.Lookup(reference.KeyTeacherTrainingCost)
	if err != nil {
		return score, err
	}
	policyValue, err := tbl.Lookup(reference.KeyPublicPolicyValue)
	if err != nil {
		return score, err
	}

	managerValue := decimal.NewFromInt(int64(block.ManagersTrained)).Mul(trainingCost)
	policiesValue := decimal.NewFromInt(int64(block.PoliciesCreated)).Mul(policyValue)
	transparencyValue := block.TransparencyIncrease.Div(hundred).Mul(investment)

	value := managerValue.Add(policiesValue).Add(transparencyValue).Add(block.FundsRaised)

	score.Value = valueIndex(value, investment)
	score.Components["valor_gestores"] = managerValue
	score.Components["valor_politicas"] = policiesValue
	score.Components["valor_transparencia"] = transparencyValue
	score.Components["valor_captacao"] = block.FundsRaised
	score.Components["investimento_dimensao"] = investment
	return score, nil
}

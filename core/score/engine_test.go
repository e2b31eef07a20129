package score

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visia/core/project"
	"visia/core/reference"
	"visia/internal/errors"
)

func testEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	return NewEvaluator(reference.NewStore())
}

func renovaInput() *project.Input {
	return &project.Input{
		Name:                         "Projeto Renova",
		TotalInvestment:              decimal.NewFromInt(500000),
		ProjectType:                  project.TypeJobTraining,
		DurationYears:                2,
		DirectBeneficiaries:          100,
		JobsCreated:                  60,
		FamiliesLeavingVulnerability: 40,
		HectaresRecovered:            decimal.NewFromInt(20),
		Biome:                        project.BiomeAtlanticForest,
		AreaType:                     project.AreaUrban,
	}
}

func TestEvaluateUISVEndToEnd(t *testing.T) {
	ev := testEvaluator(t)

	result, err := ev.Evaluate(context.Background(), renovaInput(), "")
	require.NoError(t, err)

	assert.Equal(t, project.MethodologyUISV, result.Methodology)
	assert.Equal(t, reference.DefaultVersion, result.ReferenceVersion)

	sroi, ok := result.Dimension(DimensionSROI)
	require.True(t, ok)
	assert.Equal(t, "5.66", sroi.Value.String())

	env, ok := result.Dimension(DimensionEnvironmental)
	require.True(t, ok)
	assert.Equal(t, "2.11", env.Value.String())

	fiscal, ok := result.Dimension(DimensionFiscal)
	require.True(t, ok)
	assert.Equal(t, "32.72", fiscal.Value.String())

	// No youth served, so the crime dimension is skipped entirely.
	_, ok = result.Dimension(DimensionCrime)
	assert.False(t, ok)

	assert.Equal(t, 700, result.PeopleImpacted)
	assert.Equal(t, "117.54", result.UISV.String())
	assert.Equal(t, ClassA, result.Classification)
	assert.Equal(t, int64(1763), result.TCS)
	assert.NotEmpty(t, result.Hash)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	ev := testEvaluator(t)
	ctx := context.Background()

	first, err := ev.Evaluate(ctx, renovaInput(), "")
	require.NoError(t, err)
	second, err := ev.Evaluate(ctx, renovaInput(), "")
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
	assert.True(t, first.UISV.Equal(second.UISV))
	assert.Equal(t, first.TCS, second.TCS)
	assert.Equal(t, first.Classification, second.Classification)
}

func TestEvaluateDefaultsToUISV(t *testing.T) {
	ev := testEvaluator(t)

	in := renovaInput()
	in.Methodology = ""
	result, err := ev.Evaluate(context.Background(), in, "")
	require.NoError(t, err)
	assert.Equal(t, project.MethodologyUISV, result.Methodology)
}

func TestEvaluateZeroInvestmentIsDivisionByZero(t *testing.T) {
	ev := testEvaluator(t)

	in := renovaInput()
	in.TotalInvestment = decimal.Zero
	_, err := ev.Evaluate(context.Background(), in, "")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeDivisionByZero))
}

func TestEvaluateRejectsUnknownReferenceVersion(t *testing.T) {
	ev := testEvaluator(t)

	_, err := ev.Evaluate(context.Background(), renovaInput(), "1999.01")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestEvaluateRejectsInvalidInput(t *testing.T) {
	ev := testEvaluator(t)

	in := renovaInput()
	in.ProjectType = "alquimia"
	_, err := ev.Evaluate(context.Background(), in, "")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeValidation))
}

func TestEvaluateHonorsContextCancellation(t *testing.T) {
	ev := testEvaluator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ev.Evaluate(ctx, renovaInput(), "")
	assert.ErrorIs(t, err, context.Canceled)
}

func integratedInput() *project.Input {
	return &project.Input{
		Name:            "Rede Integrada",
		Methodology:     project.MethodologyIntegrated,
		TotalInvestment: decimal.NewFromInt(400000),
		ProjectType:     project.TypeEducation,
		DurationYears:   3,
		Educational: &project.EducationalDimension{
			StudentsImpacted:       200,
			PerformanceImprovement: decimal.NewFromInt(20),
			YouthTrained:           50,
			EmployabilityRate:      decimal.NewFromInt(60),
			Investment:             decimal.NewFromInt(100000),
		},
		Economic: &project.EconomicDimension{
			JobsCreated:   5,
			AverageIncome: decimal.NewFromInt(1500),
			Investment:    decimal.NewFromInt(100000),
		},
		SocialEnvironmental: &project.SocialEnvironmentalDimension{
			PopulationBenefited:    1000,
			LifeQualityImprovement: decimal.NewFromInt(15),
			CarbonCredits:          decimal.NewFromInt(100),
			CircularEconomyValue:   decimal.NewFromInt(20000),
			Investment:             decimal.NewFromInt(100000),
		},
		PoliticalPublic: &project.PoliticalPublicDimension{
			ManagersTrained:      10,
			TransparencyIncrease: decimal.NewFromInt(5),
			FundsRaised:          decimal.NewFromInt(30000),
			PoliciesCreated:      1,
			Investment:           decimal.NewFromInt(100000),
		},
	}
}

func TestEvaluateIntegratedEndToEnd(t *testing.T) {
	ev := testEvaluator(t)

	result, err := ev.Evaluate(context.Background(), integratedInput(), "")
	require.NoError(t, err)

	assert.Equal(t, project.MethodologyIntegrated, result.Methodology)
	require.Len(t, result.Dimensions, 4)

	edu, ok := result.Dimension(DimensionEducational)
	require.True(t, ok)
	// 200*7049*0.20 + 50*0.60*21804 = 936080, far past the 4x ceiling.
	assert.Equal(t, "100", edu.Value.String())

	eco, ok := result.Dimension(DimensionEconomic)
	require.True(t, ok)
	// 5*15000 + 5*1500*12*0.35 = 106500 against 100000 invested.
	assert.Equal(t, "26.63", eco.Value.String())

	soc, ok := result.Dimension(DimensionSocialEnv)
	require.True(t, ok)
	// 1000*0.15*1200 + 100*143.75 + 20000 = 214375.
	assert.Equal(t, "53.59", soc.Value.String())

	pol, ok := result.Dimension(DimensionPolitical)
	require.True(t, ok)
	// 10*4350 + 1*50000 + 0.05*100000 + 30000 = 128500.
	assert.Equal(t, "32.13", pol.Value.String())

	assert.Equal(t, "53.09", result.TotalImpact.String())
	assert.Equal(t, ClassExcellent, result.Classification)

	// UISV-only outputs stay zeroed under the integrated methodology.
	assert.True(t, result.UISV.IsZero())
	assert.Zero(t, result.TCS)
}

func TestIntegratedSocialScoreGrowsWithBeneficiaries(t *testing.T) {
	ev := testEvaluator(t)
	ctx := context.Background()

	base := integratedInput()
	base.SocialEnvironmental = nil
	base.DirectBeneficiaries = 100

	more := integratedInput()
	more.SocialEnvironmental = nil
	more.DirectBeneficiaries = 200

	small, err := ev.Evaluate(ctx, base, "")
	require.NoError(t, err)
	large, err := ev.Evaluate(ctx, more, "")
	require.NoError(t, err)

	smallSoc, _ := small.Dimension(DimensionSocialEnv)
	largeSoc, _ := large.Dimension(DimensionSocialEnv)
	assert.True(t, largeSoc.Value.GreaterThanOrEqual(smallSoc.Value),
		"social-environmental index must not decrease when beneficiaries grow")
}

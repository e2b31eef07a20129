package score

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visia/internal/errors"
)

func dim(d Dimension, value string) DimensionScore {
	return DimensionScore{Dimension: d, Value: decimal.RequireFromString(value)}
}

func TestAggregateUISVWeights(t *testing.T) {
	dims := []DimensionScore{
		dim(DimensionSROI, "5.66"),
		dim(DimensionFiscal, "32.72"),
		dim(DimensionEnvironmental, "2.11"),
	}
	uisv, err := AggregateUISV(dims, 700)
	require.NoError(t, err)
	// 5.66*2 + 32.72*3 + 700/100 + 2.11*0.5
	assert.Equal(t, "117.54", uisv.String())
}

func TestAggregateUISVOptionalDimensionsContributeHalf(t *testing.T) {
	base := []DimensionScore{
		dim(DimensionSROI, "4"),
		dim(DimensionFiscal, "10"),
	}
	withCrime := append(append([]DimensionScore{}, base...), dim(DimensionCrime, "6"))

	plain, err := AggregateUISV(base, 0)
	require.NoError(t, err)
	crime, err := AggregateUISV(withCrime, 0)
	require.NoError(t, err)

	assert.Equal(t, "38", plain.String())
	assert.Equal(t, "41", crime.String())
}

func TestAggregateUISVRequiresMandatoryDimensions(t *testing.T) {
	_, err := AggregateUISV([]DimensionScore{dim(DimensionSROI, "4")}, 0)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeIncompleteScore))

	_, err = AggregateUISV([]DimensionScore{dim(DimensionFiscal, "4")}, 0)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeIncompleteScore))
}

func TestAggregateIntegratedAverages(t *testing.T) {
	dims := []DimensionScore{
		dim(DimensionEducational, "100"),
		dim(DimensionEconomic, "26.63"),
		dim(DimensionSocialEnv, "53.59"),
		dim(DimensionPolitical, "32.13"),
	}
	total, err := AggregateIntegrated(dims)
	require.NoError(t, err)
	assert.Equal(t, "53.09", total.String())
}

func TestAggregateIntegratedRequiresAllFourDimensions(t *testing.T) {
	dims := []DimensionScore{
		dim(DimensionEducational, "40"),
		dim(DimensionEconomic, "40"),
		dim(DimensionSocialEnv, "40"),
	}
	_, err := AggregateIntegrated(dims)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeIncompleteScore))
}

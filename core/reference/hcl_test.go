package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
version   = "2026.01"
published = "2026-01-05"

indicator "trabalho.arrecadacao_2sm_ano" {
  value  = 22500.00
  unit   = "BRL/year"
  source = "MTE"
}

indicator "trabalho.aumento_renda_qualificacao" {
  value = 0.35
}

sroi_band "educacao" {
  min = 1.5
  max = 3.5
  avg = 2.5
}
`

func TestParseHCL(t *testing.T) {
	tbl, err := ParseHCL("sample.hcl", []byte(sampleTable))
	require.NoError(t, err)

	assert.Equal(t, "2026.01", tbl.Version())
	assert.Equal(t, "2026-01-05", tbl.Published())

	value, err := tbl.Lookup("trabalho.arrecadacao_2sm_ano")
	require.NoError(t, err)
	assert.Equal(t, "22500", value.String())

	// Fractional values survive with full precision.
	rate, err := tbl.Lookup("trabalho.aumento_renda_qualificacao")
	require.NoError(t, err)
	assert.Equal(t, "0.35", rate.String())

	band, err := tbl.SROIBand("educacao")
	require.NoError(t, err)
	assert.Equal(t, "2.5", band.Avg.String())
}

func TestParseHCLRejectsMalformedSource(t *testing.T) {
	_, err := ParseHCL("broken.hcl", []byte(`version = `))
	assert.Error(t, err)
}

func TestParseHCLRequiresVersion(t *testing.T) {
	_, err := ParseHCL("incomplete.hcl", []byte(`published = "2026-01-05"`))
	assert.Error(t, err)
}

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visia/core/project"
	"visia/core/reference"
	"visia/core/results"
	"visia/core/score"
	"visia/internal/errors"
)

func uisvRecord(t *testing.T) *results.Record {
	t.Helper()

	in := &project.Input{
		Name:                         "Projeto Renova",
		TotalInvestment:              decimal.NewFromInt(500000),
		ProjectType:                  project.TypeJobTraining,
		DurationYears:                2,
		DirectBeneficiaries:          100,
		JobsCreated:                  60,
		FamiliesLeavingVulnerability: 40,
		HectaresRecovered:            decimal.NewFromInt(20),
		Biome:                        project.BiomeAtlanticForest,
	}
	ev := score.NewEvaluator(reference.NewStore())
	result, err := ev.Evaluate(context.Background(), in, "")
	require.NoError(t, err)
	return &results.Record{Result: result, Input: in, StoredAt: time.Now().UTC()}
}

func integratedRecord(t *testing.T) *results.Record {
	t.Helper()

	in := &project.Input{
		Name:                "Rede Integrada",
		Methodology:         project.MethodologyIntegrated,
		TotalInvestment:     decimal.NewFromInt(400000),
		ProjectType:         project.TypeEducation,
		DurationYears:       3,
		DirectBeneficiaries: 120,
		PoliticalPublic: &project.PoliticalPublicDimension{
			ManagersTrained: 5,
		},
	}
	ev := score.NewEvaluator(reference.NewStore())
	result, err := ev.Evaluate(context.Background(), in, "")
	require.NoError(t, err)
	return &results.Record{Result: result, Input: in, StoredAt: time.Now().UTC()}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New("pdf")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeValidation))
}

func TestNewDefaultsToText(t *testing.T) {
	f, err := New("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f.Format())
}

func TestTextReportContents(t *testing.T) {
	rec := uisvRecord(t)
	f, err := New(FormatText)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, rec, Options{EmittedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)}))

	out := buf.String()
	assert.Contains(t, out, "Projeto Renova")
	assert.Contains(t, out, "COMPOSIÇÃO DO UISV")
	assert.Contains(t, out, rec.Result.UISV.String())
	assert.Contains(t, out, rec.Result.Hash)
	assert.Contains(t, out, CertificateNumber(rec.Result.Hash))
}

func TestTextReportShowsComponentsWhenRequested(t *testing.T) {
	rec := uisvRecord(t)
	f, _ := New(FormatText)

	var plain, detailed bytes.Buffer
	require.NoError(t, f.Render(&plain, rec, Options{}))
	require.NoError(t, f.Render(&detailed, rec, Options{ShowComponents: true}))

	assert.NotContains(t, plain.String(), "valor_social_bruto")
	assert.Contains(t, detailed.String(), "valor_social_bruto")
}

func TestMarkdownReportContents(t *testing.T) {
	rec := uisvRecord(t)
	f, err := New(FormatMarkdown)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, rec, Options{}))

	out := buf.String()
	assert.Contains(t, out, "# Relatório de Impacto Social: Projeto Renova")
	assert.Contains(t, out, "## Composição do UISV")
	assert.Contains(t, out, "| SROI | x2 |")
}

func TestMarkdownIntegratedRecommendations(t *testing.T) {
	rec := integratedRecord(t)
	f, _ := New(FormatMarkdown)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, rec, Options{}))

	// Sparse dimension inputs score low and trigger recommendations.
	assert.Contains(t, buf.String(), "## Recomendações")
}

func TestJSONReportRoundTrips(t *testing.T) {
	rec := uisvRecord(t)
	f, err := New(FormatJSON)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, rec, Options{}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, CertificateNumber(rec.Result.Hash), decoded["numero_certificado"])
	assert.Contains(t, decoded, "resultado")
	assert.Contains(t, decoded, "entrada")
}

func TestCertificateIsFramedAndDeterministic(t *testing.T) {
	rec := uisvRecord(t)
	f, err := New(FormatCertificate)
	require.NoError(t, err)

	opts := Options{EmittedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}
	var first, second bytes.Buffer
	require.NoError(t, f.Render(&first, rec, opts))
	require.NoError(t, f.Render(&second, rec, opts))

	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), CertificateNumber(rec.Result.Hash))
	for _, line := range strings.Split(strings.TrimSpace(first.String()), "\n") {
		if strings.HasPrefix(line, "|") {
			assert.Len(t, []rune(line), certificateWidth)
		}
	}
}

func TestCertificateNumberDerivation(t *testing.T) {
	assert.Equal(t, "VISIA-ABCDEF123456", CertificateNumber("abcdef1234567890"))
	assert.Equal(t, "VISIA-AB", CertificateNumber("ab"))
}

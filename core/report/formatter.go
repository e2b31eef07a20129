// Package report renders evaluation results for people and machines: plain
// text, markdown, JSON and a printable certificate.
package report

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"visia/core/determinism"
	"visia/core/results"
	"visia/core/score"
	"visia/internal/errors"
)

// Format selects a report renderer.
type Format string

const (
	FormatText        Format = "text"
	FormatJSON        Format = "json"
	FormatMarkdown    Format = "markdown"
	FormatCertificate Format = "certificate"
)

// Options tune rendering. EmittedAt is injected so renders are reproducible.
type Options struct {
	EmittedAt      time.Time
	ShowComponents bool
}

// Formatter renders one stored record to a writer.
type Formatter interface {
	Format() Format
	Render(w io.Writer, rec *results.Record, opts Options) error
}

// New returns the formatter for a format tag.
func New(f Format) (Formatter, error) {
	switch f {
	case FormatText, "":
		return &textFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatMarkdown:
		return &markdownFormatter{}, nil
	case FormatCertificate:
		return &certificateFormatter{}, nil
	default:
		return nil, errors.Validationf("unknown report format %q", f)
	}
}

// CertificateNumber derives the printable certificate identifier from the
// result verification hash, so re-issuing a certificate never changes it.
func CertificateNumber(hash string) string {
	if len(hash) > 12 {
		hash = hash[:12]
	}
	return "VISIA-" + strings.ToUpper(hash)
}

// contribution is one weighted term of the UISV composite.
type contribution struct {
	Label  string
	Weight string
	Value  decimal.Decimal
}

// uisvContributions decomposes the composite the way it was aggregated.
func uisvContributions(r *score.Result) []contribution {
	var out []contribution
	if sroi, ok := r.Dimension(score.DimensionSROI); ok {
		out = append(out, contribution{"SROI", "x2", sroi.Value.Mul(decimal.NewFromInt(2))})
	}
	if fiscal, ok := r.Dimension(score.DimensionFiscal); ok {
		out = append(out, contribution{"Retorno fiscal", "x3", fiscal.Value.Mul(decimal.NewFromInt(3))})
	}
	out = append(out, contribution{
		"Pessoas impactadas", "/100",
		decimal.NewFromInt(int64(r.PeopleImpacted)).Div(decimal.NewFromInt(100)),
	})
	if crime, ok := r.Dimension(score.DimensionCrime); ok {
		out = append(out, contribution{"Impacto criminalidade", "x0.5", crime.Value.Mul(decimal.RequireFromString("0.5"))})
	}
	if env, ok := r.Dimension(score.DimensionEnvironmental); ok {
		out = append(out, contribution{"Impacto ambiental", "x0.5", env.Value.Mul(decimal.RequireFromString("0.5"))})
	}
	return out
}

var recommendationThreshold = decimal.NewFromInt(20)

// recommendations lists the integrated dimensions scoring below the
// improvement threshold.
func recommendations(r *score.Result) []string {
	labels := map[score.Dimension]string{
		score.DimensionEducational: "Reforçar as atividades educacionais e o acompanhamento de desempenho",
		score.DimensionEconomic:    "Ampliar a geração de renda e o acesso a microcrédito",
		score.DimensionSocialEnv:   "Expandir o alcance socioambiental e a geração de créditos de carbono",
		score.DimensionPolitical:   "Fortalecer a capacitação de gestores e a articulação de políticas públicas",
	}
	var out []string
	for _, d := range []score.Dimension{
		score.DimensionEducational,
		score.DimensionEconomic,
		score.DimensionSocialEnv,
		score.DimensionPolitical,
	} {
		ds, ok := r.Dimension(d)
		if !ok {
			continue
		}
		if ds.Value.LessThan(recommendationThreshold) {
			out = append(out, labels[d])
		}
	}
	return out
}

func sortedComponentNames(components map[string]decimal.Decimal) []string {
	return determinism.SortedKeys(components)
}

func dimensionLabel(d score.Dimension) string {
	switch d {
	case score.DimensionSROI:
		return "SROI"
	case score.DimensionFiscal:
		return "Retorno fiscal"
	case score.DimensionCrime:
		return "Impacto na criminalidade"
	case score.DimensionEnvironmental:
		return "Impacto ambiental"
	case score.DimensionEducational:
		return "Educacional"
	case score.DimensionEconomic:
		return "Econômica"
	case score.DimensionSocialEnv:
		return "Socioambiental"
	case score.DimensionPolitical:
		return "Político-pública"
	default:
		return string(d)
	}
}

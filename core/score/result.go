// Package score implements the scoring engine: pure dimension calculators,
// aggregation, classification, token derivation and the verification hash.
// Every operation is a deterministic function of the project input and one
// reference table version; nothing here performs I/O.
package score

import (
	"github.com/shopspring/decimal"

	"visia/core/project"
)

// Dimension names a sub-score. The UISV methodology uses the first four, the
// integrated methodology the last four.
type Dimension string

const (
	DimensionSROI          Dimension = "sroi"
	DimensionFiscal        Dimension = "retorno_fiscal"
	DimensionCrime         Dimension = "impacto_criminalidade"
	DimensionEnvironmental Dimension = "impacto_ambiental"

	DimensionEducational  Dimension = "educacional"
	DimensionEconomic     Dimension = "economica"
	DimensionSocialEnv    Dimension = "social_ambiental"
	DimensionPolitical    Dimension = "politico_publica"
)

// DimensionScore is a named sub-score plus the inputs and constants used to
// derive it, kept for auditability.
type DimensionScore struct {
	Dimension  Dimension                  `json:"dimensao"`
	Value      decimal.Decimal            `json:"valor"`
	Components map[string]decimal.Decimal `json:"componentes,omitempty"`
	Notes      []string                   `json:"observacoes,omitempty"`
}

// Component returns a named component value, or zero when absent.
func (d DimensionScore) Component(name string) decimal.Decimal {
	return d.Components[name]
}

// Result is the aggregate evaluation output. It is owned by the caller and
// never mutated after creation: re-evaluating identical input reproduces it
// bit-for-bit.
type Result struct {
	Project          string              `json:"projeto"`
	Methodology      project.Methodology `json:"metodologia"`
	ReferenceVersion string              `json:"versao_referencia"`
	Hash             string              `json:"hash_resultado"`

	TotalInvestment     decimal.Decimal `json:"investimento_total"`
	DirectBeneficiaries int             `json:"beneficiarios_diretos"`

	Classification Classification   `json:"classificacao"`
	Dimensions     []DimensionScore `json:"dimensoes"`
	Notes          []string         `json:"observacoes,omitempty"`

	// UISV methodology outputs.
	UISV           decimal.Decimal `json:"uisv"`
	TCS            int64           `json:"tcs_recomendados"`
	PeopleImpacted int             `json:"impacto_total_pessoas"`

	// Integrated methodology output: composite percentage index.
	TotalImpact decimal.Decimal `json:"impacto_total"`
}

// Dimension returns the score for a named dimension.
func (r *Result) Dimension(d Dimension) (DimensionScore, bool) {
	for _, ds := range r.Dimensions {
		if ds.Dimension == d {
			return ds, true
		}
	}
	return DimensionScore{}, false
}

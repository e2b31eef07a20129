// Package reference provides the versioned, read-only reference-data store
// backing all impact calculations. Tables are immutable after construction:
// updates happen by publishing a new version file, never by in-place edit.
package reference

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"visia/internal/errors"
)

// Indicator keys used by the calculators. Every key listed here must be
// present in a published table; a miss at evaluation time is a configuration
// defect, not a user error.
const (
	KeyMinimumWage             = "trabalho.salario_minimo"
	KeyTaxRevenueWorker1SMYear = "trabalho.arrecadacao_1sm_ano"
	KeyTaxRevenueWorker2SMYear = "trabalho.arrecadacao_2sm_ano"
	KeyTaxRevenueWorkerAvgYear = "trabalho.arrecadacao_media_ano"
	KeyIncomeUpliftRate        = "trabalho.aumento_renda_qualificacao"

	KeyBolsaFamiliaFamilyYear = "social.bolsa_familia_custo_familia_ano"
	KeyCRASCostPersonYear     = "social.custo_cras_pessoa_ano"

	KeyFundebPerStudentYear  = "educacao.fundeb_valor_aluno_ano"
	KeyDropoutAvoidedSavings = "educacao.economia_evasao_evitada"
	KeyTeacherTrainingCost   = "educacao.custo_formacao_professor"

	KeyPrisonerCostStateYear = "prisional.custo_preso_estadual_ano"

	KeyCrimeCostHomicide      = "crime.custo_homicidio"
	KeyCrimeCostCargoRobbery  = "crime.custo_roubo_carga"
	KeyCrimeCostTheft         = "crime.custo_furto"
	KeyCrimeCostTrafficking   = "crime.custo_trafico"
	KeyCrimeCostOther         = "crime.custo_outros"
	KeyCrimeCostAverage       = "crime.custo_medio"
	KeyCrimeVictimMedicalCost = "crime.custo_medico_vitima"
	KeyCrimeInjuryMedicalCost = "crime.custo_medico_leve"

	KeyHospitalizationCostSUS = "saude.custo_internacao_sus"

	KeyCarbonSequestrationTonHaYear = "ambiente.sequestro_ton_ha_ano"
	KeyCarbonPriceUSDAvg            = "ambiente.preco_tco2_usd_medio"
	KeyPSAPerHectareYearMin         = "ambiente.psa_ha_ano_min"
	KeyPSAPerHectareYearMax         = "ambiente.psa_ha_ano_max"
	KeyBiodiversityPerHectareYear   = "ambiente.biodiversidade_ha_ano"

	KeyUSDExchangeRate = "macro.cotacao_dolar"

	KeyFamilyMultiplier    = "sroi.multiplicador_familiar_medio"
	KeyCommunityMultiplier = "sroi.multiplicador_comunitario_medio"

	KeyPublicPolicyValue = "politico.valor_politica_publica"

	recoveryCostPrefix = "ambiente.recuperacao_ha."
)

// Indicator is a single named reference value with provenance annotations.
type Indicator struct {
	Key       string          `json:"key"`
	Value     decimal.Decimal `json:"value"`
	Unit      string          `json:"unit,omitempty"`
	Source    string          `json:"source,omitempty"`
	ValidFrom string          `json:"valid_from,omitempty"`
	ValidTo   string          `json:"valid_to,omitempty"`
}

// Band is an SROI reference range for a project type.
type Band struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
	Avg decimal.Decimal `json:"avg"`
}

// Table is an immutable reference-data version. All accessors are safe for
// concurrent use: nothing mutates a Table after Build.
type Table struct {
	version     string
	published   string
	indicators  map[string]Indicator
	bands       map[string]Band
	contentHash string
}

// Version returns the version tag recorded alongside every result.
func (t *Table) Version() string {
	return t.version
}

// Published returns the publication date annotation.
func (t *Table) Published() string {
	return t.published
}

// ContentHash returns the sha256 fingerprint of the table content.
func (t *Table) ContentHash() string {
	return t.contentHash
}

// Lookup returns the value for an indicator key.
func (t *Table) Lookup(key string) (decimal.Decimal, error) {
	ind, ok := t.indicators[key]
	if !ok {
		return decimal.Zero, errors.UnknownIndicator(key).WithContext("version", t.version)
	}
	return ind.Value, nil
}

// Indicator returns the full indicator record, including provenance.
func (t *Table) Indicator(key string) (Indicator, error) {
	ind, ok := t.indicators[key]
	if !ok {
		return Indicator{}, errors.UnknownIndicator(key).WithContext("version", t.version)
	}
	return ind, nil
}

// Keys returns all indicator keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.indicators))
	for k := range t.indicators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SROIBand returns the reference SROI range for a project type.
func (t *Table) SROIBand(projectType string) (Band, error) {
	band, ok := t.bands[projectType]
	if !ok {
		return Band{}, errors.UnknownIndicator("sroi.banda." + projectType).
			WithContext("version", t.version)
	}
	return band, nil
}

// RecoveryCostPerHectare returns the restoration cost for a biome.
func (t *Table) RecoveryCostPerHectare(biome string) (decimal.Decimal, error) {
	return t.Lookup(recoveryCostPrefix + biome)
}

// CarbonPriceBRL returns the carbon-credit price converted to BRL.
func (t *Table) CarbonPriceBRL() (decimal.Decimal, error) {
	usd, err := t.Lookup(KeyCarbonPriceUSDAvg)
	if err != nil {
		return decimal.Zero, err
	}
	fx, err := t.Lookup(KeyUSDExchangeRate)
	if err != nil {
		return decimal.Zero, err
	}
	return usd.Mul(fx), nil
}

// PSAPerHectareYear returns the midpoint of the payment-for-environmental-services band.
func (t *Table) PSAPerHectareYear() (decimal.Decimal, error) {
	min, err := t.Lookup(KeyPSAPerHectareYearMin)
	if err != nil {
		return decimal.Zero, err
	}
	max, err := t.Lookup(KeyPSAPerHectareYearMax)
	if err != nil {
		return decimal.Zero, err
	}
	return min.Add(max).Div(decimal.NewFromInt(2)), nil
}

// Builder assembles a Table. Build seals the table and computes its content hash.
type Builder struct {
	version    string
	published  string
	indicators map[string]Indicator
	bands      map[string]Band
}

// NewBuilder creates a table builder for a version tag.
func NewBuilder(version string) *Builder {
	return &Builder{
		version:    version,
		indicators: make(map[string]Indicator),
		bands:      make(map[string]Band),
	}
}

// WithPublished sets the publication date annotation.
func (b *Builder) WithPublished(date string) *Builder {
	b.published = date
	return b
}

// AddIndicator registers an indicator value.
func (b *Builder) AddIndicator(ind Indicator) *Builder {
	b.indicators[ind.Key] = ind
	return b
}

// AddBand registers an SROI band for a project type.
func (b *Builder) AddBand(projectType string, band Band) *Builder {
	b.bands[projectType] = band
	return b
}

// Build seals the table. The content hash is computed over a canonical
// sorted-key serialization so identical content always hashes identically.
func (b *Builder) Build() (*Table, error) {
	if b.version == "" {
		return nil, errors.Config("reference table requires a version tag", nil)
	}

	var sb strings.Builder
	sb.WriteString("version=" + b.version + "\n")

	indKeys := make([]string, 0, len(b.indicators))
	for k := range b.indicators {
		indKeys = append(indKeys, k)
	}
	sort.Strings(indKeys)
	for _, k := range indKeys {
		sb.WriteString(k + "=" + b.indicators[k].Value.String() + "\n")
	}

	bandKeys := make([]string, 0, len(b.bands))
	for k := range b.bands {
		bandKeys = append(bandKeys, k)
	}
	sort.Strings(bandKeys)
	for _, k := range bandKeys {
		band := b.bands[k]
		sb.WriteString("band." + k + "=" + band.Min.String() + "," + band.Max.String() + "," + band.Avg.String() + "\n")
	}

	sum := sha256.Sum256([]byte(sb.String()))

	return &Table{
		version:     b.version,
		published:   b.published,
		indicators:  b.indicators,
		bands:       b.bands,
		contentHash: hex.EncodeToString(sum[:]),
	}, nil
}

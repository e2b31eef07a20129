package project

import (
	"github.com/shopspring/decimal"

	"visia/internal/errors"
)

// Input is the self-reported project record handed to the evaluator.
// Collaborators (extraction, API layer) are responsible for producing it;
// once validated it is treated as immutable.
type Input struct {
	Name        string      `json:"nome"`
	Methodology Methodology `json:"metodologia,omitempty"`

	TotalInvestment decimal.Decimal `json:"investimento_total"`
	ProjectType     Type            `json:"tipo_projeto"`
	DurationYears   int             `json:"duracao_anos"`

	DirectBeneficiaries          int             `json:"beneficiarios_diretos"`
	JobsCreated                  int             `json:"empregos_gerados"`
	FamiliesLeavingVulnerability int             `json:"familias_saem_vulnerabilidade"`
	StudentsAvoidingDropout      int             `json:"alunos_evitam_evasao"`
	YouthServed                  int             `json:"jovens_atendidos"`
	HospitalizationsAvoided      int             `json:"internacoes_evitadas"`
	HectaresRecovered            decimal.Decimal `json:"hectares_recuperados"`
	Biome                        Biome           `json:"bioma,omitempty"`
	AreaType                     AreaType        `json:"tipo_area,omitempty"`

	// Dimension blocks for the integrated methodology. Unreported blocks
	// fall back to the shared fields above where a mapping exists.
	Educational         *EducationalDimension         `json:"educacional,omitempty"`
	Economic            *EconomicDimension            `json:"economica,omitempty"`
	SocialEnvironmental *SocialEnvironmentalDimension `json:"social_ambiental,omitempty"`
	PoliticalPublic     *PoliticalPublicDimension     `json:"politico_publica,omitempty"`
}

// EducationalDimension holds the integrated-methodology education inputs.
type EducationalDimension struct {
	StudentsImpacted       int             `json:"alunos_impactados"`
	PerformanceImprovement decimal.Decimal `json:"melhoria_desempenho"` // percent
	YouthTrained           int             `json:"jovens_capacitados"`
	EmployabilityRate      decimal.Decimal `json:"taxa_empregabilidade"` // percent
	Investment             decimal.Decimal `json:"investimento"`
}

// EconomicDimension holds the integrated-methodology economic inputs.
type EconomicDimension struct {
	JobsCreated        int             `json:"empregos_gerados"`
	AverageIncome      decimal.Decimal `json:"renda_media"`
	MicrocreditsGranted int            `json:"microcreditos_concedidos"`
	AverageCreditValue decimal.Decimal `json:"valor_medio_credito"`
	Investment         decimal.Decimal `json:"investimento"`
}

// SocialEnvironmentalDimension holds the integrated-methodology
// social-environmental inputs.
type SocialEnvironmentalDimension struct {
	PopulationBenefited    int             `json:"populacao_beneficiada"`
	LifeQualityImprovement decimal.Decimal `json:"taxa_melhoria_qualidade_vida"` // percent
	CarbonCredits          decimal.Decimal `json:"creditos_carbono_gerados"`
	CircularEconomyValue   decimal.Decimal `json:"impacto_economia_circular"` // BRL
	Investment             decimal.Decimal `json:"investimento"`
}

// PoliticalPublicDimension holds the integrated-methodology political-public
// inputs.
type PoliticalPublicDimension struct {
	ManagersTrained      int             `json:"gestores_capacitados"`
	TransparencyIncrease decimal.Decimal `json:"transparencia_aumento"` // percent
	FundsRaised          decimal.Decimal `json:"investimentos_captados"` // BRL
	PoliciesCreated      int             `json:"numero_politicas_criadas"`
	Investment           decimal.Decimal `json:"investimento"`
}

// EffectiveMethodology returns the selected methodology, defaulting to UISV.
func (in *Input) EffectiveMethodology() Methodology {
	if in.Methodology == "" {
		return MethodologyUISV
	}
	return in.Methodology
}

// Validate checks field shape only: non-negative numerics and closed
// enumerations. A zero investment passes validation and is rejected later by
// the calculators as a division-by-zero, per the error taxonomy.
func (in *Input) Validate() error {
	if in.Name == "" {
		return errors.Validation("nome is required")
	}
	if !in.EffectiveMethodology().Valid() {
		return errors.Validationf("metodologia %q is not one of [%s, %s]",
			in.Methodology, MethodologyUISV, MethodologyIntegrated)
	}
	if !in.ProjectType.Valid() {
		return errors.Validationf("tipo_projeto %q is not a known project type", in.ProjectType)
	}
	if in.TotalInvestment.IsNegative() {
		return errors.Validation("investimento_total must be non-negative")
	}
	if in.HectaresRecovered.IsNegative() {
		return errors.Validation("hectares_recuperados must be non-negative")
	}
	if in.HectaresRecovered.IsPositive() && !in.Biome.Valid() {
		return errors.Validationf("bioma %q is not a known biome", in.Biome)
	}
	if in.Biome != "" && !in.Biome.Valid() {
		return errors.Validationf("bioma %q is not a known biome", in.Biome)
	}
	if in.AreaType != "" && !in.AreaType.Valid() {
		return errors.Validationf("tipo_area %q is not a known area type", in.AreaType)
	}

	counts := map[string]int{
		"duracao_anos":                  in.DurationYears,
		"beneficiarios_diretos":         in.DirectBeneficiaries,
		"empregos_gerados":              in.JobsCreated,
		"familias_saem_vulnerabilidade": in.FamiliesLeavingVulnerability,
		"alunos_evitam_evasao":          in.StudentsAvoidingDropout,
		"jovens_atendidos":              in.YouthServed,
		"internacoes_evitadas":          in.HospitalizationsAvoided,
	}
	for field, v := range counts {
		if v < 0 {
			return errors.Validationf("%s must be non-negative", field)
		}
	}

	if in.Educational != nil {
		if err := nonNegative("educacional", map[string]decimal.Decimal{
			"melhoria_desempenho":  in.Educational.PerformanceImprovement,
			"taxa_empregabilidade": in.Educational.EmployabilityRate,
			"investimento":         in.Educational.Investment,
		}, map[string]int{
			"alunos_impactados":  in.Educational.StudentsImpacted,
			"jovens_capacitados": in.Educational.YouthTrained,
		}); err != nil {
			return err
		}
	}
	if in.Economic != nil {
		if err := nonNegative("economica", map[string]decimal.Decimal{
			"renda_media":         in.Economic.AverageIncome,
			"valor_medio_credito": in.Economic.AverageCreditValue,
			"investimento":        in.Economic.Investment,
		}, map[string]int{
			"empregos_gerados":         in.Economic.JobsCreated,
			"microcreditos_concedidos": in.Economic.MicrocreditsGranted,
		}); err != nil {
			return err
		}
	}
	if in.SocialEnvironmental != nil {
		if err := nonNegative("social_ambiental", map[string]decimal.Decimal{
			"taxa_melhoria_qualidade_vida": in.SocialEnvironmental.LifeQualityImprovement,
			"creditos_carbono_gerados":     in.SocialEnvironmental.CarbonCredits,
			"impacto_economia_circular":    in.SocialEnvironmental.CircularEconomyValue,
			"investimento":                 in.SocialEnvironmental.Investment,
		}, map[string]int{
			"populacao_beneficiada": in.SocialEnvironmental.PopulationBenefited,
		}); err != nil {
			return err
		}
	}
	if in.PoliticalPublic != nil {
		if err := nonNegative("politico_publica", map[string]decimal.Decimal{
			"transparencia_aumento":  in.PoliticalPublic.TransparencyIncrease,
			"investimentos_captados": in.PoliticalPublic.FundsRaised,
			"investimento":           in.PoliticalPublic.Investment,
		}, map[string]int{
			"gestores_capacitados":     in.PoliticalPublic.ManagersTrained,
			"numero_politicas_criadas": in.PoliticalPublic.PoliciesCreated,
		}); err != nil {
			return err
		}
	}

	return nil
}

func nonNegative(block string, decimals map[string]decimal.Decimal, ints map[string]int) error {
	for field, v := range decimals {
		if v.IsNegative() {
			return errors.Validationf("%s.%s must be non-negative", block, field)
		}
	}
	for field, v := range ints {
		if v < 0 {
			return errors.Validationf("%s.%s must be non-negative", block, field)
		}
	}
	return nil
}

package score

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"visia/core/determinism"
	"visia/core/project"
)

// Fingerprint computes the verification hash for an evaluation: a sha256 over
// the canonical serialization of every scoring-relevant input field, the
// effective methodology and the reference table version. Identical inputs
// against the same table version always produce the same fingerprint;
// changing any single field changes it.
func Fingerprint(in *project.Input, referenceVersion string) string {
	fields := map[string]string{
		"nome":                          in.Name,
		"metodologia":                   string(in.EffectiveMethodology()),
		"versao_referencia":             referenceVersion,
		"investimento_total":            canonDecimal(in.TotalInvestment),
		"tipo_projeto":                  string(in.ProjectType),
		"duracao_anos":                  strconv.Itoa(in.DurationYears),
		"beneficiarios_diretos":         strconv.Itoa(in.DirectBeneficiaries),
		"empregos_gerados":              strconv.Itoa(in.JobsCreated),
		"familias_saem_vulnerabilidade": strconv.Itoa(in.FamiliesLeavingVulnerability),
		"alunos_evitam_evasao":          strconv.Itoa(in.StudentsAvoidingDropout),
		"jovens_atendidos":              strconv.Itoa(in.YouthServed),
		"internacoes_evitadas":          strconv.Itoa(in.HospitalizationsAvoided),
		"hectares_recuperados":          canonDecimal(in.HectaresRecovered),
		"bioma":                         string(in.Biome),
		"tipo_area":                     string(in.AreaType),
	}

	if b := in.Educational; b != nil {
		fields["educacional.alunos_impactados"] = strconv.Itoa(b.StudentsImpacted)
		fields["educacional.melhoria_desempenho"] = canonDecimal(b.PerformanceImprovement)
		fields["educacional.jovens_capacitados"] = strconv.Itoa(b.YouthTrained)
		fields["educacional.taxa_empregabilidade"] = canonDecimal(b.EmployabilityRate)
		fields["educacional.investimento"] = canonDecimal(b.Investment)
	}
	if b := in.Economic; b != nil {
		fields["economica.empregos_gerados"] = strconv.Itoa(b.JobsCreated)
		fields["economica.renda_media"] = canonDecimal(b.AverageIncome)
		fields["economica.microcreditos_concedidos"] = strconv.Itoa(b.MicrocreditsGranted)
		fields["economica.valor_medio_credito"] = canonDecimal(b.AverageCreditValue)
		fields["economica.investimento"] = canonDecimal(b.Investment)
	}
	if b := in.SocialEnvironmental; b != nil {
		fields["social_ambiental.populacao_beneficiada"] = strconv.Itoa(b.PopulationBenefited)
		fields["social_ambiental.taxa_melhoria_qualidade_vida"] = canonDecimal(b.LifeQualityImprovement)
		fields["social_ambiental.creditos_carbono_gerados"] = canonDecimal(b.CarbonCredits)
		fields["social_ambiental.impacto_economia_circular"] = canonDecimal(b.CircularEconomyValue)
		fields["social_ambiental.investimento"] = canonDecimal(b.Investment)
	}
	if b := in.PoliticalPublic; b != nil {
		fields["politico_publica.gestores_capacitados"] = strconv.Itoa(b.ManagersTrained)
		fields["politico_publica.transparencia_aumento"] = canonDecimal(b.TransparencyIncrease)
		fields["politico_publica.investimentos_captados"] = canonDecimal(b.FundsRaised)
		fields["politico_publica.numero_politicas_criadas"] = strconv.Itoa(b.PoliciesCreated)
		fields["politico_publica.investimento"] = canonDecimal(b.Investment)
	}

	return determinism.HashFields(fields).Hex()
}

// canonDecimal normalizes decimals so 500000, 500000.0 and 5e5 serialize
// identically regardless of the exponent they were parsed with.
func canonDecimal(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

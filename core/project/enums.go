// Package project defines the self-reported project input accepted by the
// scoring engine, including the closed enumerations and validation rules.
package project

// Type is the closed project-type enumeration.
type Type string

const (
	TypeEducation           Type = "educacao"
	TypeJobTraining         Type = "qualificacao_profissional"
	TypeEarlyChildhood      Type = "primeira_infancia"
	TypeEnvironment         Type = "meio_ambiente"
	TypeHealth              Type = "saude"
	TypePublicSafety        Type = "seguranca"
	TypeSocialAssistance    Type = "assistencia_social"
	TypeCulture             Type = "cultura"
	TypeSports              Type = "esporte"
)

var projectTypes = map[Type]bool{
	TypeEducation:        true,
	TypeJobTraining:      true,
	TypeEarlyChildhood:   true,
	TypeEnvironment:      true,
	TypeHealth:           true,
	TypePublicSafety:     true,
	TypeSocialAssistance: true,
	TypeCulture:          true,
	TypeSports:           true,
}

// Valid reports whether the type belongs to the closed enumeration.
func (t Type) Valid() bool {
	return projectTypes[t]
}

// Biome is the closed biome enumeration.
type Biome string

const (
	BiomeAmazon         Biome = "amazonia"
	BiomeAtlanticForest Biome = "mata_atlantica"
	BiomeCerrado        Biome = "cerrado"
	BiomeCaatinga       Biome = "caatinga"
	BiomePantanal       Biome = "pantanal"
	BiomePampa          Biome = "pampa"
)

var biomes = map[Biome]bool{
	BiomeAmazon:         true,
	BiomeAtlanticForest: true,
	BiomeCerrado:        true,
	BiomeCaatinga:       true,
	BiomePantanal:       true,
	BiomePampa:          true,
}

// Valid reports whether the biome belongs to the closed enumeration.
func (b Biome) Valid() bool {
	return biomes[b]
}

// AreaType qualifies the crime-impact calculation.
type AreaType string

const (
	AreaUrban     AreaType = "urbana"
	AreaPeriurban AreaType = "periurbana"
	AreaRural     AreaType = "rural"
)

var areaTypes = map[AreaType]bool{
	AreaUrban:     true,
	AreaPeriurban: true,
	AreaRural:     true,
}

// Valid reports whether the area type belongs to the closed enumeration.
func (a AreaType) Valid() bool {
	return areaTypes[a]
}

// Methodology selects which calculator set and banding table apply. The two
// documented methodologies never reconcile into one decision; the caller
// chooses one per evaluation.
type Methodology string

const (
	// MethodologyUISV is the weighted SROI/fiscal/crime/environment index
	// with TCS token derivation and A-D banding.
	MethodologyUISV Methodology = "uisv"

	// MethodologyIntegrated is the four-dimension percentage index with
	// EXCELENTE-INSUFICIENTE banding.
	MethodologyIntegrated Methodology = "integrada"
)

// Valid reports whether the methodology is one of the two documented ones.
func (m Methodology) Valid() bool {
	return m == MethodologyUISV || m == MethodologyIntegrated
}

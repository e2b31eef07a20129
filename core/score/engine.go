package score

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"visia/core/project"
	"visia/core/reference"
	"visia/internal/logging"
)

// Evaluator runs full project evaluations against a reference store. It holds
// no evaluation state; a single Evaluator is safe for concurrent use.
type Evaluator struct {
	store *reference.Store
}

// NewEvaluator creates an evaluator bound to a reference store.
func NewEvaluator(store *reference.Store) *Evaluator {
	return &Evaluator{store: store}
}

// Evaluate validates the input, resolves the reference table version (empty
// means latest) and runs the methodology selected on the input. The returned
// result carries the verification hash; identical inputs against the same
// table version reproduce it exactly.
func (e *Evaluator) Evaluate(ctx context.Context, in *project.Input, referenceVersion string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tbl, err := e.store.Resolve(referenceVersion)
	if err != nil {
		return nil, err
	}

	logging.Debug("evaluating project",
		zap.String("project", in.Name),
		zap.String("methodology", string(in.EffectiveMethodology())),
		zap.String("reference_version", tbl.Version()))

	var result *Result
	switch in.EffectiveMethodology() {
	case project.MethodologyIntegrated:
		result, err = e.evaluateIntegrated(in, tbl)
	default:
		result, err = e.evaluateUISV(in, tbl)
	}
	if err != nil {
		return nil, err
	}

	result.Hash = Fingerprint(in, tbl.Version())

	logging.Info("project evaluated",
		zap.String("project", in.Name),
		zap.String("classification", string(result.Classification)),
		zap.String("hash", result.Hash))

	return result, nil
}

func (e *Evaluator) evaluateUISV(in *project.Input, tbl *reference.Table) (*Result, error) {
	dims := make([]DimensionScore, 0, 4)

	sroi, err := SROI(in, tbl)
	if err != nil {
		return nil, err
	}
	dims = append(dims, sroi)

	var crimesAvoided int64
	if in.YouthServed > 0 {
		crime, err := CrimeImpact(in, tbl)
		if err != nil {
			return nil, err
		}
		dims = append(dims, crime)
		crimesAvoided = crime.Component("crimes_evitados_total").IntPart()
	}

	if in.HectaresRecovered.IsPositive() {
		env, err := EnvironmentalImpact(in, tbl)
		if err != nil {
			return nil, err
		}
		dims = append(dims, env)
	}

	fiscal, err := FiscalReturn(in, crimesAvoided, tbl)
	if err != nil {
		return nil, err
	}
	dims = append(dims, fiscal)

	people, err := peopleImpacted(in, tbl)
	if err != nil {
		return nil, err
	}

	uisv, err := AggregateUISV(dims, people)
	if err != nil {
		return nil, err
	}
	if err := boundedScore(uisv, "uisv"); err != nil {
		return nil, err
	}

	classification := ClassifyUISV(uisv)
	tcs := Tokens(uisv, in.TotalInvestment)

	return &Result{
		Project:             in.Name,
		Methodology:         project.MethodologyUISV,
		ReferenceVersion:    tbl.Version(),
		TotalInvestment:     in.TotalInvestment,
		DirectBeneficiaries: in.DirectBeneficiaries,
		Classification:      classification,
		Dimensions:          dims,
		UISV:                uisv,
		TCS:                 tcs,
		PeopleImpacted:      people,
		Notes: []string{
			uisvNote(classification),
			fmt.Sprintf("Impacto estimado em %d pessoas (multiplicador familiar e comunitário)", people),
			fmt.Sprintf("UISV %s corresponde a %d TCS recomendados", uisv.String(), tcs),
		},
	}, nil
}

func (e *Evaluator) evaluateIntegrated(in *project.Input, tbl *reference.Table) (*Result, error) {
	dims := make([]DimensionScore, 0, 4)
	for _, calc := range []func(*project.Input, *reference.Table) (DimensionScore, error){
		EducationalIndex,
		EconomicIndex,
		SocialEnvironmentalIndex,
		PoliticalPublicIndex,
	} {
		ds, err := calc(in, tbl)
		if err != nil {
			return nil, err
		}
		dims = append(dims, ds)
	}

	total, err := AggregateIntegrated(dims)
	if err != nil {
		return nil, err
	}
	if err := boundedScore(total, "impacto_total"); err != nil {
		return nil, err
	}

	classification := ClassifyIntegrated(total)

	return &Result{
		Project:             in.Name,
		Methodology:         project.MethodologyIntegrated,
		ReferenceVersion:    tbl.Version(),
		TotalInvestment:     in.TotalInvestment,
		DirectBeneficiaries: in.DirectBeneficiaries,
		Classification:      classification,
		Dimensions:          dims,
		TotalImpact:         total,
		PeopleImpacted:      in.DirectBeneficiaries,
		Notes:               []string{integratedNote(classification)},
	}, nil
}

// peopleImpacted applies the family and community multipliers to the direct
// beneficiary count, truncating at each step.
func peopleImpacted(in *project.Input, tbl *reference.Table) (int, error) {
	family, err := tbl.Lookup(reference.KeyFamilyMultiplier)
	if err != nil {
		return 0, err
	}
	community, err := tbl.Lookup(reference.KeyCommunityMultiplier)
	if err != nil {
		return 0, err
	}

	beneficiaries := decimal.NewFromInt(int64(in.DirectBeneficiaries))
	familyReach := decimal.NewFromInt(beneficiaries.Mul(family).IntPart())
	return int(familyReach.Mul(community).IntPart()), nil
}

func uisvNote(c Classification) string {
	switch c {
	case ClassA:
		return "Classe A: projeto de altíssimo impacto social"
	case ClassB:
		return "Classe B: projeto de alto impacto social"
	case ClassC:
		return "Classe C: projeto de impacto social moderado"
	default:
		return "Classe D: impacto social abaixo do limiar de recomendação"
	}
}

func integratedNote(c Classification) string {
	switch c {
	case ClassExcellent:
		return "Projeto aprovado com alto impacto"
	case ClassGood:
		return "Projeto aprovado"
	case ClassRegular:
		return "Projeto requer ajustes antes da aprovação"
	default:
		return "Projeto não recomendado na configuração atual"
	}
}

package report

import (
	"fmt"
	"io"

	"visia/core/project"
	"visia/core/results"
)

type textFormatter struct{}

func (f *textFormatter) Format() Format { return FormatText }

func (f *textFormatter) Render(w io.Writer, rec *results.Record, opts Options) error {
	r := rec.Result

	fmt.Fprintf(w, "RELATÓRIO DE IMPACTO SOCIAL\n")
	fmt.Fprintf(w, "===========================\n\n")
	fmt.Fprintf(w, "Projeto:              %s\n", r.Project)
	fmt.Fprintf(w, "Metodologia:          %s\n", r.Methodology)
	fmt.Fprintf(w, "Tabela de referência: %s\n", r.ReferenceVersion)
	fmt.Fprintf(w, "Investimento total:   R$ %s\n", r.TotalInvestment.StringFixed(2))
	fmt.Fprintf(w, "Beneficiários:        %d\n\n", r.DirectBeneficiaries)

	fmt.Fprintf(w, "DIMENSÕES\n")
	for _, ds := range r.Dimensions {
		fmt.Fprintf(w, "  %-26s %s\n", dimensionLabel(ds.Dimension)+":", ds.Value.String())
		if opts.ShowComponents {
			for _, name := range sortedComponentNames(ds.Components) {
				fmt.Fprintf(w, "    %-28s %s\n", name+":", ds.Components[name].String())
			}
		}
		for _, note := range ds.Notes {
			fmt.Fprintf(w, "    - %s\n", note)
		}
	}
	fmt.Fprintln(w)

	if r.Methodology == project.MethodologyUISV {
		fmt.Fprintf(w, "COMPOSIÇÃO DO UISV\n")
		for _, c := range uisvContributions(r) {
			fmt.Fprintf(w, "  %-26s %s (%s)\n", c.Label+":", c.Value.String(), c.Weight)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "UISV:                 %s\n", r.UISV.String())
		fmt.Fprintf(w, "Classificação:        %s\n", r.Classification)
		fmt.Fprintf(w, "Pessoas impactadas:   %d\n", r.PeopleImpacted)
		fmt.Fprintf(w, "TCS recomendados:     %d\n", r.TCS)
	} else {
		fmt.Fprintf(w, "Impacto total:        %s%%\n", r.TotalImpact.String())
		fmt.Fprintf(w, "Classificação:        %s\n", r.Classification)
		if recs := recommendations(r); len(recs) > 0 {
			fmt.Fprintf(w, "\nRECOMENDAÇÕES\n")
			for _, rec := range recs {
				fmt.Fprintf(w, "  - %s\n", rec)
			}
		}
	}

	for _, note := range r.Notes {
		fmt.Fprintf(w, "\n%s", note)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\nHash de verificação:  %s\n", r.Hash)
	fmt.Fprintf(w, "Certificado:          %s\n", CertificateNumber(r.Hash))
	if !opts.EmittedAt.IsZero() {
		fmt.Fprintf(w, "Emitido em:           %s\n", opts.EmittedAt.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

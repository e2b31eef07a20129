package report

import (
	"fmt"
	"io"

	"visia/core/project"
	"visia/core/results"
)

type markdownFormatter struct{}

func (f *markdownFormatter) Format() Format { return FormatMarkdown }

func (f *markdownFormatter) Render(w io.Writer, rec *results.Record, opts Options) error {
	r := rec.Result

	fmt.Fprintf(w, "# Relatório de Impacto Social: %s\n\n", r.Project)
	fmt.Fprintf(w, "| Campo | Valor |\n|---|---|\n")
	fmt.Fprintf(w, "| Metodologia | %s |\n", r.Methodology)
	fmt.Fprintf(w, "| Tabela de referência | %s |\n", r.ReferenceVersion)
	fmt.Fprintf(w, "| Investimento total | R$ %s |\n", r.TotalInvestment.StringFixed(2))
	fmt.Fprintf(w, "| Beneficiários diretos | %d |\n", r.DirectBeneficiaries)
	fmt.Fprintf(w, "| Classificação | **%s** |\n\n", r.Classification)

	fmt.Fprintf(w, "## Dimensões\n\n")
	fmt.Fprintf(w, "| Dimensão | Valor |\n|---|---|\n")
	for _, ds := range r.Dimensions {
		fmt.Fprintf(w, "| %s | %s |\n", dimensionLabel(ds.Dimension), ds.Value.String())
	}
	fmt.Fprintln(w)

	if opts.ShowComponents {
		for _, ds := range r.Dimensions {
			if len(ds.Components) == 0 {
				continue
			}
			fmt.Fprintf(w, "### Componentes: %s\n\n", dimensionLabel(ds.Dimension))
			fmt.Fprintf(w, "| Componente | Valor |\n|---|---|\n")
			for _, name := range sortedComponentNames(ds.Components) {
				fmt.Fprintf(w, "| %s | %s |\n", name, ds.Components[name].String())
			}
			fmt.Fprintln(w)
		}
	}

	if r.Methodology == project.MethodologyUISV {
		fmt.Fprintf(w, "## Composição do UISV\n\n")
		fmt.Fprintf(w, "| Termo | Peso | Contribuição |\n|---|---|---|\n")
		for _, c := range uisvContributions(r) {
			fmt.Fprintf(w, "| %s | %s | %s |\n", c.Label, c.Weight, c.Value.String())
		}
		fmt.Fprintf(w, "\n**UISV: %s** (classe %s)\n\n", r.UISV.String(), r.Classification)
		fmt.Fprintf(w, "- Pessoas impactadas: %d\n", r.PeopleImpacted)
		fmt.Fprintf(w, "- TCS recomendados: %d\n", r.TCS)
	} else {
		fmt.Fprintf(w, "**Impacto total: %s%%** (%s)\n", r.TotalImpact.String(), r.Classification)
		if recs := recommendations(r); len(recs) > 0 {
			fmt.Fprintf(w, "\n## Recomendações\n\n")
			for _, rec := range recs {
				fmt.Fprintf(w, "- %s\n", rec)
			}
		}
	}

	fmt.Fprintf(w, "\n---\n\n")
	fmt.Fprintf(w, "Hash de verificação: `%s`  \n", r.Hash)
	fmt.Fprintf(w, "Certificado: %s\n", CertificateNumber(r.Hash))
	if !opts.EmittedAt.IsZero() {
		fmt.Fprintf(w, "Emitido em: %s\n", opts.EmittedAt.Format("2006-01-02"))
	}
	return nil
}

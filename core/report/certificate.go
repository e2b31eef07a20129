package report

import (
	"fmt"
	"io"
	"strings"

	"visia/core/project"
	"visia/core/results"
)

type certificateFormatter struct{}

func (f *certificateFormatter) Format() Format { return FormatCertificate }

const certificateWidth = 64

func (f *certificateFormatter) Render(w io.Writer, rec *results.Record, opts Options) error {
	r := rec.Result

	line := strings.Repeat("=", certificateWidth)
	fmt.Fprintln(w, line)
	certLine(w, "CERTIFICADO DE IMPACTO SOCIAL")
	certLine(w, CertificateNumber(r.Hash))
	fmt.Fprintln(w, line)
	certLine(w, "")
	certLine(w, r.Project)
	certLine(w, "")
	certLine(w, fmt.Sprintf("Investimento: R$ %s", r.TotalInvestment.StringFixed(2)))
	certLine(w, fmt.Sprintf("Beneficiários diretos: %d", r.DirectBeneficiaries))

	if r.Methodology == project.MethodologyUISV {
		certLine(w, fmt.Sprintf("UISV: %s", r.UISV.String()))
		certLine(w, fmt.Sprintf("Classificação: %s", r.Classification))
		certLine(w, fmt.Sprintf("Pessoas impactadas: %d", r.PeopleImpacted))
		certLine(w, fmt.Sprintf("TCS recomendados: %d", r.TCS))
	} else {
		certLine(w, fmt.Sprintf("Impacto total: %s%%", r.TotalImpact.String()))
		certLine(w, fmt.Sprintf("Classificação: %s", r.Classification))
	}

	certLine(w, "")
	certLine(w, fmt.Sprintf("Metodologia %s | Referência %s", r.Methodology, r.ReferenceVersion))
	if !opts.EmittedAt.IsZero() {
		certLine(w, "Emitido em "+opts.EmittedAt.Format("02/01/2006"))
	}
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Verificação: %s\n", r.Hash)
	return nil
}

// certLine centers content inside the certificate frame.
func certLine(w io.Writer, content string) {
	inner := certificateWidth - 2
	runes := []rune(content)
	if len(runes) > inner {
		content = string(runes[:inner])
		runes = []rune(content)
	}
	padding := inner - len(runes)
	left := padding / 2
	right := padding - left
	fmt.Fprintf(w, "|%s%s%s|\n", strings.Repeat(" ", left), content, strings.Repeat(" ", right))
}

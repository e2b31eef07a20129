package report

import (
	"encoding/json"
	"io"
	"time"

	"visia/core/results"
	"visia/internal/errors"
)

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

// jsonEnvelope wraps the stored record with report-level metadata.
type jsonEnvelope struct {
	*results.Record
	CertificateNumber string     `json:"numero_certificado"`
	EmittedAt         *time.Time `json:"emitido_em,omitempty"`
}

func (f *jsonFormatter) Render(w io.Writer, rec *results.Record, opts Options) error {
	env := jsonEnvelope{
		Record:            rec,
		CertificateNumber: CertificateNumber(rec.Result.Hash),
	}
	if !opts.EmittedAt.IsZero() {
		env.EmittedAt = &opts.EmittedAt
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return errors.Internal("failed to encode report", err)
	}
	return nil
}

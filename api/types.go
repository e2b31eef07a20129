package api

import (
	"time"

	"visia/core/project"
	"visia/core/results"
)

// EvaluateRequest is the POST /evaluate payload: the project input plus
// evaluation options.
type EvaluateRequest struct {
	project.Input

	// ReferenceVersion pins the reference table; empty means latest.
	ReferenceVersion string `json:"versao_referencia,omitempty"`

	// Persist stores the result in the write-once store.
	Persist bool `json:"persistir,omitempty"`
}

// EvaluateResponse wraps an evaluation result with API metadata.
type EvaluateResponse struct {
	Result     any    `json:"resultado"`
	Persisted  bool   `json:"persistido"`
	DurationMs int64  `json:"duracao_ms"`
	APIVersion string `json:"versao_api"`
}

// ProjectListResponse is the GET /projects payload.
type ProjectListResponse struct {
	Projects []*results.Metadata `json:"projetos"`
	Count    int                 `json:"total"`
}

// ReferenceVersionsResponse is the GET /reference/versions payload.
type ReferenceVersionsResponse struct {
	Versions []string `json:"versoes"`
	Latest   string   `json:"mais_recente"`
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"hora"`
}

// VersionResponse is the GET /version payload.
type VersionResponse struct {
	Version          string `json:"versao"`
	ReferenceVersion string `json:"versao_referencia"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Type    string `json:"tipo"`
		Message string `json:"mensagem"`
	} `json:"erro"`
}

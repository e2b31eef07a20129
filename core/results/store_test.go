package results

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visia/core/project"
	"visia/core/reference"
	"visia/core/score"
	"visia/internal/errors"
)

func sampleRecord(t *testing.T) *Record {
	t.Helper()

	in := &project.Input{
		Name:                "Projeto Teste",
		TotalInvestment:     decimal.NewFromInt(200000),
		ProjectType:         project.TypeJobTraining,
		DurationYears:       2,
		DirectBeneficiaries: 80,
		JobsCreated:         20,
	}
	ev := score.NewEvaluator(reference.NewStore())
	result, err := ev.Evaluate(context.Background(), in, "")
	require.NoError(t, err)

	return &Record{
		Result:   result,
		Input:    in,
		StoredAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestStorePutAndGetRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	rec := sampleRecord(t)
	require.NoError(t, store.Put(ctx, rec))

	got, err := store.Get(ctx, rec.Result.Hash)
	require.NoError(t, err)
	assert.Equal(t, rec.Result.Hash, got.Result.Hash)
	assert.Equal(t, rec.Input.Name, got.Input.Name)
	assert.Equal(t, rec.Result.Classification, got.Result.Classification)
}

func TestStorePutIsIdempotentForIdenticalRecords(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	rec := sampleRecord(t)
	require.NoError(t, store.Put(ctx, rec))
	require.NoError(t, store.Put(ctx, rec))

	assert.Len(t, store.List(), 1)
}

func TestStoreRejectsConflictingContentForSameHash(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	rec := sampleRecord(t)
	require.NoError(t, store.Put(ctx, rec))

	conflicting := sampleRecord(t)
	conflicting.StoredAt = conflicting.StoredAt.Add(time.Hour)

	err = store.Put(ctx, conflicting)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStorage))
}

func TestStoreGetByUniquePrefix(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	rec := sampleRecord(t)
	require.NoError(t, store.Put(ctx, rec))

	got, err := store.Get(ctx, rec.Result.Hash[:16])
	require.NoError(t, err)
	assert.Equal(t, rec.Result.Hash, got.Result.Hash)

	_, err = store.Get(ctx, "")
	assert.Error(t, err)
}

func TestStoreGetUnknownHash(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "deadbeef")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestStoreIndexSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	rec := sampleRecord(t)
	require.NoError(t, first.Put(ctx, rec))

	reopened, err := NewStore(dir)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, rec.Result.Hash)
	require.NoError(t, err)
	assert.Equal(t, rec.Result.Hash, got.Result.Hash)
}

func TestStoreDetectsTampering(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	rec := sampleRecord(t)
	require.NoError(t, store.Put(ctx, rec))

	meta := store.List()[0]
	require.NoError(t, os.Chmod(meta.FilePath, 0o644))
	require.NoError(t, os.WriteFile(meta.FilePath, []byte(`{"resultado":{}}`), 0o644))

	_, err = store.Get(ctx, rec.Result.Hash)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStorage))

	corrupted := store.VerifyIntegrity()
	require.Len(t, corrupted, 1)
	assert.Contains(t, corrupted[0], rec.Result.Hash)
}

func TestStoreListOrdersNewestFirst(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	older := sampleRecord(t)
	require.NoError(t, store.Put(ctx, older))

	newerInput := &project.Input{
		Name:                "Projeto Novo",
		TotalInvestment:     decimal.NewFromInt(300000),
		ProjectType:         project.TypeEducation,
		DurationYears:       3,
		DirectBeneficiaries: 150,
		JobsCreated:         10,
	}
	ev := score.NewEvaluator(reference.NewStore())
	result, err := ev.Evaluate(ctx, newerInput, "")
	require.NoError(t, err)
	newer := &Record{
		Result:   result,
		Input:    newerInput,
		StoredAt: older.StoredAt.Add(time.Hour),
	}
	require.NoError(t, store.Put(ctx, newer))

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Projeto Novo", list[0].Project)
	assert.Equal(t, "Projeto Teste", list[1].Project)
}

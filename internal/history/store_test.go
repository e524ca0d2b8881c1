package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textstat/internal/report"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(source string, words int, at time.Time) Record {
	rec := FromReport(report.Report{Source: source})
	rec.Words = words
	rec.CreatedAt = at
	return rec
}

func TestStore_SaveAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, s.Save(ctx, record("a.txt", 1, base)))
	require.NoError(t, s.Save(ctx, record("b.txt", 2, base.Add(time.Second))))
	require.NoError(t, s.Save(ctx, record("c.txt", 3, base.Add(2*time.Second))))

	got, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c.txt", got[0].Source)
	assert.Equal(t, "b.txt", got[1].Source)
	assert.Equal(t, base.Add(2*time.Second).UnixNano(), got[0].CreatedAt.UnixNano())
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := FromReport(report.Build("demo.txt", "Hello hello world.", 5))
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, 3, got[0].Words)
	assert.Equal(t, 2, got[0].Unique)
	assert.Equal(t, 5.0, got[0].AvgLen)
	assert.Equal(t, rec.CreatedAt.UnixNano(), got[0].CreatedAt.UnixNano())
}

func TestStore_BySource(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, s.Save(ctx, record("a.txt", 1, base)))
	require.NoError(t, s.Save(ctx, record("b.txt", 2, base.Add(time.Second))))
	require.NoError(t, s.Save(ctx, record("a.txt", 3, base.Add(2*time.Second))))

	got, err := s.BySource(ctx, "a.txt", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Words) // newest first
	assert.Equal(t, 1, got[1].Words)
}

func TestStore_Prune(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(ctx, record("x.txt", i, base.Add(time.Duration(i)*time.Second))))
	}

	require.NoError(t, s.Prune(ctx, 2))

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].Words)
	assert.Equal(t, 3, got[1].Words)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, record("a.txt", 7, time.Now().UTC())))
	require.NoError(t, s.Close())

	s2, err := NewStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].Words)
}

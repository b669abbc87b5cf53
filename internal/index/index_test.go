package index

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rohits-web03/medrecords/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	patients []models.Patient
	err      error
	calls    int
}

func (f *fakeSource) ListNames(ctx context.Context) ([]models.Patient, error) {
	f.calls++
	return f.patients, f.err
}

func TestLookup_Example(t *testing.T) {
	ix := New(map[string]string{"P1": "Alice", "P2": "Bob"})

	got, err := ix.Lookup("ali")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P1": "Alice"}, got)

	_, err = ix.Lookup("xyz")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestLookup_MatchesIDAndNameCaseInsensitive(t *testing.T) {
	ix := New(map[string]string{"P1": "Alice", "P2": "Bob", "X10": "Pam"})

	got, err := ix.Lookup("p")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P1": "Alice", "P2": "Bob", "X10": "Pam"}, got)

	got, err = ix.Lookup("BO")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P2": "Bob"}, got)

	got, err = ix.Lookup("x1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"X10": "Pam"}, got)
}

func TestLookup_SubstringNotPrefix(t *testing.T) {
	ix := New(map[string]string{"P1": "Alice"})

	got, err := ix.Lookup("lic")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P1": "Alice"}, got)
}

func TestLookup_EmptyQueryIsBadRequest(t *testing.T) {
	ix := New(map[string]string{"P1": "Alice"})

	for _, q := range []string{"", "   ", "\t\n"} {
		got, err := ix.Lookup(q)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, apperr.ErrBadRequest), "query %q", q)
	}
}

func TestLookup_MatchesWhitespaceAsTyped(t *testing.T) {
	ix := New(map[string]string{"P1": "Ann Smith", "P2": "Smithers"})

	got, err := ix.Lookup(" SMITH")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P1": "Ann Smith"}, got)

	got, err = ix.Lookup("smith")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P1": "Ann Smith", "P2": "Smithers"}, got)

	_, err = ix.Lookup("  ann ")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestLookup_ExactSetProperty(t *testing.T) {
	names := map[string]string{}
	for i := 0; i < 50; i++ {
		names[fmt.Sprintf("ID%03d", i)] = fmt.Sprintf("Patient %c%d", 'A'+rune(i%26), i)
	}
	ix := New(names)

	for _, q := range []string{"id0", "1", "patient a", "z", "04", "nobody"} {
		want := map[string]string{}
		lq := strings.ToLower(q)
		for id, name := range names {
			if strings.Contains(strings.ToLower(id), lq) || strings.Contains(strings.ToLower(name), lq) {
				want[id] = name
			}
		}

		got, err := ix.Lookup(q)
		if len(want) == 0 {
			assert.True(t, errors.Is(err, apperr.ErrNotFound), "query %q", q)
			continue
		}
		require.NoError(t, err, "query %q", q)
		assert.Equal(t, want, got, "query %q", q)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	names := map[string]string{"P1": "Alice"}
	ix := New(names)
	names["P2"] = "Bob"

	assert.Equal(t, 1, ix.Len())
	_, err := ix.Lookup("bob")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestBuild_OneEntryPerPatient(t *testing.T) {
	src := &fakeSource{patients: []models.Patient{
		{PatientID: "P1", PatientName: "Alice"},
		{PatientID: "P2", PatientName: "Bob"},
		{PatientID: "P3", PatientName: "Carol"},
	}}

	ix, err := Build(context.Background(), src, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, 1, src.calls)

	got, err := ix.Lookup("carol")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P3": "Carol"}, got)
}

func TestBuild_SourceFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("dial tcp 127.0.0.1:5432: connection refused")}

	ix, err := Build(context.Background(), src, zerolog.Nop())
	assert.Nil(t, ix)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUpstreamUnavailable))
}

func TestBuild_SnapshotIgnoresLaterRows(t *testing.T) {
	src := &fakeSource{patients: []models.Patient{{PatientID: "P1", PatientName: "Alice"}}}
	ix, err := Build(context.Background(), src, zerolog.Nop())
	require.NoError(t, err)

	src.patients = append(src.patients, models.Patient{PatientID: "P2", PatientName: "Bob"})

	_, err = ix.Lookup("bob")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, 1, src.calls)
}

func TestLookup_ConcurrentReaders(t *testing.T) {
	ix := New(map[string]string{"P1": "Alice", "P2": "Bob"})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ix.Lookup("a")
			assert.NoError(t, err)
			assert.Equal(t, map[string]string{"P1": "Alice"}, got)
		}()
	}
	wg.Wait()
}

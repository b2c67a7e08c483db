package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"mapping-generator/internal/errors"
	"mapping-generator/internal/mapping"
)

// stubGenerator renders "<name>:<mapping>" for classes, nothing for enums.
type stubGenerator struct {
	name   string
	fail   bool
	panics bool
}

func (g stubGenerator) Name() string { return g.name }

func (g stubGenerator) FileExtension(*mapping.Mapping) string { return ".txt" }

func (g stubGenerator) Generate(_ *Context, m *mapping.Mapping) (string, error) {
	switch {
	case g.panics:
		panic("boom")
	case g.fail:
		return "", errors.New("cannot render")
	case m.IsEnum:
		return "", nil
	}

	return g.name + ":" + m.Name, nil
}

type namedStub struct{ stubGenerator }

func (namedStub) ArtifactName(m *mapping.Mapping) string { return m.Name + ".custom" }

func testSet() *mapping.Set {
	return mapping.NewSet(
		&mapping.Mapping{Name: "Order", FullName: "Shop.Order", Assembly: "Shop"},
		&mapping.Mapping{Name: "Status", FullName: "Shop.Status", Assembly: "Shop", IsEnum: true, EnumMembers: []string{"Open"}},
	)
}

func TestRunner_WritesArtifacts(t *testing.T) {
	sink := NewMemorySink()
	r := NewRunner(RunnerConfig{OutputDir: "out"}, []Generator{stubGenerator{name: "a"}, stubGenerator{name: "b"}}, sink, nil)

	report, err := r.Run(context.Background(), NewContext(Naming{}, testSet()))
	require.NoError(t, err)
	require.NoError(t, report.Err())

	assert.Equal(t, []string{
		filepath.Join("out", "Order", "a.txt"),
		filepath.Join("out", "Order", "b.txt"),
	}, sink.Paths())

	content, ok := sink.Get(filepath.Join("out", "Order", "b.txt"))
	require.True(t, ok)
	assert.Equal(t, "b:Order", string(content))

	// Both generators skip the enum.
	assert.Equal(t, 2, report.Skipped)
	assert.Empty(t, report.Faults)
}

func TestRunner_IsolatesFaults(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	sink := NewMemorySink()

	gens := []Generator{
		stubGenerator{name: "panics", panics: true},
		stubGenerator{name: "fails", fail: true},
		stubGenerator{name: "works"},
	}

	report, err := NewRunner(RunnerConfig{OutputDir: "out"}, gens, sink, zap.New(core).Sugar()).
		Run(context.Background(), NewContext(Naming{}, testSet()))
	require.NoError(t, err)

	require.Len(t, report.Faults, 4)

	for _, f := range report.Faults {
		assert.True(t, errors.Is(f.Err, errors.ErrGeneration), f.String())
	}

	assert.Contains(t, report.Faults[0].Err.Error(), "panicked")
	assert.Equal(t, []string{filepath.Join("out", "Order", "works.txt")}, sink.Paths())
	assert.Equal(t, 4, logs.FilterMessage("generator failed").Len())

	// Generation faults do not fail the run.
	assert.NoError(t, report.Err())
}

func TestRunner_ArtifactNamer(t *testing.T) {
	sink := NewMemorySink()

	_, err := NewRunner(RunnerConfig{OutputDir: "out"}, []Generator{namedStub{stubGenerator{name: "tmpl"}}}, sink, nil).
		Run(context.Background(), NewContext(Naming{}, testSet()))
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join("out", "Order", "Order.custom")}, sink.Paths())
}

type unformattedStub struct{ stubGenerator }

func (unformattedStub) Generate(*Context, *mapping.Mapping) (string, error) {
	return "", Unformatted(errors.New("expected ';'"), []byte("package x\nfunc {"))
}

func TestRunner_UnformattedSidecar(t *testing.T) {
	sink := NewMemorySink()
	set := mapping.NewSet(&mapping.Mapping{Name: "Order"})

	report, err := NewRunner(RunnerConfig{OutputDir: "out"}, []Generator{unformattedStub{stubGenerator{name: "golang.struct"}}}, sink, nil).
		Run(context.Background(), NewContext(Naming{}, set))
	require.NoError(t, err)
	require.Len(t, report.Faults, 1)

	content, ok := sink.Get(filepath.Join("out", "Order", "golang.struct.unformatted.txt"))
	require.True(t, ok)
	assert.Equal(t, "package x\nfunc {", string(content))
}

func TestArtifactPath(t *testing.T) {
	set := mapping.NewSet(
		&mapping.Mapping{Name: "Order", FullName: "Shop.Order", Assembly: "Shop"},
		&mapping.Mapping{Name: "Order", FullName: "example.com/warehouse.Order", Assembly: "example.com/warehouse"},
		&mapping.Mapping{Name: "Line", Assembly: "Shop"},
	)

	all := set.All()

	assert.Equal(t, filepath.Join("o", "Shop.Order", "x.cs"), ArtifactPath("o", set, all[0], "x.cs"))
	assert.Equal(t, filepath.Join("o", "example.com.warehouse.Order", "x.cs"), ArtifactPath("o", set, all[1], "x.cs"))
	assert.Equal(t, filepath.Join("o", "Line", "x.cs"), ArtifactPath("o", set, all[2], "x.cs"))
}

func TestRunner_FileSink(t *testing.T) {
	dir := t.TempDir()

	report, err := NewRunner(RunnerConfig{OutputDir: dir}, []Generator{stubGenerator{name: "a"}}, nil, nil).
		Run(context.Background(), NewContext(Naming{}, testSet()))
	require.NoError(t, err)
	require.NoError(t, report.Err())

	data, err := os.ReadFile(filepath.Join(dir, "Order", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a:Order", string(data))

	// Re-running over existing directories is fine.
	report, err = NewRunner(RunnerConfig{OutputDir: dir}, []Generator{stubGenerator{name: "a"}}, nil, nil).
		Run(context.Background(), NewContext(Naming{}, testSet()))
	require.NoError(t, err)
	assert.NoError(t, report.Err())
}

type failingSink struct{ bad string }

func (s failingSink) Write(_ context.Context, a Artifact) error {
	if filepath.Base(a.Path) == s.bad {
		return errors.New("disk full")
	}

	return nil
}

func TestWriteArtifacts_ReportsFailuresPerArtifact(t *testing.T) {
	artifacts := []Artifact{
		{Path: "o/A/a.txt", Content: []byte("a")},
		{Path: "o/B/b.txt", Content: []byte("b")},
		{Path: "o/C/c.txt", Content: []byte("c")},
	}

	failed := WriteArtifacts(context.Background(), failingSink{bad: "b.txt"}, artifacts, 2, zap.NewNop().Sugar())
	require.Len(t, failed, 1)
	assert.Equal(t, "o/B/b.txt", failed[0].Path)
	assert.True(t, errors.Is(failed[0].Err, errors.ErrWrite))

	report := &Report{WriteErrors: failed}
	assert.True(t, errors.Is(report.Err(), errors.ErrWrite))
}

func TestFileSink_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "file.cs")

	require.NoError(t, FileSink{}.Write(context.Background(), Artifact{Path: path, Content: []byte("one")}))
	require.NoError(t, FileSink{}.Write(context.Background(), Artifact{Path: path, Content: []byte("two")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}

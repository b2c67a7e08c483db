package gen

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"mapping-generator/internal/errors"
	"mapping-generator/internal/logger"
	"mapping-generator/internal/mapping"
)

// RunnerConfig holds configuration for a generation run.
type RunnerConfig struct {
	// OutputDir is the directory artifacts are written under.
	OutputDir string
	// Concurrency bounds parallel artifact writes. Zero means
	// DefaultWriteConcurrency.
	Concurrency int
}

// Runner applies generators to every mapping of a set.
type Runner struct {
	config     RunnerConfig
	generators []Generator
	sink       Sink
	logger     *zap.SugaredLogger
}

// NewRunner creates a Runner. A nil sink writes to the filesystem.
func NewRunner(config RunnerConfig, generators []Generator, sink Sink, log *zap.SugaredLogger) *Runner {
	if sink == nil {
		sink = FileSink{}
	}

	return &Runner{
		config:     config,
		generators: generators,
		sink:       sink,
		logger:     logger.OrNop(log),
	}
}

// Fault is a generator failure for one mapping.
type Fault struct {
	Mapping   string
	Generator string
	Err       error
}

// Report summarizes a run.
type Report struct {
	Artifacts   []Artifact
	Faults      []Fault
	WriteErrors []WriteError
	// Skipped counts pairs the generator declared not applicable.
	Skipped int
}

// Err returns an ErrWrite error when any artifact failed to be written.
// Generation faults are reported but do not fail the run.
func (r *Report) Err() error {
	if len(r.WriteErrors) == 0 {
		return nil
	}

	err := errors.Newf("%d artifact(s) could not be written", len(r.WriteErrors))
	for _, we := range r.WriteErrors {
		err = errors.WithDetail(err, we.Error())
	}

	return errors.Mark(err, errors.ErrWrite)
}

// Run renders every (mapping, generator) pair of gctx.Mappings and writes the
// artifacts. It only fails when ctx is done; per-pair and per-artifact
// failures end up in the report.
func (r *Runner) Run(ctx context.Context, gctx *Context) (*Report, error) {
	report := r.Render(gctx)

	if err := ctx.Err(); err != nil {
		return report, err
	}

	report.WriteErrors = WriteArtifacts(ctx, r.sink, report.Artifacts, r.config.Concurrency, r.logger)

	r.logger.Infow("generation finished",
		"artifacts", len(report.Artifacts),
		"faults", len(report.Faults),
		"write_errors", len(report.WriteErrors),
	)

	return report, ctx.Err()
}

// Render generates all artifacts in memory. Mappings are visited in
// dependency order, generators in configuration order.
func (r *Runner) Render(gctx *Context) *Report {
	report := &Report{}

	for _, m := range dependencyOrder(gctx.Mappings) {
		for _, g := range r.generators {
			a := Artifact{
				Path:      ArtifactPath(r.config.OutputDir, gctx.Mappings, m, artifactName(g, m)),
				Mapping:   m.Name,
				Generator: g.Name(),
			}

			out, err := generate(g, gctx, m)
			if err != nil {
				r.logger.Errorw("generator failed", "mapping", m.Name, "generator", g.Name(), "error", err)
				report.Faults = append(report.Faults, Fault{Mapping: m.Name, Generator: g.Name(), Err: err})

				if side, ok := unformattedArtifact(a, err); ok {
					report.Artifacts = append(report.Artifacts, side)
				}

				continue
			}

			if out == "" {
				report.Skipped++
				continue
			}

			a.Content = []byte(out)
			report.Artifacts = append(report.Artifacts, a)

			r.logger.Debugw("artifact rendered", "mapping", m.Name, "generator", g.Name(), "path", a.Path)
		}
	}

	return report
}

// generate calls g, converting a panic into an error.
func generate(g Generator, gctx *Context, m *mapping.Mapping) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = ""
			err = errors.Mark(errors.Newf("generator %s panicked: %v", g.Name(), rec), errors.ErrGeneration)
		}
	}()

	out, err = g.Generate(gctx, m)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "generator %s", g.Name()), errors.ErrGeneration)
	}

	return out, nil
}

func artifactName(g Generator, m *mapping.Mapping) string {
	if n, ok := g.(ArtifactNamer); ok {
		return n.ArtifactName(m)
	}

	return g.Name() + g.FileExtension(m)
}

// ArtifactPath returns where the artifact fileName of m is written:
// <outputDir>/<Name>/<fileName>, using the full name as directory when
// another mapping of set shares m's Name.
func ArtifactPath(outputDir string, set *mapping.Set, m *mapping.Mapping, fileName string) string {
	dir := m.Name

	if set != nil && set.Shared(m.Name) {
		switch {
		case m.FullName != "" && m.FullName != m.Name:
			dir = m.FullName
		case m.Assembly != "":
			dir = m.Assembly + "." + m.Name
		}
	}

	return filepath.Join(outputDir, safeDirName(dir), fileName)
}

// safeDirName keeps qualified names such as "example.com/shop.Order" on a
// single path level.
func safeDirName(name string) string {
	return strings.NewReplacer("/", ".", "\\", ".", ":", ".").Replace(name)
}

// String implements fmt.Stringer for log output.
func (f Fault) String() string {
	return fmt.Sprintf("%s/%s: %v", f.Mapping, f.Generator, f.Err)
}

package gen

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mapping-generator/internal/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultWriteConcurrency bounds the number of artifacts written at once.
const DefaultWriteConcurrency = 8

// Artifact is one generated file.
type Artifact struct {
	// Path is the destination, including the output directory.
	Path string
	// Content is the generated text.
	Content []byte
	// Mapping and Generator identify the producing pair.
	Mapping   string
	Generator string
}

// WriteError reports an artifact that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e WriteError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e WriteError) Unwrap() error {
	return e.Err
}

// Sink receives artifacts. Implementations must be safe for concurrent use.
type Sink interface {
	Write(ctx context.Context, a Artifact) error
}

// FileSink writes artifacts to the filesystem, creating directories as
// needed. Each file is written to a temporary sibling and renamed into place.
type FileSink struct{}

// Write implements Sink.
func (FileSink) Write(_ context.Context, a Artifact) error {
	dir := filepath.Dir(a.Path)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, "creating output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(a.Path)+".*")
	if err != nil {
		return errors.Wrapf(err, "writing file %s", a.Path)
	}

	if _, err := tmp.Write(a.Content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "writing file %s", a.Path)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "writing file %s", a.Path)
	}

	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "writing file %s", a.Path)
	}

	if err := os.Rename(tmp.Name(), a.Path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "writing file %s", a.Path)
	}

	return nil
}

// MemorySink keeps artifacts in memory. It backs --dry-run and tests.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// Write implements Sink.
func (s *MemorySink) Write(_ context.Context, a Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[a.Path] = append([]byte(nil), a.Content...)

	return nil
}

// Get returns the content written to path.
func (s *MemorySink) Get(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.files[path]

	return b, ok
}

// Paths returns every written path, sorted.
func (s *MemorySink) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}

// WriteArtifacts writes artifacts through sink with at most limit writes in
// flight. A failed write is logged and reported; it does not stop the others.
func WriteArtifacts(ctx context.Context, sink Sink, artifacts []Artifact, limit int, log *zap.SugaredLogger) []WriteError {
	if limit <= 0 {
		limit = DefaultWriteConcurrency
	}

	var (
		mu     sync.Mutex
		failed []WriteError
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, a := range artifacts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if err := sink.Write(gctx, a); err != nil {
				log.Errorw("artifact write failed", "path", a.Path, "mapping", a.Mapping, "generator", a.Generator, "error", err)

				mu.Lock()
				failed = append(failed, WriteError{Path: a.Path, Err: errors.Mark(err, errors.ErrWrite)})
				mu.Unlock()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		mu.Lock()
		failed = append(failed, WriteError{Path: "", Err: errors.Mark(err, errors.ErrWrite)})
		mu.Unlock()
	}

	sort.Slice(failed, func(i, j int) bool { return failed[i].Path < failed[j].Path })

	return failed
}

package gen

import (
	"path/filepath"
	"strings"

	"mapping-generator/internal/errors"
)

// UnformattedError is returned by generators whose output failed to
// format. Source keeps the raw output so the runner can write it next to
// the intended artifact.
type UnformattedError struct {
	Source []byte
	Err    error
}

func (e *UnformattedError) Error() string {
	return "formatting generated source: " + e.Err.Error()
}

func (e *UnformattedError) Unwrap() error {
	return e.Err
}

// Unformatted wraps a formatting failure together with the raw source.
func Unformatted(err error, source []byte) error {
	return &UnformattedError{Source: source, Err: err}
}

// unformattedArtifact returns the sidecar artifact for a formatting failure
// of a, if err carries the raw source. The sidecar keeps the extension so
// editors can syntax highlight it: order.go -> order.unformatted.go.
func unformattedArtifact(a Artifact, err error) (Artifact, bool) {
	var ue *UnformattedError
	if !errors.As(err, &ue) || len(ue.Source) == 0 {
		return Artifact{}, false
	}

	ext := filepath.Ext(a.Path)
	a.Path = strings.TrimSuffix(a.Path, ext) + ".unformatted" + ext
	a.Content = ue.Source

	return a, true
}

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"config", Wrap(ErrConfig, "missing mapping file"), true},
		{"unknown root", Wrapf(ErrUnknownRoot, "%q", "Ordr"), true},
		{"ambiguous root", Mark(New("Order declared twice"), ErrAmbiguousRoot), true},
		{"mapping file", Wrap(ErrMappingFile, "parse"), false},
		{"plain", New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConfigError(tt.err))
		})
	}
}

func TestHintsSurviveWrapping(t *testing.T) {
	err := WithHint(Wrap(ErrConfig, "no roots"), "pass --types")
	err = Wrap(err, "discover")

	assert.True(t, Is(err, ErrConfig))
	assert.Equal(t, []string{"pass --types"}, GetAllHints(err))
}

package options

import (
	"errors"
	"testing"

	"github.com/erraggy/specdiff/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantErr string
	}{
		{"exactly one", []bool{false, true, false}, ""},
		{"none", []bool{false, false}, "must specify an input (use WithX)"},
		{"no sources at all", nil, "must specify an input (use WithX)"},
		{"two", []bool{true, true}, "must specify exactly one input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("source", "use WithX", tt.sources...)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "source")
		})
	}
}

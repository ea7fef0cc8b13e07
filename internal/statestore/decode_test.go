package statestore

import (
	"testing"

	"github.com/mj1618/tasktrees/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_AllFields(t *testing.T) {
	got, err := Decode([]byte(`{"width":1440,"height":900,"x":-1920,"y":25,"is_maximized":true}`))
	require.NoError(t, err)
	assert.Equal(t, model.WindowState{Width: 1440, Height: 900, X: -1920, Y: 25, IsMaximized: true}, got)
}

func TestDecode_Malformed(t *testing.T) {
	for _, input := range []string{
		"",
		"{",
		`{"width":1024,`,
		"not json",
		`{"width":1024}garbage`,
		"{\"title\":\"\xff\xfe\",\"width\":1300}",
	} {
		got, err := Decode([]byte(input))
		assert.ErrorIs(t, err, ErrMalformed, "input %q", input)
		assert.Equal(t, model.DefaultWindowState(), got, "input %q", input)
	}
}

func TestDecode_PerFieldFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.WindowState
	}{
		{
			name:  "only width valid",
			input: `{"width":1280,"height":"tall","x":true,"y":null}`,
			want:  model.WindowState{Width: 1280, Height: 600, X: 0, Y: 0},
		},
		{
			name:  "only width present",
			input: `{"width":1280}`,
			want:  model.WindowState{Width: 1280, Height: 600, X: 0, Y: 0},
		},
		{
			name:  "negative width",
			input: `{"width":-5,"height":700}`,
			want:  model.WindowState{Width: 800, Height: 700},
		},
		{
			name:  "width above uint32",
			input: `{"width":4294967296,"height":4294967295}`,
			want:  model.WindowState{Width: 800, Height: 4294967295},
		},
		{
			name:  "width above int64",
			input: `{"width":99999999999999999999999}`,
			want:  model.DefaultWindowState(),
		},
		{
			name:  "x beyond int32",
			input: `{"x":2147483648,"y":-2147483648}`,
			want:  model.WindowState{Width: 800, Height: 600, X: 0, Y: -2147483648},
		},
		{
			name:  "fractional numbers",
			input: `{"width":1024.5,"x":1e3}`,
			want:  model.DefaultWindowState(),
		},
		{
			name:  "maximized as string",
			input: `{"is_maximized":"true","width":1000}`,
			want:  model.WindowState{Width: 1000, Height: 600},
		},
		{
			name:  "maximized only",
			input: `{"is_maximized":true}`,
			want:  model.WindowState{Width: 800, Height: 600, IsMaximized: true},
		},
		{
			name:  "unknown keys ignored",
			input: `{"version":3,"monitor":{"width":1},"width":1100,"height":650}`,
			want:  model.WindowState{Width: 1100, Height: 650},
		},
		{
			name:  "nested keys not promoted",
			input: `{"window":{"width":1,"height":2}}`,
			want:  model.DefaultWindowState(),
		},
		{
			name:  "repeated key keeps last value",
			input: `{"is_maximized":true,"width":1000,"is_maximized":false,"width":1200}`,
			want:  model.WindowState{Width: 1200, Height: 600},
		},
		{
			name:  "array document",
			input: `[{"width":1}]`,
			want:  model.DefaultWindowState(),
		},
		{
			name:  "number document",
			input: `42`,
			want:  model.DefaultWindowState(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

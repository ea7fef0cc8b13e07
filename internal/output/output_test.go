package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mj1618/tasktrees/internal/model"
	"gopkg.in/yaml.v3"
)

// capture redirects Writer for the duration of fn.
func capture(t *testing.T, fn func() error) string {
	t.Helper()
	var buf bytes.Buffer
	old := Writer
	Writer = &buf
	defer func() { Writer = old }()
	if err := fn(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	state := model.WindowState{Width: 1024, Height: 768, X: -10, Y: 20, IsMaximized: true}
	out := capture(t, func() error { return PrintYAML(state) })

	if strings.Count(out, "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}
	var decoded model.WindowState
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded != state {
		t.Errorf("got %+v, want %+v", decoded, state)
	}
	if !strings.Contains(out, "is_maximized: true") {
		t.Errorf("expected is_maximized key, got:\n%s", out)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	state := model.DefaultWindowState()
	out := capture(t, func() error { return PrintJSON(state) })

	if strings.Count(out, "\n") > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}
	var decoded model.WindowState
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded != state {
		t.Errorf("got %+v, want %+v", decoded, state)
	}
}

func TestPrint_UsesOutputFormat(t *testing.T) {
	oldFormat, oldPretty := OutputFormat, PrettyOutput
	defer func() { OutputFormat, PrettyOutput = oldFormat, oldPretty }()

	OutputFormat = FormatJSON
	PrettyOutput = true
	out := capture(t, func() error { return Print(model.DefaultWindowState()) })
	if !strings.HasPrefix(out, "{\n") {
		t.Errorf("expected pretty JSON, got:\n%s", out)
	}

	OutputFormat = FormatYAML
	out = capture(t, func() error { return Print(model.DefaultWindowState()) })
	if !strings.HasPrefix(out, "width: 800") {
		t.Errorf("expected YAML, got:\n%s", out)
	}

	OutputFormat = "xml"
	var buf bytes.Buffer
	oldWriter := Writer
	Writer = &buf
	defer func() { Writer = oldWriter }()
	if err := Print(model.DefaultWindowState()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatYAML},
		{"yaml", FormatYAML},
		{"JSON", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("ParseFormat(toml) should fail")
	}
}

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/automac-mcp/automac/internal/model"
)

func sample() model.AppsResult {
	return model.AppsResult{
		Result: model.OK("Found 2 applications"),
		Apps:   []string{"Finder", "Safari <beta>"},
	}
}

func TestFprintYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, FormatYAML, false, sample()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if strings.Count(out, "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}
	if !strings.HasPrefix(out, "success: true\n") {
		t.Errorf("embedded result should be flattened, got:\n%s", out)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["message"] != "Found 2 applications" {
		t.Errorf("message: got %v", decoded["message"])
	}
}

func TestFprintJSON_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, FormatJSON, false, sample()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if strings.Count(out, "\n") > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}
	// HTML escaping is disabled.
	if !strings.Contains(out, "Safari <beta>") {
		t.Errorf("expected unescaped app name, got:\n%s", out)
	}

	var decoded model.AppsResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !decoded.Success || len(decoded.Apps) != 2 {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestFprintJSON_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, FormatJSON, true, model.OK("done")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  \"message\": \"done\"") {
		t.Errorf("expected indented output, got:\n%s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("%s: unexpected error %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
	if err := Fprint(&bytes.Buffer{}, Format("xml"), false, nil); err == nil {
		t.Error("expected error for unknown format")
	}
}

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

type testTable struct {
	items []testItem
}

func (t testTable) TableHeader() []string { return []string{"NAME", "QUANTITY"} }

func (t testTable) TableRows() [][]string {
	rows := make([][]string, 0, len(t.items))
	for _, it := range t.items {
		rows = append(rows, []string{it.Name, strings.Repeat("x", it.Quantity)})
	}
	return rows
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	data := []testItem{{Name: "Flour", Quantity: 2}, {Name: "Egg", Quantity: 1}}
	if err := w.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got []testItem
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 || got[0] != data[0] {
		t.Errorf("unexpected data: %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented JSON")
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	if err := w.Serialize(context.Background(), testItem{Name: "Egg", Quantity: 3}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got testItem
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if got.Name != "Egg" || got.Quantity != 3 {
		t.Errorf("unexpected data: %+v", got)
	}
}

func TestWriter_SerializeTable_Flattened(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	type nested struct {
		Name  string
		Items []testItem
		Tags  map[string]string
	}
	data := nested{
		Name:  "Pancake",
		Items: []testItem{{Name: "Flour", Quantity: 2}},
		Tags:  map[string]string{"meal": "breakfast"},
	}
	if err := w.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "Name", "Pancake", "Items.[0].Name", "Flour", "Tags.meal", "breakfast"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_SerializeTable_Renderer(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	data := testTable{items: []testItem{{Name: "Flour", Quantity: 2}, {Name: "Egg", Quantity: 1}}}
	if err := w.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, underline and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "QUANTITY") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("unexpected underline: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Flour") || !strings.HasPrefix(lines[3], "Egg") {
		t.Errorf("rows out of order: %q %q", lines[2], lines[3])
	}
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	if err := w.Serialize(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_SerializeTable_NilPointer(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	type withPtr struct {
		Name *string
	}
	if err := w.Serialize(context.Background(), withPtr{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<nil>") {
		t.Errorf("expected nil field rendered, got %q", buf.String())
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := w.Serialize(ctx, testItem{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written after cancellation")
	}
}

func TestNewWriter_Defaults(t *testing.T) {
	w := NewWriter(Format("xml"), nil)
	if w.format != FormatJSON {
		t.Errorf("unknown format should fall back to JSON, got %s", w.format)
	}
	if w.output != os.Stdout {
		t.Error("nil output should default to stdout")
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close on stdout writer: %v", err)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		w := NewFileWriterOrStdout(FormatJSON, "  ")
		if w.output != os.Stdout {
			t.Error("expected stdout for empty path")
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "summary.yaml")
		w := NewFileWriterOrStdout(FormatYAML, path)
		if err := w.Serialize(context.Background(), testItem{Name: "Flour", Quantity: 2}); err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Errorf("second Close should be a no-op, got %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if !strings.Contains(string(content), "name: Flour") {
			t.Errorf("unexpected file content: %s", content)
		}
	})

	t.Run("uncreatable path", func(t *testing.T) {
		w := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
		if w.output != os.Stdout {
			t.Error("expected stdout fallback")
		}
	})
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format(""), true},
		{Format("JSON"), true},
		{Format("xml"), true},
	}
	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestSupportedFormats(t *testing.T) {
	got := SupportedFormats()
	if len(got) != 3 {
		t.Fatalf("expected 3 formats, got %v", got)
	}
	for _, f := range got {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reports unknown", f)
		}
	}
}

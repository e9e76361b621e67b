package snapshot

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/formbind/pkg/errors"
)

type captureHandler struct {
	errs []*errors.FormError
}

func (h *captureHandler) HandleError(err *errors.FormError) {
	h.errs = append(h.errs, err)
}

func TestParseYAML(t *testing.T) {
	values, err := ParseYAML([]byte("email: a@b.c\nage: 30\nsubscribed: true\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	want := map[string]any{"email": "a@b.c", "age": 30, "subscribed": true}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAMLEmptyDocument(t *testing.T) {
	values, err := ParseYAML(nil)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if values == nil || len(values) != 0 {
		t.Errorf("empty document should yield an empty map, got %v", values)
	}
}

func TestParseYAMLRejectsMalformedInput(t *testing.T) {
	capture := &captureHandler{}
	errors.SetHandler(capture)
	defer errors.SetHandler(nil)

	_, err := ParseYAML([]byte("{invalid"))
	if err == nil {
		t.Fatal("malformed YAML should fail")
	}

	var formErr *errors.FormError
	if !stderrors.As(err, &formErr) || formErr.Kind != errors.KindSnapshot {
		t.Errorf("expected FormError with KindSnapshot, got %v", err)
	}
	if len(capture.errs) != 1 || capture.errs[0].Op != "snapshot.ParseYAML" {
		t.Errorf("failure should be reported to the global handler, got %v", capture.errs)
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	capture := &captureHandler{}
	errors.SetHandler(capture)
	defer errors.SetHandler(nil)

	values, err := LoadYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if len(values) != 0 {
		t.Errorf("missing file should yield an empty map, got %v", values)
	}
	if len(capture.errs) != 0 {
		t.Errorf("missing file must not be reported, got %v", capture.errs)
	}
}

func TestLoadYAMLReadsFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	if err := os.WriteFile(path, []byte("city: Oslo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	values, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}
	if values["city"] != "Oslo" {
		t.Errorf("values = %v", values)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	committed := map[string]any{"email": "a@b.c", "age": float64(25)}

	data, err := EncodeJSON(committed)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	if diff := cmp.Diff(committed, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSONNullDocument(t *testing.T) {
	values, err := DecodeJSON([]byte("null"))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if values == nil {
		t.Error("null document should yield an empty map, not nil")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFile(path, map[string]any{"age": 25}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	values, err := DecodeJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if values["age"] != float64(25) {
		t.Errorf("values = %v", values)
	}
}

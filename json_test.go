package typebuilder_test

import (
	"reflect"
	"testing"

	typebuilder "github.com/noony-serverless/typebuilder"
)

func TestMergeJSON_SeedsConfiguredFields(t *testing.T) {
	f := typebuilder.MustFactory([]string{"id", "name"})
	acc := f.Acquire()
	defer acc.Release()

	if err := acc.MergeJSON([]byte(`{"id": 1, "name": "ada"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := acc.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := out.(map[string]any)
	if m["name"] != "ada" {
		t.Fatalf("result = %v", m)
	}
}

func TestMergeJSON_StrictRejectsUnknownKeys(t *testing.T) {
	f := typebuilder.MustFactory([]string{"id"})
	acc := f.Acquire()
	defer acc.Release()

	err := acc.MergeJSON([]byte(`{"id": 1, "zz": 2, "aa": 3}`))
	iss, ok := typebuilder.AsIssues(err)
	if !ok {
		t.Fatalf("err = %v, want Issues", err)
	}
	var paths []string
	for _, it := range iss {
		if it.Code != typebuilder.CodeUnknownKey {
			t.Fatalf("code = %q, want unknown_key", it.Code)
		}
		paths = append(paths, it.Path)
	}
	if !reflect.DeepEqual(paths, []string{"/aa", "/zz"}) {
		t.Fatalf("paths = %v, want deterministic [/aa /zz]", paths)
	}
	// Known keys are applied even when strict mode reports unknowns.
	if v, ok := acc.Value("id"); !ok || v != float64(1) {
		t.Fatalf("id = %v (%v), want 1 applied", v, ok)
	}
}

func TestMergeJSON_StripDropsUnknownKeys(t *testing.T) {
	f := typebuilder.MustFactory([]string{"id"}, typebuilder.FactoryOpt{Unknown: typebuilder.UnknownStrip})
	acc := f.Acquire()
	defer acc.Release()

	if err := acc.MergeJSON([]byte(`{"id": 1, "zz": 2}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _ := acc.Build()
	if _, ok := out.(map[string]any)["zz"]; ok {
		t.Fatalf("result = %v, zz must be stripped", out)
	}
}

func TestMergeJSON_MalformedInput(t *testing.T) {
	f := typebuilder.MustFactory([]string{"id"})
	acc := f.Acquire()
	defer acc.Release()

	err := acc.MergeJSON([]byte(`{"id":`))
	iss, ok := typebuilder.AsIssues(err)
	if !ok || iss[0].Code != typebuilder.CodeParseError {
		t.Fatalf("err = %v, want a parse_error issue", err)
	}
}

package util

import "testing"

func TestErrorLoggerAccumulates(t *testing.T) {
	var e ErrorLogger
	e.Push("aircraft[0]")
	e.Push("glide")
	e.ErrorString("distance must be positive, got %v", -1.0)
	e.Pop()
	e.Pop()

	if !e.HaveErrors() {
		t.Fatal("expected errors after ErrorString")
	}
	if err := e.Err(); err == nil {
		t.Fatal("expected non-nil error from Err()")
	}
}

func TestUnmarshalJSONBytesSyntaxError(t *testing.T) {
	type record struct {
		Name string `json:"name"`
	}
	var r record
	err := UnmarshalJSONBytes([]byte(`{"name": }`), &r)
	if err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestUnmarshalJSONBytesSuccess(t *testing.T) {
	type record struct {
		Name string `json:"name"`
	}
	var r record
	if err := UnmarshalJSONBytes([]byte(`{"name": "foo"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "foo" {
		t.Errorf("Name = %q, want foo", r.Name)
	}
}

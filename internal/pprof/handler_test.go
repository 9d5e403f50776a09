package pprof

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestVars(t *testing.T) {
	PublishFunc("shopvibe_test_visitors", func() any { return 2 })
	PublishFunc("shopvibe_test_visitors", func() any { return 5 })

	handler := NewHandler("/debug")

	req := httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("expected status '%v', got '%v'", e, g)
	}

	var vars map[string]any
	if err := json.Unmarshal(res.Body.Bytes(), &vars); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := float64(2), vars["shopvibe_test_visitors"]; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}
}

func TestIndex(t *testing.T) {
	handler := NewHandler("/debug")

	req := httptest.NewRequest(http.MethodGet, "/debug/", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("expected status '%v', got '%v'", e, g)
	}
}

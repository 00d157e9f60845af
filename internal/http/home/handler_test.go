package home

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/janisto/cicd-demo-app/internal/platform/logging"
	appmiddleware "github.com/janisto/cicd-demo-app/internal/platform/middleware"
	"github.com/janisto/cicd-demo-app/internal/platform/respond"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		applog.RequestLogger(""),
		respond.Recoverer(),
	)
	cfg := huma.DefaultConfig("HomeTest", "test")
	cfg.CreateHooks = nil
	api := humachi.New(router, cfg)
	Register(api)
	return router
}

func TestGetJSON(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "home-get-json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(body) != 1 {
		t.Errorf("expected only the message field, got %v", body)
	}
	if body["message"] != "Hello from CI/CD Demo App!" {
		t.Errorf("expected 'Hello from CI/CD Demo App!', got %v", body["message"])
	}
}

func TestGetCBOR(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Errorf("expected application/cbor, got %s", ct)
	}

	var data Data
	if err := cbor.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("cbor unmarshal: %v", err)
	}
	if data.Message != Greeting {
		t.Errorf("expected %q, got %q", Greeting, data.Message)
	}
}

func TestGetIsIdempotent(t *testing.T) {
	router := newTestRouter()

	var bodies [][]byte
	for range 3 {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
		bodies = append(bodies, resp.Body.Bytes())
	}
	for i := 1; i < len(bodies); i++ {
		if !bytes.Equal(bodies[0], bodies[i]) {
			t.Fatalf("response %d differs: %q vs %q", i, bodies[i], bodies[0])
		}
	}
}

func TestRegisterDocumentsOperation(t *testing.T) {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("HomeTest", "test"))
	Register(api)

	path := api.OpenAPI().Paths["/"]
	if path == nil || path.Get == nil {
		t.Fatal("expected GET / in the OpenAPI document")
	}
	if path.Get.OperationID != "get-home" {
		t.Fatalf("unexpected operation ID %q", path.Get.OperationID)
	}
}

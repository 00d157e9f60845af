package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVaryMiddlewareSetsHeader(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("body"))
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if vary := resp.Header().Get("Vary"); vary != "Accept" {
		t.Fatalf("expected Vary: Accept, got %q", vary)
	}
	if resp.Code != http.StatusCreated || resp.Body.String() != "body" {
		t.Fatalf("expected downstream response to be preserved, got %d %q", resp.Code, resp.Body.String())
	}
}

func TestAddVary(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     []string
	}{
		{"empty", nil, []string{"Accept"}},
		{"other value", []string{"Origin"}, []string{"Origin", "Accept"}},
		{"already present", []string{"accept"}, []string{"accept"}},
		{"comma separated", []string{"Origin, Accept"}, []string{"Origin, Accept"}},
		{"wildcard", []string{"*"}, []string{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for _, v := range tt.existing {
				h.Add("Vary", v)
			}
			AddVary(h, "Accept")
			got := h.Values("Vary")
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

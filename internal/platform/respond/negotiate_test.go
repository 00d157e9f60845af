package respond

import "testing"

func TestSelectFormat(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   format
	}{
		{"empty", "", formatJSON},
		{"wildcard", "*/*", formatJSON},
		{"application wildcard", "application/*", formatJSON},
		{"explicit json", "application/json", formatJSON},
		{"explicit cbor", "application/cbor", formatCBOR},
		{"problem cbor", "application/problem+cbor", formatCBOR},
		{"structured suffix cbor", "application/*+cbor", formatCBOR},
		{"upper case", "APPLICATION/CBOR", formatCBOR},
		{"whitespace", "  application/cbor  ;  q=1.0  ", formatCBOR},
		{"equal q json first", "application/json, application/cbor", formatJSON},
		{"equal q cbor first", "application/cbor, application/json", formatJSON},
		{"equal q explicit weights", "application/cbor;q=0.8, application/json;q=0.8", formatJSON},
		{"cbor weighted higher", "application/json;q=0.5, application/cbor", formatCBOR},
		{"problem cbor weighted higher", "application/problem+json;q=0.1, application/cbor;q=1.0", formatCBOR},
		{"json weighted higher", "application/problem+cbor;q=0.1, application/json;q=1.0", formatJSON},
		{"wildcard outweighs cbor", "application/cbor;q=0.2, */*;q=0.8", formatJSON},
		{"cbor outweighs wildcard", "*/*;q=0.1, application/cbor;q=1.0", formatCBOR},
		{"low q cbor only", "application/cbor;q=0.1", formatCBOR},
		{"cbor excluded", "application/cbor;q=0", formatJSON},
		{"cbor excluded next to json", "application/cbor;q=0, application/json", formatJSON},
		{"malformed q", "application/cbor;q=abc", formatJSON},
		{"unsupported type", "text/html", formatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectFormat(tt.accept); got != tt.want {
				t.Errorf("selectFormat(%q) = %v, want %v", tt.accept, got, tt.want)
			}
		})
	}
}

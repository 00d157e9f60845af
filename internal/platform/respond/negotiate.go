package respond

import (
	"strings"

	"github.com/danielgtaylor/huma/v2/negotiation"
)

type format int

const (
	formatJSON format = iota
	formatCBOR
)

// acceptable lists the ranges a problem document can be served as. JSON comes
// first so it wins every q-value tie; wildcards count as JSON.
var acceptable = []string{
	"application/json",
	"application/problem+json",
	"application/*+json",
	"application/*",
	"*/*",
	"application/cbor",
	"application/problem+cbor",
	"application/*+cbor",
}

// selectFormat picks CBOR only when the client weights a CBOR range strictly
// above every JSON-compatible one. q=0 and malformed weights exclude a range.
func selectFormat(accept string) format {
	if accept == "" {
		return formatJSON
	}
	switch negotiation.SelectQValue(strings.ToLower(accept), acceptable) {
	case "application/cbor", "application/problem+cbor", "application/*+cbor":
		return formatCBOR
	default:
		return formatJSON
	}
}

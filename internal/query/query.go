// Package query builds the URL-encoded query string for one LegiScan API
// call. It validates the supplied parameters against the operation schema and
// performs no I/O.
package query

import (
	"net/url"
	"strings"

	"github.com/legiscan-go/legiscan/api"
	"github.com/legiscan-go/legiscan/internal/ops"
)

// Build validates params against op's schema and returns the full request
// URL: key and op first, then the parameters URL-encoded in sorted order.
// Unset optional parameters must simply be absent from params; empty values
// are never emitted.
func Build(baseURL, key string, op ops.Operation, params map[string]string) (string, error) {
	if err := validate(op, params); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString("/?key=")
	b.WriteString(url.QueryEscape(key))
	b.WriteString("&op=")
	b.WriteString(url.QueryEscape(op.Name))

	v := url.Values{}
	for name, val := range params {
		v.Set(name, val)
	}
	if len(v) > 0 {
		b.WriteString("&")
		b.WriteString(v.Encode())
	}
	return b.String(), nil
}

func validate(op ops.Operation, params map[string]string) error {
	for _, name := range op.Required {
		if _, ok := params[name]; !ok {
			return &api.ParameterError{Op: op.Name, Param: name, Reason: "is required"}
		}
	}
	if len(op.OneOf) > 0 {
		found := false
		for _, name := range op.OneOf {
			if _, ok := params[name]; ok {
				found = true
				break
			}
		}
		if !found {
			return &api.ParameterError{
				Op:     op.Name,
				Param:  strings.Join(op.OneOf, "|"),
				Reason: "requires at least one of these",
			}
		}
	}
	for name := range params {
		if !allowed(op, name) {
			return &api.ParameterError{Op: op.Name, Param: name, Reason: "is not recognized"}
		}
	}
	return nil
}

func allowed(op ops.Operation, name string) bool {
	for _, set := range [][]string{op.Required, op.OneOf, op.Optional} {
		for _, n := range set {
			if n == name {
				return true
			}
		}
	}
	return false
}

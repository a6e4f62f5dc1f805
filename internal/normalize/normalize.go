// Package normalize turns a raw LegiScan response body into the operation's
// payload: it decodes the JSON, checks the API's own status field, unwraps
// the payload key and annotates code fields with their code-book labels.
package normalize

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/legiscan-go/legiscan/api"
	"github.com/legiscan-go/legiscan/codes"
	"github.com/legiscan-go/legiscan/internal/ops"
)

// Normalize decodes body and returns op's payload. Numbers decode as
// json.Number so ids and codes survive the generic decode intact. The API
// signals most failures in-band: a top-level status of "ERROR" surfaces as
// *api.APIError carrying the alert message verbatim.
func Normalize(op ops.Operation, body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &api.DecodeError{Op: op.Name, Err: err}
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: op.Name, Key: "status"}
	}

	status, ok := doc["status"].(string)
	if !ok {
		return nil, &api.ShapeError{Op: op.Name, Key: "status"}
	}
	if status == "ERROR" {
		return nil, &api.APIError{Op: op.Name, Message: alertMessage(doc)}
	}

	payload, ok := doc[op.PayloadKey]
	if !ok {
		return nil, &api.ShapeError{Op: op.Name, Key: op.PayloadKey}
	}
	if len(op.Codes) > 0 {
		translate(payload, op.Codes)
	}
	return payload, nil
}

func alertMessage(doc map[string]any) string {
	if alert, ok := doc["alert"].(map[string]any); ok {
		if msg, ok := alert["message"].(string); ok {
			return msg
		}
	}
	return "unspecified API error"
}

// translate walks the payload and, for every schema code field holding a
// numeric value, writes the table label to the target field. Values the API
// already supplied are never overwritten; a missing label cannot fail the
// call (the code book falls back to "Unknown").
func translate(node any, fields map[string]ops.CodeField) {
	switch v := node.(type) {
	case map[string]any:
		for name, cf := range fields {
			val, ok := v[name]
			if !ok {
				continue
			}
			code, ok := asInt(val)
			if !ok {
				continue
			}
			if _, exists := v[cf.Target]; !exists {
				v[cf.Target] = codes.Lookup(cf.Table, code)
			}
		}
		for _, child := range v {
			translate(child, fields)
		}
	case []any:
		for _, child := range v {
			translate(child, fields)
		}
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := strconv.Atoi(n.String())
		return i, err == nil
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	default:
		return 0, false
	}
}

package legiscan

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/legiscan-go/legiscan/api"
)

// MasterList is a session's bill list. The API interleaves the session object
// with numerically-keyed bill entries under one payload; here they are split,
// with bills ordered by their numeric key.
type MasterList struct {
	Session map[string]any
	Bills   []map[string]any
}

// SearchResults is one page of full-text search results.
type SearchResults struct {
	Summary map[string]any
	Results []map[string]any
}

// SessionPeople lists the legislators active in one session.
type SessionPeople struct {
	Session map[string]any
	People  []map[string]any
}

// SponsoredList lists the bills sponsored by one legislator.
type SponsoredList struct {
	Sponsor  map[string]any
	Sessions []map[string]any
	Bills    []map[string]any
}

// SearchParams are the inputs to Search. State is required, plus either Bill
// or Query; Year 0 means the current year (selector 2) and Page 0 the first
// page.
type SearchParams struct {
	State string
	Bill  string
	Query string
	Year  int
	Page  int
}

// SearchRawParams are the inputs to SearchRaw. State and Query are required.
// MinRelevance (0-100) filters results client-side; zero keeps everything.
type SearchRawParams struct {
	State        string
	Query        string
	Year         int
	Page         int
	MinRelevance int
}

func splitMasterList(opName string, payload any) (*MasterList, error) {
	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "masterlist"}
	}
	session, ok := doc["session"].(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "session"}
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		if k == "session" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		if aerr != nil || berr != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	bills := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		if bill, ok := doc[k].(map[string]any); ok {
			bills = append(bills, bill)
		}
	}
	return &MasterList{Session: session, Bills: bills}, nil
}

func splitSearchResults(opName string, payload any) (*SearchResults, error) {
	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "searchresult"}
	}
	summary, ok := doc["summary"].(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "summary"}
	}
	results, ok := doc["results"].([]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "results"}
	}
	return &SearchResults{Summary: summary, Results: toMapSlice(results)}, nil
}

func splitSessionPeople(opName string, payload any) (*SessionPeople, error) {
	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "sessionpeople"}
	}
	session, ok := doc["session"].(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "session"}
	}
	people, ok := doc["people"].([]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "people"}
	}
	return &SessionPeople{Session: session, People: toMapSlice(people)}, nil
}

func splitSponsoredList(opName string, payload any) (*SponsoredList, error) {
	doc, ok := payload.(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "sponsoredbills"}
	}
	sponsor, ok := doc["sponsor"].(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "sponsor"}
	}
	sessions, ok := doc["sessions"].([]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "sessions"}
	}
	bills, ok := doc["bills"].([]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: "bills"}
	}
	return &SponsoredList{
		Sponsor:  sponsor,
		Sessions: toMapSlice(sessions),
		Bills:    toMapSlice(bills),
	}, nil
}

func toMapSlice(list []any) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func filterByRelevance(results []map[string]any, min int) []map[string]any {
	out := make([]map[string]any, 0, len(results))
	for _, r := range results {
		n, ok := r["relevance"].(json.Number)
		if !ok {
			continue
		}
		rel, err := strconv.Atoi(n.String())
		if err != nil {
			continue
		}
		if rel >= min {
			out = append(out, r)
		}
	}
	return out
}

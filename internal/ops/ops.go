// Package ops declares the schema for every supported LegiScan operation:
// its wire name, required and optional parameter names, the payload key the
// response carries, and which payload fields are translated through the code
// book.
package ops

import "github.com/legiscan-go/legiscan/codes"

// Operation names as they appear in the op= query parameter.
const (
	GetSessionList   = "getSessionList"
	GetMasterList    = "getMasterList"
	GetMasterListRaw = "getMasterListRaw"
	GetBill          = "getBill"
	GetBillText      = "getBillText"
	GetAmendment     = "getAmendment"
	GetSupplement    = "getSupplement"
	GetRollCall      = "getRollcall"
	GetPerson        = "getPerson"
	Search           = "search"
	SearchRaw        = "searchRaw"
	GetDatasetList   = "getDatasetList"
	GetDataset       = "getDataset"
	GetSessionPeople = "getSessionPeople"
	GetSponsoredList = "getSponsoredList"
)

// CodeField maps a numeric payload field onto a code table. The label is
// written to Target; the source field is left untouched.
type CodeField struct {
	Table  codes.Table
	Target string
}

// Operation describes one API call. Required parameters must all be present;
// OneOf lists parameter names of which at least one must be present; any
// supplied name outside Required, OneOf and Optional is rejected.
type Operation struct {
	Name       string
	PayloadKey string
	Required   []string
	OneOf      []string
	Optional   []string

	// Codes maps payload field names to code tables. Field names that are
	// ambiguous across an operation's sub-objects (e.g. type_id inside a
	// bill's texts vs. its sasts) are deliberately absent.
	Codes map[string]CodeField
}

var registry = map[string]Operation{
	GetSessionList: {
		Name:       GetSessionList,
		PayloadKey: "sessions",
		Required:   []string{"state"},
	},
	GetMasterList: {
		Name:       GetMasterList,
		PayloadKey: "masterlist",
		OneOf:      []string{"state", "id"},
		Codes: map[string]CodeField{
			"status": {Table: codes.Status, Target: "status_desc"},
		},
	},
	GetMasterListRaw: {
		Name:       GetMasterListRaw,
		PayloadKey: "masterlist",
		OneOf:      []string{"state", "id"},
	},
	GetBill: {
		Name:       GetBill,
		PayloadKey: "bill",
		Required:   []string{"id"},
		Codes: map[string]CodeField{
			"status":          {Table: codes.Status, Target: "status_desc"},
			"sponsor_type_id": {Table: codes.Sponsor, Target: "sponsor_type_desc"},
			"party_id":        {Table: codes.Party, Target: "party"},
			"role_id":         {Table: codes.Role, Target: "role"},
		},
	},
	GetBillText: {
		Name:       GetBillText,
		PayloadKey: "text",
		Required:   []string{"id"},
		Codes: map[string]CodeField{
			"type_id": {Table: codes.Text, Target: "type"},
			"mime_id": {Table: codes.Mime, Target: "mime"},
		},
	},
	GetAmendment: {
		Name:       GetAmendment,
		PayloadKey: "amendment",
		Required:   []string{"id"},
		Codes: map[string]CodeField{
			"mime_id": {Table: codes.Mime, Target: "mime"},
		},
	},
	GetSupplement: {
		Name:       GetSupplement,
		PayloadKey: "supplement",
		Required:   []string{"id"},
		Codes: map[string]CodeField{
			"type_id": {Table: codes.Supplement, Target: "type"},
			"mime_id": {Table: codes.Mime, Target: "mime"},
		},
	},
	GetRollCall: {
		Name:       GetRollCall,
		PayloadKey: "roll_call",
		Required:   []string{"id"},
		Codes: map[string]CodeField{
			"vote_id": {Table: codes.Vote, Target: "vote_text"},
		},
	},
	GetPerson: {
		Name:       GetPerson,
		PayloadKey: "person",
		Required:   []string{"people_id"},
		Codes: map[string]CodeField{
			"party_id": {Table: codes.Party, Target: "party"},
			"role_id":  {Table: codes.Role, Target: "role"},
		},
	},
	Search: {
		Name:       Search,
		PayloadKey: "searchresult",
		Required:   []string{"state"},
		OneOf:      []string{"bill", "query"},
		Optional:   []string{"year", "page"},
	},
	SearchRaw: {
		Name:       SearchRaw,
		PayloadKey: "searchresult",
		Required:   []string{"state", "query"},
		Optional:   []string{"year", "page"},
	},
	GetDatasetList: {
		Name:       GetDatasetList,
		PayloadKey: "datasetlist",
		Optional:   []string{"state", "year"},
	},
	GetDataset: {
		Name:       GetDataset,
		PayloadKey: "dataset",
		Required:   []string{"id", "access_key"},
	},
	GetSessionPeople: {
		Name:       GetSessionPeople,
		PayloadKey: "sessionpeople",
		Required:   []string{"session_id"},
		Codes: map[string]CodeField{
			"party_id": {Table: codes.Party, Target: "party"},
			"role_id":  {Table: codes.Role, Target: "role"},
		},
	},
	GetSponsoredList: {
		Name:       GetSponsoredList,
		PayloadKey: "sponsoredbills",
		Required:   []string{"people_id"},
	},
}

// Get returns the schema for a known operation name. Unknown names are a
// programming error and panic.
func Get(name string) Operation {
	op, ok := registry[name]
	if !ok {
		panic("ops: unknown operation " + name)
	}
	return op
}

// All returns every declared operation.
func All() []Operation {
	out := make([]Operation, 0, len(registry))
	for _, op := range registry {
		out = append(out, op)
	}
	return out
}

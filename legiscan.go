// Package legiscan is a client for the LegiScan legislative-data API. Each
// method issues exactly one HTTP GET (no retries, no caching) and returns the
// operation's payload with numeric codes annotated from the static code book
// in package codes.
package legiscan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/legiscan-go/legiscan/api"
	"github.com/legiscan-go/legiscan/internal/metrics"
	"github.com/legiscan-go/legiscan/internal/normalize"
	"github.com/legiscan-go/legiscan/internal/ops"
	"github.com/legiscan-go/legiscan/internal/query"
	"github.com/legiscan-go/legiscan/internal/transport"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.legiscan.com"

	// EnvAPIKey is the environment variable consulted when no explicit key
	// is configured.
	EnvAPIKey = "LEGISCAN_API_KEY"
)

// Client calls the LegiScan API. It is safe for concurrent use; the API key
// and configuration are read-only after New.
type Client struct {
	key        string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        *slog.Logger
	registerer prometheus.Registerer

	fetch *transport.Fetcher
	m     *metrics.Metrics
}

type Option func(*Client)

// WithAPIKey supplies the API key explicitly instead of via LEGISCAN_API_KEY.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.key = key }
}

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each request. One call still means one request; a
// timeout is surfaced as a TransportError, never retried.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithMetrics registers request counters and latency histograms with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) { c.registerer = reg }
}

// New builds a Client. The API key comes from WithAPIKey or, failing that,
// the LEGISCAN_API_KEY environment variable; absence of both is an error.
func New(opts ...Option) (*Client, error) {
	c := &Client{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	if c.key == "" {
		c.key = os.Getenv(EnvAPIKey)
	}
	c.key = strings.TrimSpace(c.key)
	if c.key == "" {
		return nil, fmt.Errorf("legiscan: no API key: use WithAPIKey or set %s", EnvAPIKey)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	c.fetch = transport.New(c.httpClient, c.log)
	if c.registerer != nil {
		c.m = metrics.New(c.registerer)
	}
	return c, nil
}

// call runs the full pipeline for one operation: validate+build the query,
// fetch, then normalize.
func (c *Client) call(ctx context.Context, opName string, params map[string]string) (any, error) {
	op := ops.Get(opName)
	start := time.Now()
	out, err := c.run(ctx, op, params)
	c.m.ObserveRequest(opName, outcome(err), time.Since(start))
	return out, err
}

func (c *Client) run(ctx context.Context, op ops.Operation, params map[string]string) (any, error) {
	u, err := query.Build(c.baseURL, c.key, op, params)
	if err != nil {
		return nil, err
	}
	body, err := c.fetch.Fetch(ctx, op.Name, u)
	if err != nil {
		return nil, err
	}
	return normalize.Normalize(op, body)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var (
		perr *api.ParameterError
		terr *api.TransportError
		derr *api.DecodeError
		aerr *api.APIError
		serr *api.ShapeError
	)
	switch {
	case errors.As(err, &perr):
		return "parameter"
	case errors.As(err, &terr):
		return "transport"
	case errors.As(err, &derr):
		return "decode"
	case errors.As(err, &aerr):
		return "api"
	case errors.As(err, &serr):
		return "shape"
	default:
		return "error"
	}
}

// GetSessionList returns the legislative sessions for a state, identified by
// its two-character postal code.
func (c *Client) GetSessionList(ctx context.Context, state string) ([]map[string]any, error) {
	return c.listCall(ctx, ops.GetSessionList, params().str("state", state).m)
}

// GetMasterList returns the bill master list for a state's current session,
// or for an explicit session id. State takes precedence when both are set; at
// least one is required.
func (c *Client) GetMasterList(ctx context.Context, state string, sessionID int) (*MasterList, error) {
	return c.masterList(ctx, ops.GetMasterList, state, sessionID)
}

// GetMasterListRaw is the change-tracking variant of GetMasterList: each bill
// carries only its id, number and change_hash, and no code translation is
// applied.
func (c *Client) GetMasterListRaw(ctx context.Context, state string, sessionID int) (*MasterList, error) {
	return c.masterList(ctx, ops.GetMasterListRaw, state, sessionID)
}

func (c *Client) masterList(ctx context.Context, opName, state string, sessionID int) (*MasterList, error) {
	p := params()
	if state != "" {
		p.str("state", state)
	} else {
		p.num("id", sessionID)
	}
	out, err := c.call(ctx, opName, p.m)
	if err != nil {
		return nil, err
	}
	return splitMasterList(opName, out)
}

// GetBill returns detailed information for a single bill. Bill ids are
// unique across all states and sessions.
func (c *Client) GetBill(ctx context.Context, billID int) (map[string]any, error) {
	return c.objectCall(ctx, ops.GetBill, params().num("id", billID).m)
}

// GetBillText returns one bill text document. The doc field is base64
// encoded; doc ids come from the texts list of a GetBill result.
func (c *Client) GetBillText(ctx context.Context, docID int) (map[string]any, error) {
	return c.objectCall(ctx, ops.GetBillText, params().num("id", docID).m)
}

// GetAmendment returns a single amendment; the doc field is base64 encoded.
func (c *Client) GetAmendment(ctx context.Context, amendmentID int) (map[string]any, error) {
	return c.objectCall(ctx, ops.GetAmendment, params().num("id", amendmentID).m)
}

// GetSupplement returns a single supplement (fiscal note, veto letter, ...).
func (c *Client) GetSupplement(ctx context.Context, supplementID int) (map[string]any, error) {
	return c.objectCall(ctx, ops.GetSupplement, params().num("id", supplementID).m)
}

// GetRollCall returns one roll call vote, with individual votes annotated
// with their vote_text label.
func (c *Client) GetRollCall(ctx context.Context, rollCallID int) (map[string]any, error) {
	return c.objectCall(ctx, ops.GetRollCall, params().num("id", rollCallID).m)
}

// GetPerson returns a single legislator record.
func (c *Client) GetPerson(ctx context.Context, peopleID int) (map[string]any, error) {
	return c.objectCall(ctx, ops.GetPerson, params().num("people_id", peopleID).m)
}

// Search runs a page of results against the LegiScan full-text engine.
// State is required, plus either a bill number or a query string. When
// searching by bill number the year and page parameters are not sent,
// matching the API's documented behavior.
func (c *Client) Search(ctx context.Context, p SearchParams) (*SearchResults, error) {
	q := params().str("state", p.State)
	if p.Bill != "" {
		q.str("bill", p.Bill)
	} else if p.Query != "" {
		q.str("query", p.Query)
		q.num("year", defaultYear(p.Year))
		q.num("page", p.Page)
	}
	out, err := c.call(ctx, ops.Search, q.m)
	if err != nil {
		return nil, err
	}
	return splitSearchResults(ops.Search, out)
}

// SearchRaw is the keyword-monitoring variant of Search. Results below
// MinRelevance (1-100) are filtered out client-side; zero keeps everything.
func (c *Client) SearchRaw(ctx context.Context, p SearchRawParams) (*SearchResults, error) {
	if p.MinRelevance < 0 || p.MinRelevance > 100 {
		return nil, &api.ParameterError{
			Op: ops.SearchRaw, Param: "relevance", Reason: "must be between 0 and 100",
		}
	}
	q := params().str("state", p.State).str("query", p.Query)
	if p.Query != "" {
		q.num("year", defaultYear(p.Year))
		q.num("page", p.Page)
	}
	out, err := c.call(ctx, ops.SearchRaw, q.m)
	if err != nil {
		return nil, err
	}
	res, err := splitSearchResults(ops.SearchRaw, out)
	if err != nil {
		return nil, err
	}
	if p.MinRelevance > 0 {
		res.Results = filterByRelevance(res.Results, p.MinRelevance)
	}
	return res, nil
}

// GetDatasetList returns the available session dataset archives. Both
// filters are optional.
func (c *Client) GetDatasetList(ctx context.Context, state string, year int) ([]map[string]any, error) {
	return c.listCall(ctx, ops.GetDatasetList, params().str("state", state).num("year", year).m)
}

// GetDataset returns one session dataset archive. The zip field holds the
// archive, base64 encoded; access keys come from GetDatasetList.
func (c *Client) GetDataset(ctx context.Context, sessionID int, accessKey string) (map[string]any, error) {
	return c.objectCall(ctx, ops.GetDataset,
		params().num("id", sessionID).str("access_key", accessKey).m)
}

// GetSessionPeople returns the legislators active in one session.
func (c *Client) GetSessionPeople(ctx context.Context, sessionID int) (*SessionPeople, error) {
	out, err := c.call(ctx, ops.GetSessionPeople, params().num("session_id", sessionID).m)
	if err != nil {
		return nil, err
	}
	return splitSessionPeople(ops.GetSessionPeople, out)
}

// GetSponsoredList returns the bills sponsored by one legislator, along with
// the sessions they span.
func (c *Client) GetSponsoredList(ctx context.Context, peopleID int) (*SponsoredList, error) {
	out, err := c.call(ctx, ops.GetSponsoredList, params().num("people_id", peopleID).m)
	if err != nil {
		return nil, err
	}
	return splitSponsoredList(ops.GetSponsoredList, out)
}

func (c *Client) objectCall(ctx context.Context, opName string, p map[string]string) (map[string]any, error) {
	out, err := c.call(ctx, opName, p)
	if err != nil {
		return nil, err
	}
	obj, ok := out.(map[string]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: ops.Get(opName).PayloadKey}
	}
	return obj, nil
}

func (c *Client) listCall(ctx context.Context, opName string, p map[string]string) ([]map[string]any, error) {
	out, err := c.call(ctx, opName, p)
	if err != nil {
		return nil, err
	}
	list, ok := out.([]any)
	if !ok {
		return nil, &api.ShapeError{Op: opName, Key: ops.Get(opName).PayloadKey}
	}
	return toMapSlice(list), nil
}

// paramSet accumulates wire parameters, omitting unset values entirely so
// they are never sent empty.
type paramSet struct{ m map[string]string }

func params() *paramSet { return &paramSet{m: map[string]string{}} }

func (p *paramSet) str(name, v string) *paramSet {
	if v != "" {
		p.m[name] = v
	}
	return p
}

func (p *paramSet) num(name string, v int) *paramSet {
	if v != 0 {
		p.m[name] = strconv.Itoa(v)
	}
	return p
}

// defaultYear maps the zero value to the API's "current year" selector.
func defaultYear(year int) int {
	if year == 0 {
		return 2
	}
	return year
}

package query

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legiscan-go/legiscan/api"
	"github.com/legiscan-go/legiscan/internal/ops"
)

const base = "https://api.legiscan.com"

func TestBuildRoundTrip(t *testing.T) {
	op := ops.Get(ops.Search)
	params := map[string]string{
		"state": "IL",
		"query": "income tax & \"education\"",
		"year":  "2",
		"page":  "3",
	}
	raw, err := Build(base, "secret key", op, params)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "secret key", q.Get("key"))
	assert.Equal(t, "search", q.Get("op"))
	for name, want := range params {
		assert.Equal(t, want, q.Get(name), "parameter %s", name)
	}
}

func TestBuildKeyAndOpComeFirst(t *testing.T) {
	op := ops.Get(ops.GetSessionList)
	raw, err := Build(base, "k", op, map[string]string{"state": "IL"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "https://api.legiscan.com/?key=k&op=getSessionList&"), raw)
	assert.Contains(t, raw, "state=IL")
}

func TestBuildMissingRequired(t *testing.T) {
	op := ops.Get(ops.GetBill)
	_, err := Build(base, "k", op, map[string]string{})
	var perr *api.ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "getBill", perr.Op)
	assert.Equal(t, "id", perr.Param)
}

func TestBuildOneOf(t *testing.T) {
	op := ops.Get(ops.GetMasterList)

	_, err := Build(base, "k", op, map[string]string{"state": "IL"})
	assert.NoError(t, err)
	_, err = Build(base, "k", op, map[string]string{"id": "1635"})
	assert.NoError(t, err)

	_, err = Build(base, "k", op, map[string]string{})
	var perr *api.ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Param, "state")
	assert.Contains(t, perr.Param, "id")
}

func TestBuildUnrecognizedParameter(t *testing.T) {
	op := ops.Get(ops.GetSessionList)
	_, err := Build(base, "k", op, map[string]string{"state": "IL", "county": "Cook"})
	var perr *api.ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "county", perr.Param)
	assert.Contains(t, perr.Error(), "county")
}

func TestBuildAllOperationsAcceptFullParams(t *testing.T) {
	// Every declared operation takes its full parameter set without a
	// validation error and rejects the loss of any single required one.
	for _, op := range ops.All() {
		params := map[string]string{}
		for _, sets := range [][]string{op.Required, op.OneOf, op.Optional} {
			for _, name := range sets {
				params[name] = "x"
			}
		}
		_, err := Build(base, "k", op, params)
		assert.NoError(t, err, "operation %s", op.Name)

		for _, name := range op.Required {
			short := map[string]string{}
			for k, v := range params {
				if k != name {
					short[k] = v
				}
			}
			_, err := Build(base, "k", op, short)
			var perr *api.ParameterError
			assert.True(t, errors.As(err, &perr), "operation %s without %s", op.Name, name)
		}
	}
}

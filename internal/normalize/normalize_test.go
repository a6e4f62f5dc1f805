package normalize

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legiscan-go/legiscan/api"
	"github.com/legiscan-go/legiscan/internal/ops"
)

const billFixture = `{
	"status": "OK",
	"bill": {
		"bill_id": 1167968,
		"bill_number": "HB2040",
		"status": 4,
		"title": "Private Detention Facility Moratorium",
		"sponsors": [
			{"people_id": 7347, "party_id": 1, "sponsor_type_id": 1},
			{"people_id": 9001, "party_id": 2, "sponsor_type_id": 2}
		]
	}
}`

func TestNormalizeUnwrapsAndTranslates(t *testing.T) {
	out, err := Normalize(ops.Get(ops.GetBill), []byte(billFixture))
	require.NoError(t, err)

	bill, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1167968"), bill["bill_id"])
	assert.Equal(t, "Passed", bill["status_desc"])
	// source field stays put
	assert.Equal(t, json.Number("4"), bill["status"])

	sponsors := bill["sponsors"].([]any)
	first := sponsors[0].(map[string]any)
	assert.Equal(t, "Democrat", first["party"])
	assert.Equal(t, "Primary Sponsor", first["sponsor_type_desc"])
	second := sponsors[1].(map[string]any)
	assert.Equal(t, "Republican", second["party"])
	assert.Equal(t, "Co-Sponsor", second["sponsor_type_desc"])
}

func TestNormalizeNeverOverwritesAPIFields(t *testing.T) {
	fixture := `{"status":"OK","person":{"people_id":7347,"party_id":1,"party":"D","role_id":2}}`
	out, err := Normalize(ops.Get(ops.GetPerson), []byte(fixture))
	require.NoError(t, err)

	person := out.(map[string]any)
	assert.Equal(t, "D", person["party"])
	assert.Equal(t, "Senator / Upper Chamber", person["role"])
}

func TestNormalizeUnknownCodeGetsFallback(t *testing.T) {
	fixture := `{"status":"OK","roll_call":{"roll_call_id":1,"votes":[{"people_id":2,"vote_id":99}]}}`
	out, err := Normalize(ops.Get(ops.GetRollCall), []byte(fixture))
	require.NoError(t, err)

	rc := out.(map[string]any)
	vote := rc["votes"].([]any)[0].(map[string]any)
	assert.Equal(t, "Unknown", vote["vote_text"])
}

func TestNormalizeRawVariantSkipsTranslation(t *testing.T) {
	fixture := `{"status":"OK","masterlist":{"session":{"session_id":1635},"0":{"bill_id":1,"status":4}}}`
	out, err := Normalize(ops.Get(ops.GetMasterListRaw), []byte(fixture))
	require.NoError(t, err)

	ml := out.(map[string]any)
	bill := ml["0"].(map[string]any)
	_, translated := bill["status_desc"]
	assert.False(t, translated)
}

func TestNormalizeAPIError(t *testing.T) {
	fixture := `{"status":"ERROR","alert":{"message":"Invalid API Key: check your key value"}}`
	_, err := Normalize(ops.Get(ops.GetBill), []byte(fixture))

	var aerr *api.APIError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, "Invalid API Key: check your key value", aerr.Message)
	assert.Equal(t, "getBill", aerr.Op)
}

func TestNormalizeAPIErrorWithoutAlert(t *testing.T) {
	_, err := Normalize(ops.Get(ops.GetBill), []byte(`{"status":"ERROR"}`))
	var aerr *api.APIError
	require.True(t, errors.As(err, &aerr))
	assert.NotEmpty(t, aerr.Message)
}

func TestNormalizeMissingPayloadKey(t *testing.T) {
	_, err := Normalize(ops.Get(ops.GetBill), []byte(`{"status":"OK","person":{}}`))
	var serr *api.ShapeError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "bill", serr.Key)
}

func TestNormalizeMissingStatus(t *testing.T) {
	_, err := Normalize(ops.Get(ops.GetBill), []byte(`{"bill":{}}`))
	var serr *api.ShapeError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "status", serr.Key)

	_, err = Normalize(ops.Get(ops.GetBill), []byte(`[1,2,3]`))
	require.True(t, errors.As(err, &serr))
}

func TestNormalizeMalformedJSON(t *testing.T) {
	_, err := Normalize(ops.Get(ops.GetBill), []byte(`{"status": "OK",`))
	var derr *api.DecodeError
	require.True(t, errors.As(err, &derr))
}

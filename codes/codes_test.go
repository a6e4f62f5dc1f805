package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownCodes(t *testing.T) {
	assert.Equal(t, "Bill", Lookup(BillType, 1))
	assert.Equal(t, "PDF", Lookup(Mime, 2))
	assert.Equal(t, "Republican", Lookup(Party, 2))
	assert.Equal(t, "Senator / Upper Chamber", Lookup(Role, 2))
	assert.Equal(t, "Carry Over", Lookup(Sast, 9))
	assert.Equal(t, "Primary Sponsor", Lookup(Sponsor, 1))
	assert.Equal(t, "Chaptered", Lookup(Status, 8))
	assert.Equal(t, "Veto Letter", Lookup(Supplement, 8))
	assert.Equal(t, "Prefiled", Lookup(Text, 11))
	assert.Equal(t, "Not Voting / Abstain", Lookup(Vote, 3))
	assert.Equal(t, "Progress array has been updated", Lookup(Reason, 25))
}

func TestLookupUnknownCodeFallsBack(t *testing.T) {
	assert.Equal(t, Unknown, Lookup(Status, 999))
	assert.Equal(t, Unknown, Lookup(Vote, 0))
	assert.Equal(t, Unknown, Lookup(Party, -1))
}

func TestLookupUnknownTablePanics(t *testing.T) {
	require.Panics(t, func() {
		Lookup(Table("chamber"), 1)
	})
}

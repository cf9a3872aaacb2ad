package gameid

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := New()
	assert.Len(t, id, Length)
	require.NoError(t, Validate(id))
	assert.LessOrEqual(t, id[0], byte('7'))

	u, err := Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
}

func TestNewIsTimeOrdered(t *testing.T) {
	ids := make([]string, 50)
	seen := make(map[string]bool, len(ids))
	for i := range ids {
		ids[i] = New()
		assert.False(t, seen[ids[i]], "duplicate %s", ids[i])
		seen[ids[i]] = true
	}
	assert.True(t, sort.StringsAreSorted(ids))
}

func TestFromSeed(t *testing.T) {
	assert.Equal(t, FromSeed(42), FromSeed(42))
	assert.NotEqual(t, FromSeed(42), FromSeed(43))
	assert.NoError(t, Validate(FromSeed(-1)))
}

func TestRoundTrip(t *testing.T) {
	for _, u := range []uuid.UUID{uuid.Nil, uuid.Max, uuid.MustParse("0190c2f4-8a1e-7b3c-9d4e-5f6a7b8c9d0e")} {
		id := Encode(u)
		got, err := Parse(id)
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
	assert.Equal(t, "00000000000000000000000000", Encode(uuid.Nil))
	assert.Equal(t, "7zzzzzzzzzzzzzzzzzzzzzzzzz", Encode(uuid.Max))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h455vb4pex5vsknk084sn02q", false},
		{"too short", "01h455vb4pex5vsknk084sn02", true},
		{"too long", "01h455vb4pex5vsknk084sn02qq", true},
		{"first char overflow", "81h455vb4pex5vsknk084sn02q", true},
		{"invalid char", "01h455vb4pex5vsknk084sn0iq", true},
		{"uppercase", "01H455VB4PEX5VSKNK084SN02Q", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

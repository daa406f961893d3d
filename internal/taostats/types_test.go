package taostats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleInt64_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain int", `301000`, 301000, false},
		{"string int", `"301000"`, 301000, false},
		{"float", `3.01e5`, 301000, false},
		{"string float", `"3.01e5"`, 301000, false},
		{"garbage", `"abc"`, 0, true},
		{"null-ish", `{}`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexibleInt64
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Int64())
		})
	}
}

func TestRaoAmount_UnmarshalJSON(t *testing.T) {
	var a RaoAmount
	require.NoError(t, json.Unmarshal([]byte(`"9000000000000000"`), &a))
	assert.InDelta(t, 9e15, float64(a), 1)

	require.NoError(t, json.Unmarshal([]byte(`9000000000000000`), &a))
	assert.InDelta(t, 9e15, float64(a), 1)

	require.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &a))
}

func TestRawRecord_ToRecord(t *testing.T) {
	raw := RawRecord{
		Timestamp:      "2024-12-27T00:00:00Z",
		BlockNumber:    4321000,
		Issued:         9e15, // rao
		Staked:         5e15,
		Accounts:       300000,
		BalanceHolders: 100000,
	}

	rec, err := raw.ToRecord()
	require.NoError(t, err)

	assert.Equal(t, "2024-12-27", rec.Date.Format("2006-01-02"))
	assert.InDelta(t, 9_000_000, rec.CurrentSupply, 1e-6)
	assert.InDelta(t, 5_000_000, rec.TotalStaked, 1e-6)
	assert.InDelta(t, 4_000_000, rec.Circulating, 1e-6)
	assert.Equal(t, int64(4321000), rec.BlockNumber)
	assert.Equal(t, int64(300000), rec.TotalAccounts)
}

func TestRawRecord_ToRecord_BadTimestamp(t *testing.T) {
	raw := RawRecord{Timestamp: "27/12/2024"}
	_, err := raw.ToRecord()
	require.Error(t, err)
}

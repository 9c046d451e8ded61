package calendars

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalJSONRoundTrip(t *testing.T) {
	cal := holCal()

	data, err := json.Marshal(cal)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"holidays": ["2015-09-05", "2015-09-07"],
		"week_mask": ["Sunday", "Saturday"]
	}`, string(data))

	var back Cal
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.IsHoliday(Date(2015, 9, 7)))
	assert.False(t, back.IsWeekday(Date(2015, 9, 6)))
	assert.True(t, back.IsWeekday(Date(2015, 9, 8)))
}

func TestCalJSONBadDate(t *testing.T) {
	var cal Cal
	err := json.Unmarshal([]byte(`{"holidays": ["07/09/2015"], "week_mask": []}`), &cal)
	require.Error(t, err)
}

func TestCalJSONBadWeekday(t *testing.T) {
	var cal Cal
	err := json.Unmarshal([]byte(`{"holidays": [], "week_mask": ["Caturday"]}`), &cal)
	require.Error(t, err)
}

func TestUnionCalJSONRoundTrip(t *testing.T) {
	union := NewUnionCal([]*Cal{holCal()}, []*Cal{holCal2()})

	data, err := json.Marshal(union)
	require.NoError(t, err)

	var back UnionCal
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.IsHoliday(Date(2015, 9, 7)))
	assert.False(t, back.IsSettlement(Date(2015, 9, 8)))
	assert.True(t, back.IsSettlement(Date(2015, 9, 10)))
}

func TestUnionCalJSONOmitsEmptySettlement(t *testing.T) {
	union := NewUnionCal([]*Cal{weekendCal()}, nil)

	data, err := json.Marshal(union)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "settlement")
}

func TestCalJSONNormalizesTimes(t *testing.T) {
	noon := time.Date(2015, 9, 7, 12, 0, 0, 0, time.UTC)
	cal := NewCal([]time.Time{noon}, nil)

	data, err := json.Marshal(cal)
	require.NoError(t, err)
	assert.JSONEq(t, `{"holidays": ["2015-09-07"], "week_mask": []}`, string(data))
}

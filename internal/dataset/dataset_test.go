package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_feature_lab/internal/model"
)

func hourly(n int) []model.RawRecord {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]model.RawRecord, n)
	for i := range records {
		records[i] = model.RawRecord{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			PowerKW:   float64(i),
		}
	}
	return records
}

func TestNew_AcceptsHourlySeries(t *testing.T) {
	ds, err := New(hourly(48))
	require.NoError(t, err)
	assert.Equal(t, 48, ds.Len())
}

func TestNew_AcceptsEmpty(t *testing.T) {
	ds, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())

	_, ok := ds.TimeRange()
	assert.False(t, ok)
}

func TestNew_RejectsOutOfOrder(t *testing.T) {
	records := hourly(10)
	records[5].Timestamp = records[5].Timestamp.Add(-2 * time.Hour)

	_, err := New(records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 5")
	assert.Contains(t, err.Error(), "not after previous")
}

func TestNew_RejectsGap(t *testing.T) {
	records := hourly(10)
	records[7].Timestamp = records[7].Timestamp.Add(time.Hour)

	_, err := New(records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 7")
	assert.Contains(t, err.Error(), "2h")
}

func TestNew_RejectsDuplicateTimestamp(t *testing.T) {
	records := hourly(10)
	records[3].Timestamp = records[2].Timestamp

	_, err := New(records)
	assert.Error(t, err)
}

func TestTimeRange(t *testing.T) {
	ds, err := New(hourly(24))
	require.NoError(t, err)

	tr, ok := ds.TimeRange()
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), tr.Start)
	assert.Equal(t, time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC), tr.End)
}

func TestAt(t *testing.T) {
	ds, err := New(hourly(24))
	require.NoError(t, err)

	// Exact hit.
	r, ok := ds.At(time.Date(2020, 1, 1, 5, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 5.0, r.PowerKW)

	// Between records: latest at or before.
	r, ok = ds.At(time.Date(2020, 1, 1, 5, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 5.0, r.PowerKW)

	// Before the first record.
	_, ok = ds.At(time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestSlice(t *testing.T) {
	ds, err := New(hourly(24))
	require.NoError(t, err)

	// [start, end) semantics.
	got := ds.Slice(
		time.Date(2020, 1, 1, 6, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC),
	)
	require.Len(t, got, 3)
	assert.Equal(t, 6.0, got[0].PowerKW)
	assert.Equal(t, 8.0, got[2].PowerKW)

	// Empty interval.
	assert.Nil(t, ds.Slice(
		time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
	))
}

// Package dataset holds an ordered, hourly series of raw records with
// cadence validation and timestamp-indexed queries.
package dataset

import (
	"fmt"
	"sort"
	"time"

	"energy_feature_lab/internal/model"
)

// Dataset is an immutable time-ordered record series. Construct it
// with New, which enforces the ordering and cadence invariants.
type Dataset struct {
	records []model.RawRecord
}

// New validates that records are strictly increasing at exact one-hour
// steps and returns the dataset. The offending index is named in the
// error so malformed input fails fast and loudly.
func New(records []model.RawRecord) (*Dataset, error) {
	for i := 1; i < len(records); i++ {
		gap := records[i].Timestamp.Sub(records[i-1].Timestamp)
		if gap <= 0 {
			return nil, fmt.Errorf("dataset: record %d: timestamp %s not after previous %s",
				i, records[i].Timestamp.Format(time.RFC3339), records[i-1].Timestamp.Format(time.RFC3339))
		}
		if gap != time.Hour {
			return nil, fmt.Errorf("dataset: record %d: gap from previous is %s, want exactly 1h", i, gap)
		}
	}
	return &Dataset{records: records}, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns the underlying record slice. Callers must treat it
// as read-only.
func (d *Dataset) Records() []model.RawRecord {
	return d.records
}

// TimeRange returns the covered interval, or false when empty.
func (d *Dataset) TimeRange() (model.TimeRange, bool) {
	if len(d.records) == 0 {
		return model.TimeRange{}, false
	}
	return model.TimeRange{
		Start: d.records[0].Timestamp,
		End:   d.records[len(d.records)-1].Timestamp,
	}, true
}

// At returns the record with the latest timestamp at or before t.
func (d *Dataset) At(t time.Time) (model.RawRecord, bool) {
	idx := sort.Search(len(d.records), func(i int) bool {
		return d.records[i].Timestamp.After(t)
	})
	if idx == 0 {
		return model.RawRecord{}, false
	}
	return d.records[idx-1], true
}

// Slice returns the records with start <= timestamp < end.
func (d *Dataset) Slice(start, end time.Time) []model.RawRecord {
	startIdx := sort.Search(len(d.records), func(i int) bool {
		return !d.records[i].Timestamp.Before(start)
	})
	endIdx := sort.Search(len(d.records), func(i int) bool {
		return !d.records[i].Timestamp.Before(end)
	})
	if startIdx >= endIdx {
		return nil
	}
	out := make([]model.RawRecord, endIdx-startIdx)
	copy(out, d.records[startIdx:endIdx])
	return out
}

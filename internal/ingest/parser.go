package ingest

import (
	"io"

	"energy_feature_lab/internal/model"
)

// Parser reads raw hourly records from a source.
type Parser interface {
	Parse(r io.Reader) ([]model.RawRecord, error)
}

// Package window implements the temporal train/test split and the
// sliding-window pairing of feature sequences with forecast targets.
package window

import (
	"iter"

	"energy_feature_lab/internal/model"
)

// Split cuts a time-ordered sequence at floor(ratio·N): train is the
// prefix, test the suffix. There is no shuffling, ever — shuffled
// temporal data leaks future values into training.
func Split[T any](seq []T, ratio float64) (train, test []T) {
	cut := int(ratio * float64(len(seq)))
	if cut < 0 {
		cut = 0
	}
	if cut > len(seq) {
		cut = len(seq)
	}
	return seq[:cut], seq[cut:]
}

// Count returns the number of windows produced for a sequence of
// length n. Zero when the sequence is shorter than history+horizon.
func Count(n, history, horizon, stride int) int {
	if stride <= 0 {
		return 0
	}
	span := n - history - horizon
	if span < 0 {
		return 0
	}
	return span/stride + 1
}

// Windows slides a history of historyLen vectors over the sequence,
// advancing by stride, pairing each with the scaled power value
// horizon hours after the history ends. No partial windows are
// emitted; a sequence shorter than history+horizon yields an empty
// sequence, not an error.
//
// The returned sequence is lazy and restartable: ranging over it
// multiple times yields the same windows with no side effects.
func Windows(features []model.FeatureVector, history, horizon, stride int) iter.Seq[model.Window] {
	return func(yield func(model.Window) bool) {
		if history <= 0 || horizon <= 0 || stride <= 0 {
			return
		}
		for i := 0; i+history+horizon <= len(features); i += stride {
			w := model.Window{
				History: features[i : i+history],
				Target:  features[i+history+horizon-1].PowerKW,
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Collect materializes a window sequence into a slice.
func Collect(seq iter.Seq[model.Window]) []model.Window {
	var out []model.Window
	for w := range seq {
		out = append(out, w)
	}
	return out
}

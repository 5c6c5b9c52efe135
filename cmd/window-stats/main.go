// window-stats inspects a Parquet feature set and reports the
// supervised windows it yields under given history/horizon/stride
// parameters: counts, coverage, and target distribution.
//
// Usage:
//
//	window-stats -in data/train.parquet
//	window-stats -in data/test.parquet -history 168 -horizon 24 -stride 24
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"energy_feature_lab/internal/export"
	"energy_feature_lab/internal/model"
	"energy_feature_lab/internal/window"
)

func main() {
	in := flag.String("in", "", "Parquet feature set (required)")
	history := flag.Int("history", 168, "history window length, hours")
	horizon := flag.Int("horizon", 24, "forecast horizon, hours")
	stride := flag.Int("stride", 24, "window stride, hours")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		flag.Usage()
		os.Exit(1)
	}

	rows, err := export.ReadParquet(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *in, err)
		os.Exit(1)
	}

	feats := make([]model.FeatureVector, len(rows))
	for i, r := range rows {
		feats[i] = featureVectorOf(r)
	}

	expected := window.Count(len(feats), *history, *horizon, *stride)

	count := 0
	minTarget, maxTarget := math.Inf(1), math.Inf(-1)
	var sumTarget float64
	for w := range window.Windows(feats, *history, *horizon, *stride) {
		count++
		minTarget = math.Min(minTarget, w.Target)
		maxTarget = math.Max(maxTarget, w.Target)
		sumTarget += w.Target
	}

	fmt.Printf("Feature set:  %s\n", *in)
	fmt.Printf("Rows:         %d", len(rows))
	if len(rows) > 0 {
		fmt.Printf("  (%s .. %s)", rows[0].RowTime().Format("2006-01-02 15:04"),
			rows[len(rows)-1].RowTime().Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Printf("Parameters:   history=%d horizon=%d stride=%d\n", *history, *horizon, *stride)
	fmt.Printf("Windows:      %d (formula says %d)\n", count, expected)
	if count > 0 {
		fmt.Printf("Target:       min=%.4f max=%.4f mean=%.4f (scaled power)\n",
			minTarget, maxTarget, sumTarget/float64(count))
	} else {
		fmt.Println("Target:       no windows (sequence shorter than history+horizon)")
	}
}

func featureVectorOf(r export.FeatureRow) model.FeatureVector {
	return model.FeatureVector{
		HourSin:           r.HourSin,
		HourCos:           r.HourCos,
		DayOfWeekSin:      r.DayOfWeekSin,
		DayOfWeekCos:      r.DayOfWeekCos,
		MonthSin:          r.MonthSin,
		MonthCos:          r.MonthCos,
		IsWeekend:         r.IsWeekend,
		TemperatureC:      r.TemperatureC,
		HumidityPct:       r.HumidityPct,
		WindSpeedMS:       r.WindSpeedMS,
		SolarRadiationWM2: r.SolarRadiationWM2,
		TempDeviation:     r.TempDeviation,
		NeedsHeating:      r.NeedsHeating,
		NeedsCooling:      r.NeedsCooling,
		PowerKW:           r.PowerKW,
	}
}

// feature-build is the one-shot batch job: read (or generate) a raw
// hourly dataset, split it temporally, fit scaling parameters on the
// train partition only, apply the feature transform to both
// partitions, and write the artifacts: scaler JSON plus train/test
// Parquet feature sets (with CSV mirrors for inspection).
//
// Usage:
//
//	feature-build -seed 42
//	feature-build -config lab.yaml
//	feature-build -in data/raw.csv.gz -seed 42 -out-dir data
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"energy_feature_lab/internal/config"
	"energy_feature_lab/internal/dataset"
	"energy_feature_lab/internal/export"
	"energy_feature_lab/internal/features"
	"energy_feature_lab/internal/generator"
	"energy_feature_lab/internal/ingest"
	"energy_feature_lab/internal/model"
	"energy_feature_lab/internal/window"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (flags override it)")
	in := flag.String("in", "", "raw dataset CSV (.csv or .csv.gz); empty = generate synthetically")
	seed := flag.Uint64("seed", 0, "random seed (required unless set in config)")
	count := flag.Int("count", 10000, "synthetic record count")
	startStr := flag.String("start", "2020-01-01", "synthetic start date (YYYY-MM-DD)")
	ratio := flag.Float64("ratio", 0.8, "train split ratio")
	history := flag.Int("history", 168, "history window length, hours")
	horizon := flag.Int("horizon", 24, "forecast horizon, hours")
	stride := flag.Int("stride", 24, "window stride, hours")
	workers := flag.Int("workers", 0, "transform workers (0 = NumCPU)")
	outDir := flag.String("out-dir", "", "output directory (default from config)")
	flag.Parse()

	cfg, err := buildConfig(*configPath, flagSetter{
		seed: *seed, count: *count, start: *startStr, ratio: *ratio,
		history: *history, horizon: *horizon, stride: *stride,
		workers: *workers, outDir: *outDir,
	})
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	startTime := time.Now()

	// Stage 1: raw records.
	var records []model.RawRecord
	if *in != "" {
		records, err = ingest.ReadFile(*in)
		if err != nil {
			log.Fatalf("Ingest error: %v", err)
		}
	} else {
		gcfg := generator.DefaultConfig()
		gcfg.Seed = cfg.Seed
		gcfg.Start = cfg.Start
		gcfg.Count = cfg.Count
		records, err = generator.Generate(gcfg)
		if err != nil {
			log.Fatalf("Generator error: %v", err)
		}
	}

	ds, err := dataset.New(records)
	if err != nil {
		log.Fatalf("Dataset validation error: %v", err)
	}

	// Stage 2: temporal split, then fit on train only. The fit must
	// complete before any apply step; test data never touches it.
	train, test := window.Split(ds.Records(), cfg.SplitRatio)
	params, err := features.Fit(train)
	if err != nil {
		log.Fatalf("Fit error: %v", err)
	}

	trainFeats := features.ApplyAll(train, params, cfg.Workers)
	testFeats := features.ApplyAll(test, params, cfg.Workers)

	// Stage 3: artifacts.
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("Cannot create output dir: %v", err)
	}

	scalerPath := filepath.Join(cfg.OutputDir, "scaler.json")
	scalerJSON, err := params.Save()
	if err != nil {
		log.Fatalf("Scaler serialization error: %v", err)
	}
	if err := os.WriteFile(scalerPath, scalerJSON, 0644); err != nil {
		log.Fatalf("Cannot write %s: %v", scalerPath, err)
	}

	if err := writeFeatureSet(cfg.OutputDir, "train", train, trainFeats, cfg.Horizon); err != nil {
		log.Fatalf("Export error: %v", err)
	}
	if err := writeFeatureSet(cfg.OutputDir, "test", test, testFeats, cfg.Horizon); err != nil {
		log.Fatalf("Export error: %v", err)
	}

	trainWindows := window.Count(len(trainFeats), cfg.HistoryLen, cfg.Horizon, cfg.Stride)
	testWindows := window.Count(len(testFeats), cfg.HistoryLen, cfg.Horizon, cfg.Stride)

	log.Println("=========================================================")
	log.Println("Feature Build Summary")
	log.Println("=========================================================")
	log.Printf("Records:       %d (train %d / test %d)", ds.Len(), len(train), len(test))
	if tr, ok := ds.TimeRange(); ok {
		log.Printf("Range:         %s .. %s", tr.Start.Format("2006-01-02 15:04"), tr.End.Format("2006-01-02 15:04"))
	}
	log.Printf("Windows:       train %d / test %d (history %d, horizon %d, stride %d)",
		trainWindows, testWindows, cfg.HistoryLen, cfg.Horizon, cfg.Stride)
	log.Printf("Artifacts:     %s", cfg.OutputDir)
	log.Printf("Elapsed:       %v", time.Since(startTime).Round(time.Millisecond))
	log.Println("=========================================================")
}

func writeFeatureSet(dir, name string, records []model.RawRecord, feats []model.FeatureVector, horizon int) error {
	rows, err := export.BuildRows(records, feats, horizon)
	if err != nil {
		return err
	}
	if err := export.WriteParquet(filepath.Join(dir, name+".parquet"), rows); err != nil {
		return err
	}
	return export.WriteFeatureCSV(filepath.Join(dir, name+".csv"), rows)
}

// flagSetter carries the flag values so config-file settings can be
// overridden by flags the user actually passed.
type flagSetter struct {
	seed    uint64
	count   int
	history int
	horizon int
	stride  int
	workers int
	ratio   float64
	start   string
	outDir  string
}

func buildConfig(path string, fs flagSetter) (config.Lab, error) {
	var cfg config.Lab
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Lab{}, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["seed"] || cfg.Seed == 0 {
		cfg.Seed = fs.seed
	}
	if set["count"] {
		cfg.Count = fs.count
	}
	if set["start"] {
		t, err := time.Parse("2006-01-02", fs.start)
		if err != nil {
			return config.Lab{}, err
		}
		cfg.Start = t
	}
	if set["ratio"] {
		cfg.SplitRatio = fs.ratio
	}
	if set["history"] {
		cfg.HistoryLen = fs.history
	}
	if set["horizon"] {
		cfg.Horizon = fs.horizon
	}
	if set["stride"] {
		cfg.Stride = fs.stride
	}
	if set["workers"] {
		cfg.Workers = fs.workers
	}
	if set["out-dir"] {
		cfg.OutputDir = fs.outDir
	}

	if err := cfg.Validate(); err != nil {
		return config.Lab{}, err
	}
	return cfg, nil
}

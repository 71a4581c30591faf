package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/novahealth/riskengine/internal/config"
	"github.com/novahealth/riskengine/internal/dataset"
	"github.com/novahealth/riskengine/internal/features"
	"github.com/novahealth/riskengine/internal/platform/logger"
)

// engineer is the shared surface of the per-task feature engineers.
type engineer interface {
	EngineerFeatures(t *dataset.Table) error
	FeatureMap() []string
}

func main() {
	input := flag.String("input", "", "path to the input CSV dataset")
	task := flag.String("task", "", "feature engineering task: obesity or exercise")
	outDir := flag.String("out", "enriched", "directory for the enriched artifacts")
	name := flag.String("name", "", "dataset name for artifact files (defaults to the input basename)")
	flag.Parse()

	_ = config.LoadEnv()
	log, err := logger.New(config.Get("APP_MODE", "dev"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer log.Sync()

	if *input == "" || *task == "" {
		flag.Usage()
		os.Exit(2)
	}

	var eng engineer
	switch *task {
	case "obesity":
		eng = features.NewObesityEngineer()
	case "exercise":
		eng = features.NewExerciseEngineer()
	default:
		log.Fatal("unknown task", "task", *task)
	}

	if *name == "" {
		base := filepath.Base(*input)
		*name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if err := run(*input, *task, *outDir, *name, eng, log); err != nil {
		log.Fatal("enrichment failed", "error", err)
	}
}

func run(input, task, outDir, name string, eng engineer, log *logger.Logger) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	table, err := dataset.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}
	originalFeatures := len(table.Columns())
	log.Info("dataset loaded", "rows", table.Rows(), "columns", originalFeatures)

	if err := eng.EngineerFeatures(table); err != nil {
		return fmt.Errorf("feature engineering failed: %w", err)
	}
	created := eng.FeatureMap()
	encoded, err := encodeCategoricals(table)
	if err != nil {
		return fmt.Errorf("categorical encoding failed: %w", err)
	}
	log.Info("features engineered", "created", len(created), "encoded", encoded)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outCSV := filepath.Join(outDir, name+"_enriched.csv")
	out, err := os.Create(outCSV)
	if err != nil {
		return fmt.Errorf("failed to create output CSV: %w", err)
	}
	defer out.Close()
	if err := table.WriteCSV(out); err != nil {
		return fmt.Errorf("failed to write enriched CSV: %w", err)
	}

	mapPath := filepath.Join(outDir, name+"_feature_map.md")
	if err := dataset.WriteFeatureMap(mapPath, name, created); err != nil {
		return fmt.Errorf("failed to write feature map: %w", err)
	}

	summaryPath := filepath.Join(outDir, name+"_summary.json")
	summary := &dataset.EnrichmentSummary{
		Dataset:          name,
		Task:             task,
		Rows:             table.Rows(),
		OriginalFeatures: originalFeatures,
		TotalFeatures:    len(table.Columns()),
		FeaturesCreated:  created,
	}
	if err := dataset.WriteSummary(summaryPath, summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	log.Info("enrichment complete",
		"csv", outCSV,
		"feature_map", mapPath,
		"summary", summaryPath,
	)
	return nil
}

// encodeCategoricals adds an ordinal <name>_Encoded column for every textual
// column the engineer left unencoded, so downstream training sees numeric
// inputs only. Returns how many columns were encoded.
func encodeCategoricals(t *dataset.Table) (int, error) {
	encoded := 0
	for _, name := range t.Columns() {
		if strings.HasSuffix(name, "_Encoded") || t.Has(name+"_Encoded") {
			continue
		}
		vals, ok := t.Text(name)
		if !ok {
			continue
		}
		if err := t.AddNum(name+"_Encoded", features.NewLabelEncoder().FitTransform(vals)); err != nil {
			return encoded, err
		}
		encoded++
	}
	return encoded, nil
}

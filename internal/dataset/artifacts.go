package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// EnrichmentSummary describes the outcome of one batch enrichment run. It is
// written next to the enriched dataset so offline evaluation can pick it up.
type EnrichmentSummary struct {
	Dataset          string   `json:"dataset"`
	Task             string   `json:"task"`
	Rows             int      `json:"rows"`
	OriginalFeatures int      `json:"original_features"`
	TotalFeatures    int      `json:"total_features"`
	FeaturesCreated  []string `json:"features_created"`
}

// WriteFeatureMap writes the human-readable list of derived features as a
// numbered markdown file.
func WriteFeatureMap(path, title string, entries []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create feature map: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "# %s\n\n", title); err != nil {
		return err
	}
	for i, entry := range entries {
		if _, err := fmt.Fprintf(f, "%d. %s\n", i+1, entry); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes the enrichment summary as indented JSON.
func WriteSummary(path string, summary *EnrichmentSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

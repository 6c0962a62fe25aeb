package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTablesPopulated(t *testing.T) {
	r := Default()

	if len(r.Extraction.TimelineBuckets) == 0 {
		t.Error("default timeline buckets empty")
	}
	if len(r.Spam.DisposableDomains) == 0 {
		t.Error("default disposable domains empty")
	}
	if r.Spam.Threshold != 50 {
		t.Errorf("spam threshold = %v, want 50", r.Spam.Threshold)
	}
	if r.Duplicate.MatchThreshold != 60 {
		t.Errorf("duplicate threshold = %v, want 60", r.Duplicate.MatchThreshold)
	}
	if r.Scoring.HotThreshold != 80 {
		t.Errorf("hot threshold = %v, want 80", r.Scoring.HotThreshold)
	}
	if len(r.Intelligence.Intents) != 6 {
		t.Errorf("intent categories = %d, want 6", len(r.Intelligence.Intents))
	}
	// The points table is ordered most to least urgent; a scan must hit
	// the highest-value keyword first.
	if r.Scoring.TimelinePoints[0].Points < r.Scoring.TimelinePoints[len(r.Scoring.TimelinePoints)-1].Points {
		t.Error("timeline points table is not ordered by urgency")
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	doc := []byte(`
spam:
  name_keywords: ["spammy"]
  threshold: 70
scoring:
  hot_threshold: 90
`)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("writing rules file: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if r.Spam.Threshold != 70 {
		t.Errorf("spam threshold = %v, want overridden 70", r.Spam.Threshold)
	}
	if len(r.Spam.NameKeywords) != 1 || r.Spam.NameKeywords[0] != "spammy" {
		t.Errorf("spam name keywords = %v, want replaced wholesale", r.Spam.NameKeywords)
	}
	if r.Scoring.HotThreshold != 90 {
		t.Errorf("hot threshold = %v, want overridden 90", r.Scoring.HotThreshold)
	}
	// Untouched sections keep their defaults.
	if r.Duplicate.MatchThreshold != 60 {
		t.Errorf("duplicate threshold = %v, want default 60", r.Duplicate.MatchThreshold)
	}
	if len(r.Extraction.TimelineBuckets) == 0 {
		t.Error("extraction defaults lost on overlay")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing rules file")
	}
}

// Package rules holds the keyword lists and thresholds that drive the
// rule-based extractors and classifiers. Everything here is data: the
// compiled-in defaults match the production tuning, and any table can be
// overridden from a yaml file without touching the engine.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordBucket maps a set of trigger keywords to an output label.
// Buckets are evaluated in declaration order; the first hit wins.
type KeywordBucket struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// KeywordPoints is one ordered entry in a points lookup table.
type KeywordPoints struct {
	Keyword string  `yaml:"keyword"`
	Points  float64 `yaml:"points"`
}

// IntentCategory is one intent class with its phrase patterns.
type IntentCategory struct {
	Name    string   `yaml:"name"`
	Phrases []string `yaml:"phrases"`
}

// TopicCategory is one topic class with its keywords.
type TopicCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type ExtractionRules struct {
	NameStopWords     []string        `yaml:"name_stop_words"`
	BareNameStopWords []string        `yaml:"bare_name_stop_words"`
	SellingKeywords   []string        `yaml:"selling_keywords"`
	BuyingKeywords    []string        `yaml:"buying_keywords"`
	TimelineBuckets   []KeywordBucket `yaml:"timeline_buckets"`
	PropertyTypes     []KeywordBucket `yaml:"property_types"`
	ConditionBuckets  []KeywordBucket `yaml:"condition_buckets"`
	PreferenceWords   []string        `yaml:"preference_words"`
	UrgencyKeywords   []string        `yaml:"urgency_keywords"`
}

type ValidationRules struct {
	FakeNames        []string `yaml:"fake_names"`
	FakeEmailMarkers []string `yaml:"fake_email_markers"`
}

type SpamRules struct {
	NameKeywords      []string `yaml:"name_keywords"`
	DisposableDomains []string `yaml:"disposable_domains"`
	FakePhonePatterns []string `yaml:"fake_phone_patterns"`
	Threshold         float64  `yaml:"threshold"`
}

type DuplicateRules struct {
	MatchThreshold float64 `yaml:"match_threshold"`
	MaxMatches     int     `yaml:"max_matches"`
}

type ScoringRules struct {
	TimelinePoints     []KeywordPoints `yaml:"timeline_points"`
	HotThreshold       float64         `yaml:"hot_threshold"`
	WarmThreshold      float64         `yaml:"warm_threshold"`
	QualifiedThreshold float64         `yaml:"qualified_threshold"`
	ColdThreshold      float64         `yaml:"cold_threshold"`
}

type IntelligenceRules struct {
	PositiveWords   []string         `yaml:"positive_words"`
	NegativeWords   []string         `yaml:"negative_words"`
	UrgencyKeywords []string         `yaml:"urgency_keywords"`
	Intents         []IntentCategory `yaml:"intents"`
	Topics          []TopicCategory  `yaml:"topics"`
}

// Rules is the full tuning surface for the lead engine.
type Rules struct {
	Extraction   ExtractionRules   `yaml:"extraction"`
	Validation   ValidationRules   `yaml:"validation"`
	Spam         SpamRules         `yaml:"spam"`
	Duplicate    DuplicateRules    `yaml:"duplicate"`
	Scoring      ScoringRules      `yaml:"scoring"`
	Intelligence IntelligenceRules `yaml:"intelligence"`
}

// Load returns the defaults overlaid with the yaml file at path.
// Tables present in the file replace the default table wholesale;
// absent tables keep their defaults.
func Load(path string) (*Rules, error) {
	r := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	return r, nil
}

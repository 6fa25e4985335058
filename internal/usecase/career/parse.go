package career

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"careercatalyst/internal/domain/career"

	"github.com/tidwall/gjson"
)

// ErrSchemaMismatch marks generation output that parsed as JSON but does
// not carry the structure the prompt demanded.
var ErrSchemaMismatch = errors.New("generation output does not match expected schema")

// CleanCompletion strips markdown code fences the model sometimes wraps
// around its JSON despite the system prompt.
func CleanCompletion(raw string) string {
	if !strings.Contains(raw, "```") {
		return strings.TrimSpace(raw)
	}

	start := strings.Index(raw, "```")
	rest := raw[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 && nl < 16 {
		// Skip a language tag such as "json" on the fence line.
		rest = rest[nl+1:]
	}
	if end := strings.LastIndex(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func ParseRecommendations(raw string) (career.RecommendationSet, error) {
	clean := CleanCompletion(raw)
	if err := requireFields(clean, "careerMatches"); err != nil {
		return career.RecommendationSet{}, err
	}
	if !gjson.Get(clean, "careerMatches").IsArray() || len(gjson.Get(clean, "careerMatches").Array()) == 0 {
		return career.RecommendationSet{}, fmt.Errorf("%w: careerMatches empty", ErrSchemaMismatch)
	}
	if !gjson.Get(clean, "careerMatches.0.role").Exists() {
		return career.RecommendationSet{}, fmt.Errorf("%w: careerMatches entries missing role", ErrSchemaMismatch)
	}

	var out career.RecommendationSet
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return career.RecommendationSet{}, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return out, nil
}

func ParseTransitions(raw string) (career.TransitionSet, error) {
	clean := CleanCompletion(raw)
	if err := requireFields(clean, "recommendations"); err != nil {
		return career.TransitionSet{}, err
	}
	recs := gjson.Get(clean, "recommendations")
	if !recs.IsArray() || len(recs.Array()) == 0 {
		return career.TransitionSet{}, fmt.Errorf("%w: recommendations empty", ErrSchemaMismatch)
	}
	if !gjson.Get(clean, "recommendations.0.role").Exists() {
		return career.TransitionSet{}, fmt.Errorf("%w: recommendations entries missing role", ErrSchemaMismatch)
	}

	var out career.TransitionSet
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return career.TransitionSet{}, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return out, nil
}

func ParseGapAnalysis(raw string) (career.GapAnalysis, error) {
	clean := CleanCompletion(raw)
	if err := requireFields(clean, "analysis", "analysis.currentSkillsAssessment", "analysis.missingSkills"); err != nil {
		return career.GapAnalysis{}, err
	}

	var envelope struct {
		Analysis career.GapAnalysis `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(clean), &envelope); err != nil {
		return career.GapAnalysis{}, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return envelope.Analysis, nil
}

func ParseRoadmap(raw string) (career.Roadmap, error) {
	clean := CleanCompletion(raw)
	if err := requireFields(clean, "roadmap", "roadmap.phases"); err != nil {
		return career.Roadmap{}, err
	}
	if len(gjson.Get(clean, "roadmap.phases").Array()) == 0 {
		return career.Roadmap{}, fmt.Errorf("%w: roadmap.phases empty", ErrSchemaMismatch)
	}

	var envelope struct {
		Roadmap career.Roadmap `json:"roadmap"`
	}
	if err := json.Unmarshal([]byte(clean), &envelope); err != nil {
		return career.Roadmap{}, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return envelope.Roadmap, nil
}

func requireFields(clean string, paths ...string) error {
	if clean == "" {
		return fmt.Errorf("%w: empty response", ErrSchemaMismatch)
	}
	if !gjson.Valid(clean) {
		return fmt.Errorf("%w: not valid JSON", ErrSchemaMismatch)
	}
	for _, p := range paths {
		if !gjson.Get(clean, p).Exists() {
			return fmt.Errorf("%w: missing %q", ErrSchemaMismatch, p)
		}
	}
	return nil
}

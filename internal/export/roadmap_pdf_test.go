package export

import (
	"bytes"
	"errors"
	"testing"

	"careercatalyst/internal/domain/career"
)

func sampleInputs() (career.Roadmap, career.GapAnalysis) {
	roadmap := career.Roadmap{
		EstimatedTotalDuration: "4 months",
		Phases: []career.RoadmapPhase{
			{
				Phase:      1,
				Title:      "Foundations",
				Duration:   "2 months",
				FocusAreas: []string{"language basics"},
				Skills: []career.RoadmapSkill{
					{
						Skill: "Go",
						Level: "Intermediate",
						Resources: []career.RoadmapResource{
							{Type: "Course", Name: "Go Tour", Platform: "go.dev", Duration: "1 week", Cost: "free"},
						},
					},
				},
				Milestones: []string{"CLI project"},
			},
		},
	}
	gap := career.GapAnalysis{
		Role: "Backend Developer",
		CurrentSkillsAssessment: career.SkillsAssessment{
			Strengths: []string{"SQL"},
			Relevance: "solid data background",
		},
		MissingSkills: []career.MissingSkill{
			{Skill: "Go", Priority: "High", TimeToAcquire: "2 months", Impact: "core language"},
		},
	}
	return roadmap, gap
}

func TestRenderRoadmap(t *testing.T) {
	roadmap, gap := sampleInputs()

	out, err := RenderRoadmap(roadmap, gap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty PDF")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
}

func TestRenderRoadmap_Deterministic(t *testing.T) {
	roadmap, gap := sampleInputs()

	a, err := RenderRoadmap(roadmap, gap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := RenderRoadmap(roadmap, gap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("same inputs must render the same size, got %d vs %d", len(a), len(b))
	}
}

func TestRenderRoadmap_MalformedInput(t *testing.T) {
	roadmap, gap := sampleInputs()

	_, err := RenderRoadmap(career.Roadmap{}, gap)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for empty phases, got %v", err)
	}

	_, err = RenderRoadmap(roadmap, career.GapAnalysis{})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for missing gap section, got %v", err)
	}
}

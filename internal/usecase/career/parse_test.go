package career

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const validRecommendations = `{
  "careerMatches": [
    {
      "role": "Backend Developer",
      "matchPercentage": "85%",
      "averageSalary": "8-15 LPA",
      "marketDemand": "High",
      "description": "Builds server-side systems",
      "requiredSkills": ["Go", "SQL"],
      "skillGaps": [{"skill": "Kubernetes", "priority": "High", "timeToAcquire": "2 months", "impact": "Deployment ownership"}],
      "learningRoadmap": [{"phase": 1, "focus": "Fundamentals", "duration": "1 month", "resources": []}]
    }
  ]
}`

func TestCleanCompletion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose stripped by fence", "Here you go:\n```json\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CleanCompletion(tc.in))
		})
	}
}

func TestParseRecommendations(t *testing.T) {
	out, err := ParseRecommendations(validRecommendations)
	require.NoError(t, err)
	require.Len(t, out.CareerMatches, 1)
	require.Equal(t, "Backend Developer", out.CareerMatches[0].Role)
	require.Len(t, out.CareerMatches[0].SkillGaps, 1)
}

func TestParseRecommendations_Fenced(t *testing.T) {
	out, err := ParseRecommendations("```json\n" + validRecommendations + "\n```")
	require.NoError(t, err)
	require.Len(t, out.CareerMatches, 1)
}

func TestParseRecommendations_SchemaMismatch(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"not json", "sorry, I cannot help with that"},
		{"wrong shape", `{"matches": []}`},
		{"empty matches", `{"careerMatches": []}`},
		{"missing role", `{"careerMatches": [{"title": "x"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRecommendations(tc.in)
			require.ErrorIs(t, err, ErrSchemaMismatch)
		})
	}
}

func TestParseTransitions(t *testing.T) {
	raw := `{"recommendations": [{"role": "Engineering Manager", "compatibilityScore": "78", "transitionTime": "6 months"}]}`
	out, err := ParseTransitions(raw)
	require.NoError(t, err)
	require.Len(t, out.Recommendations, 1)
	require.Equal(t, "Engineering Manager", out.Recommendations[0].Role)

	_, err = ParseTransitions(`{"recommendations": []}`)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseGapAnalysis(t *testing.T) {
	raw := `{
	  "analysis": {
	    "role": "Data Engineer",
	    "currentSkillsAssessment": {"strengths": ["SQL"], "relevance": "strong base"},
	    "missingSkills": [{"skill": "Spark", "priority": "High", "timeToAcquire": "3 months", "impact": "batch processing"}]
	  }
	}`
	out, err := ParseGapAnalysis(raw)
	require.NoError(t, err)
	require.Equal(t, "Data Engineer", out.Role)
	require.Len(t, out.MissingSkills, 1)
	require.Equal(t, "Spark", out.MissingSkills[0].Skill)

	_, err = ParseGapAnalysis(`{"role": "Data Engineer"}`)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseRoadmap(t *testing.T) {
	raw := `{
	  "roadmap": {
	    "estimatedTotalDuration": "6 months",
	    "phases": [{"phase": 1, "title": "Foundations", "duration": "2 months", "focusAreas": ["basics"], "skills": [], "milestones": ["first project"]}]
	  }
	}`
	out, err := ParseRoadmap(raw)
	require.NoError(t, err)
	require.Equal(t, "6 months", out.EstimatedTotalDuration)
	require.Len(t, out.Phases, 1)

	_, err = ParseRoadmap(`{"roadmap": {"phases": []}}`)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

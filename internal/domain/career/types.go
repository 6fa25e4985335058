// Package career holds the transient result types produced per request from
// the upstream generation service. Nothing here is persisted.
package career

// RecommendationSet is the generic/Fresher recommendation response.
type RecommendationSet struct {
	CareerMatches []CareerMatch `json:"careerMatches"`
}

type CareerMatch struct {
	Role            string           `json:"role"`
	MatchPercentage string           `json:"matchPercentage"`
	AverageSalary   string           `json:"averageSalary"`
	MarketDemand    string           `json:"marketDemand"`
	Description     string           `json:"description"`
	RequiredSkills  []string         `json:"requiredSkills"`
	SkillGaps       []SkillGap       `json:"skillGaps"`
	LearningRoadmap []RoadmapOutline `json:"learningRoadmap"`
}

type SkillGap struct {
	Skill         string `json:"skill"`
	Priority      string `json:"priority"`
	TimeToAcquire string `json:"timeToAcquire"`
	Impact        string `json:"impact"`
}

// RoadmapOutline is the lightweight per-role roadmap nested inside a
// recommendation, distinct from the standalone Roadmap below.
type RoadmapOutline struct {
	Phase     int               `json:"phase"`
	Focus     string            `json:"focus"`
	Duration  string            `json:"duration"`
	Resources []OutlineResource `json:"resources"`
}

type OutlineResource struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	Platform   string `json:"platform"`
	URL        string `json:"url"`
	Difficulty string `json:"difficulty"`
}

// TransitionSet is the Experienced recommendation response; each entry
// describes a candidate career switch rather than an entry-level match.
type TransitionSet struct {
	Recommendations []TransitionMatch `json:"recommendations"`
}

type TransitionMatch struct {
	Role                 string `json:"role"`
	CompatibilityScore   string `json:"compatibilityScore"`
	Description          string `json:"description"`
	AverageSalary        string `json:"averageSalary"`
	MarketDemand         string `json:"marketDemand"`
	TransitionTime       string `json:"transitionTime"`
	TransitionDifficulty string `json:"transitionDifficulty"`
	RemoteWorkPotential  string `json:"remoteWorkPotential"`
	ShortTermGrowth      string `json:"shortTermGrowth"`
	LongTermGrowth       string `json:"longTermGrowth"`
	SkillTransferability string `json:"skillTransferability"`
	IndustryTrends       string `json:"industryTrends"`
}

// GapAnalysis is the "analysis" object of a skill-gap response.
type GapAnalysis struct {
	Role                    string           `json:"role"`
	CurrentSkillsAssessment SkillsAssessment `json:"currentSkillsAssessment"`
	MissingSkills           []MissingSkill   `json:"missingSkills"`
	TransitionPlan          *TransitionPlan  `json:"transitionPlan,omitempty"`
}

type SkillsAssessment struct {
	Strengths []string `json:"strengths"`
	Relevance string   `json:"relevance"`
}

type MissingSkill struct {
	Skill              string       `json:"skill"`
	Priority           string       `json:"priority"`
	TimeToAcquire      string       `json:"timeToAcquire"`
	Impact             string       `json:"impact"`
	PrerequisiteSkills []string     `json:"prerequisiteSkills"`
	LearningPath       LearningPath `json:"learningPath"`
}

type LearningPath struct {
	Steps     []string      `json:"steps"`
	Resources []GapResource `json:"resources"`
}

type GapResource struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
}

// TransitionPlan appears on the Experienced/role-switch path only.
type TransitionPlan struct {
	Phases []TransitionPhase `json:"phases"`
}

type TransitionPhase struct {
	Phase    int    `json:"phase"`
	Focus    string `json:"focus"`
	Duration string `json:"duration"`
}

// Roadmap is the standalone phased learning plan.
type Roadmap struct {
	EstimatedTotalDuration string         `json:"estimatedTotalDuration"`
	Phases                 []RoadmapPhase `json:"phases"`
}

type RoadmapPhase struct {
	Phase      int            `json:"phase"`
	Title      string         `json:"title"`
	Duration   string         `json:"duration"`
	FocusAreas []string       `json:"focusAreas"`
	Skills     []RoadmapSkill `json:"skills"`
	Milestones []string       `json:"milestones"`
}

type RoadmapSkill struct {
	Skill     string            `json:"skill"`
	Level     string            `json:"level"`
	Resources []RoadmapResource `json:"resources"`
	Projects  []PracticeProject `json:"projects,omitempty"`
}

type RoadmapResource struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
	Cost     string `json:"cost"`
}

type PracticeProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Difficulty  string   `json:"difficulty"`
}

// ProfileHit is one public-profile search result.
type ProfileHit struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Description  string `json:"description"`
	ProfileURL   string `json:"profileUrl"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

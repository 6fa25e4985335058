package career

import (
	"fmt"
	"strings"

	"careercatalyst/internal/domain/profile"
)

// SystemPrompt pins the model into JSON-only mode; everything downstream
// assumes a single JSON document, possibly fenced.
const SystemPrompt = "You are a backend API. Respond ONLY with valid JSON - no explanations, markdown, or text outside JSON."

const recommendationFormat = `{
    "careerMatches": [
        {
            "role": "job title",
            "matchPercentage": "85%",
            "averageSalary": "salary range",
            "marketDemand": "High/Medium/Low",
            "description": "Brief role description",
            "requiredSkills": ["skill1", "skill2"],
            "skillGaps": [
                {
                    "skill": "missing skill",
                    "priority": "High/Medium/Low",
                    "timeToAcquire": "estimated time",
                    "impact": "What this skill enables"
                }
            ],
            "learningRoadmap": [
                {
                    "phase": 1,
                    "focus": "What to learn in this phase",
                    "duration": "estimated time",
                    "resources": [
                        {
                            "type": "Course/Book/Tutorial",
                            "name": "resource name",
                            "platform": "where to find it",
                            "url": "link to resource",
                            "difficulty": "Beginner/Intermediate/Advanced"
                        }
                    ]
                }
            ]
        }
    ]
}`

func RecommendationPrompt(skills []string) string {
	var b strings.Builder
	b.WriteString("You are a career advisor AI specializing in technology careers. Based on the provided skills, analyze and suggest suitable job roles, skill gaps, and create a learning roadmap.\n\n")
	fmt.Fprintf(&b, "Given skills: %s\n\n", strings.Join(skills, ", "))
	b.WriteString("Please provide your response in the following JSON format:\n")
	b.WriteString(recommendationFormat)
	b.WriteString("\n\nEnsure the suggestions are modern, relevant to current industry demands, and include practical learning resources.")
	return b.String()
}

func FresherRecommendationPrompt(skills, interestedRoles []string, salaryPreference int64, workMode profile.WorkMode) string {
	var b strings.Builder
	b.WriteString("You are a career advisor AI specializing in entry-level technology careers. Suggest suitable job roles, skill gaps, and a learning roadmap for a fresher.\n\n")
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(skills, ", "))
	fmt.Fprintf(&b, "Interested roles: %s\n", strings.Join(interestedRoles, ", "))
	fmt.Fprintf(&b, "Expected salary: %d per year\n", salaryPreference)
	fmt.Fprintf(&b, "Preferred work mode: %s\n\n", workMode)
	b.WriteString("Weigh the interested roles and preferences when scoring matches. Respond in the following JSON format:\n")
	b.WriteString(recommendationFormat)
	return b.String()
}

func TransitionPrompt(skills []string, experienceYears int, reasonForSwitch string, workMode profile.WorkMode) string {
	var b strings.Builder
	b.WriteString("You are a career transition advisor AI for experienced professionals considering a switch.\n\n")
	fmt.Fprintf(&b, "Current skills: %s\n", strings.Join(skills, ", "))
	fmt.Fprintf(&b, "Years of experience: %d\n", experienceYears)
	fmt.Fprintf(&b, "Reason for switching: %s\n", reasonForSwitch)
	fmt.Fprintf(&b, "Preferred work mode: %s\n\n", workMode)
	b.WriteString(`Suggest career transitions in this JSON format:
{
    "recommendations": [
        {
            "role": "target role",
            "compatibilityScore": "85",
            "description": "why this transition fits",
            "averageSalary": "salary range",
            "marketDemand": "High/Medium/Low",
            "transitionTime": "estimated time",
            "transitionDifficulty": "Low/Medium/High",
            "remoteWorkPotential": "how remote-friendly the role is",
            "shortTermGrowth": "outlook for the next 1-2 years",
            "longTermGrowth": "outlook for 5+ years",
            "skillTransferability": "which current skills carry over",
            "industryTrends": "relevant industry trends"
        }
    ]
}`)
	return b.String()
}

func GapAnalysisPrompt(currentSkills []string, targetRole string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As a career development AI, analyze the skill gap for a %s position.\n\n", targetRole)
	fmt.Fprintf(&b, "Current skills: %s\n", strings.Join(currentSkills, ", "))
	fmt.Fprintf(&b, "Target role: %s\n\n", targetRole)
	b.WriteString(`Provide a detailed skill gap analysis in this JSON format:
{
    "analysis": {
        "role": "` + targetRole + `",
        "currentSkillsAssessment": {
            "strengths": ["skill1", "skill2"],
            "relevance": "How current skills relate to the role"
        },
        "missingSkills": [
            {
                "skill": "name of skill",
                "priority": "High/Medium/Low",
                "timeToAcquire": "estimated time",
                "impact": "What this skill enables",
                "prerequisiteSkills": ["skill1", "skill2"],
                "learningPath": {
                    "steps": ["step1", "step2"],
                    "resources": [
                        {
                            "type": "resource type",
                            "name": "resource name",
                            "url": "resource link",
                            "duration": "estimated time"
                        }
                    ]
                }
            }
        ],
        "transitionPlan": {
            "phases": [
                {
                    "phase": 1,
                    "focus": "what to focus on",
                    "duration": "estimated time"
                }
            ]
        }
    }
}`)
	return b.String()
}

func RoadmapPrompt(currentSkills, targetSkills []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a personalized learning roadmap to acquire these target skills: %s\n", strings.Join(targetSkills, ", "))
	fmt.Fprintf(&b, "Current skills: %s\n\n", strings.Join(currentSkills, ", "))
	b.WriteString(`Provide the roadmap in this JSON format:
{
    "roadmap": {
        "estimatedTotalDuration": "total time",
        "phases": [
            {
                "phase": 1,
                "title": "phase title",
                "duration": "estimated time",
                "focusAreas": ["area1", "area2"],
                "skills": [
                    {
                        "skill": "skill name",
                        "level": "target proficiency level",
                        "resources": [
                            {
                                "type": "resource type",
                                "name": "resource name",
                                "platform": "platform name",
                                "url": "resource link",
                                "duration": "estimated time",
                                "cost": "free/paid/subscription"
                            }
                        ],
                        "projects": [
                            {
                                "title": "project title",
                                "description": "what to build",
                                "skills": ["skills practiced"],
                                "difficulty": "level"
                            }
                        ]
                    }
                ],
                "milestones": ["milestone1", "milestone2"]
            }
        ]
    }
}`)
	return b.String()
}

// Package export renders a roadmap plus gap analysis into a paginated PDF.
// Rendering is a pure function of its inputs: no network, no clock.
package export

import (
	"bytes"
	"errors"
	"fmt"

	"careercatalyst/internal/domain/career"

	"github.com/go-pdf/fpdf"
)

var ErrMalformedInput = errors.New("export input missing required fields")

const (
	fontFamily = "Helvetica"
	footerText = "Generated by CareerCatalyst - Your Career Development Partner"
)

// RenderRoadmap produces the attachment PDF: header, current skills,
// missing skills, roadmap phases, footer — in that order.
func RenderRoadmap(roadmap career.Roadmap, gap career.GapAnalysis) ([]byte, error) {
	if len(roadmap.Phases) == 0 {
		return nil, fmt.Errorf("%w: roadmap has no phases", ErrMalformedInput)
	}
	if gap.MissingSkills == nil {
		return nil, fmt.Errorf("%w: gap analysis has no missing-skills section", ErrMalformedInput)
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	title(doc, "Your Learning Roadmap")

	heading(doc, "Current Skills Assessment")
	for _, s := range gap.CurrentSkillsAssessment.Strengths {
		bullet(doc, s)
	}
	if gap.CurrentSkillsAssessment.Relevance != "" {
		subheading(doc, "Skills Relevance")
		paragraph(doc, gap.CurrentSkillsAssessment.Relevance)
	}

	heading(doc, "Skills to Develop")
	for _, skill := range gap.MissingSkills {
		subheading(doc, skill.Skill)
		paragraph(doc, "Priority: "+skill.Priority)
		paragraph(doc, "Time to Acquire: "+skill.TimeToAcquire)
		if skill.Impact != "" {
			paragraph(doc, "Impact: "+skill.Impact)
		}
		doc.Ln(2)
	}

	heading(doc, "Learning Roadmap")
	if roadmap.EstimatedTotalDuration != "" {
		subheading(doc, "Total Duration: "+roadmap.EstimatedTotalDuration)
		doc.Ln(2)
	}
	for _, phase := range roadmap.Phases {
		renderPhase(doc, phase)
	}

	heading(doc, "Tips for Success")
	for _, tip := range []string{
		"Set aside dedicated time each day for learning",
		"Focus on hands-on practice and project work",
		"Join relevant online communities for support",
		"Track your progress regularly",
		"Take breaks and avoid burnout",
	} {
		bullet(doc, tip)
	}

	doc.Ln(6)
	doc.SetFont(fontFamily, "", 10)
	doc.SetTextColor(128, 128, 128)
	doc.CellFormat(0, 6, footerText, "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPhase(doc *fpdf.Fpdf, phase career.RoadmapPhase) {
	doc.SetFont(fontFamily, "B", 15)
	doc.MultiCell(0, 8, fmt.Sprintf("Phase %d: %s", phase.Phase, phase.Title), "", "L", false)
	paragraph(doc, "Duration: "+phase.Duration)

	if len(phase.FocusAreas) > 0 {
		subheading(doc, "Focus Areas")
		for _, area := range phase.FocusAreas {
			bullet(doc, area)
		}
	}

	for _, skill := range phase.Skills {
		subheading(doc, skill.Skill)
		paragraph(doc, "Target Level: "+skill.Level)

		if len(skill.Resources) > 0 {
			paragraph(doc, "Learning Resources:")
			for _, res := range skill.Resources {
				bullet(doc, fmt.Sprintf("%s (%s)", res.Name, res.Type))
				indented(doc, "Platform: "+res.Platform)
				indented(doc, "Duration: "+res.Duration)
				indented(doc, "Cost: "+res.Cost)
			}
		}

		if len(skill.Projects) > 0 {
			paragraph(doc, "Practice Projects:")
			for _, project := range skill.Projects {
				bullet(doc, project.Title)
				indented(doc, project.Description)
				indented(doc, "Difficulty: "+project.Difficulty)
			}
		}
	}

	if len(phase.Milestones) > 0 {
		subheading(doc, "Milestones")
		for _, m := range phase.Milestones {
			bullet(doc, m)
		}
	}
	doc.Ln(4)
}

func title(doc *fpdf.Fpdf, text string) {
	doc.SetFont(fontFamily, "B", 24)
	doc.CellFormat(0, 12, text, "", 1, "C", false, 0, "")
	doc.Ln(4)
}

func heading(doc *fpdf.Fpdf, text string) {
	doc.SetFont(fontFamily, "B", 17)
	doc.CellFormat(0, 10, text, "B", 1, "L", false, 0, "")
	doc.Ln(2)
}

func subheading(doc *fpdf.Fpdf, text string) {
	doc.SetFont(fontFamily, "B", 13)
	doc.MultiCell(0, 7, text, "", "L", false)
}

func paragraph(doc *fpdf.Fpdf, text string) {
	doc.SetFont(fontFamily, "", 11)
	doc.MultiCell(0, 6, text, "", "L", false)
}

func bullet(doc *fpdf.Fpdf, text string) {
	doc.SetFont(fontFamily, "", 11)
	doc.MultiCell(0, 6, "- "+text, "", "L", false)
}

func indented(doc *fpdf.Fpdf, text string) {
	doc.SetFont(fontFamily, "", 11)
	doc.SetX(doc.GetX() + 6)
	doc.MultiCell(0, 6, text, "", "L", false)
}

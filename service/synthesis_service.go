package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/doclibhq/doclib-be/types"
)

// SynthesisService renders a synthesized document from user facts and
// selected sources. Rendering is pure: for fixed inputs and a fixed clock the
// output content is byte-identical on every call. Callers guard the
// preconditions (non-empty facts, at least one source) before invoking it.
type SynthesisService interface {
	Synthesize(facts string, sources []types.LibraryDocument, format types.Format, createdBy string) types.SynthesizedDocument
}

type synthesisService struct {
	now func() time.Time
}

func NewSynthesisService() SynthesisService {
	return &synthesisService{now: time.Now}
}

// NewSynthesisServiceWithClock pins the clock, which pins the generation
// timestamps rendered into the templates.
func NewSynthesisServiceWithClock(now func() time.Time) SynthesisService {
	return &synthesisService{now: now}
}

func (s *synthesisService) Synthesize(facts string, sources []types.LibraryDocument, format types.Format, createdBy string) types.SynthesizedDocument {
	if !format.Valid() {
		format = types.FormatReport
	}
	now := s.now()

	var content string
	switch format {
	case types.FormatReport:
		content = renderReport(facts, sources, now)
	case types.FormatSummary:
		content = renderSummary(facts, sources, now)
	case types.FormatMemo:
		content = renderMemo(facts, sources, now)
	case types.FormatPresentation:
		content = renderPresentation(facts, sources, now)
	case types.FormatArticle:
		content = renderArticle(facts, sources, now)
	}

	refs := make([]types.SourceRef, len(sources))
	for i, doc := range sources {
		refs[i] = types.SourceRef{ID: doc.ID, Name: doc.Name}
	}
	if createdBy == "" {
		createdBy = "anonymous"
	}

	return types.SynthesizedDocument{
		Title:           synthesisTitle(facts, format),
		Content:         content,
		Format:          format,
		SourceFacts:     facts,
		SourceDocuments: refs,
		WordCount:       len(strings.Fields(content)),
		CreatedAt:       now,
		CreatedBy:       createdBy,
	}
}

// synthesisTitle is the per-format label followed by the first three words of
// the facts.
func synthesisTitle(facts string, format types.Format) string {
	words := strings.Split(facts, " ")
	if len(words) > 3 {
		words = words[:3]
	}
	return format.Title() + ": " + strings.Join(words, " ")
}

func renderReport(facts string, sources []types.LibraryDocument, now time.Time) string {
	blocks := make([]string, len(sources))
	for i, doc := range sources {
		blocks[i] = fmt.Sprintf("\n### Insights from \"%s\"\n\n%s\n\n**Key Tags:** %s\n",
			doc.Name,
			summaryOr(doc, "This document provides relevant context and supporting information for the analysis."),
			tagsJoined(doc.Tags, "No tags available"))
	}

	return fmt.Sprintf(`# Comprehensive Analysis Report

## Executive Summary

Based on the analysis of %d source documents and the provided facts, this report synthesizes key insights and recommendations.

## Key Facts

%s

## Analysis

The information provided aligns with several key themes identified in the source documents:

%s

## Synthesis and Recommendations

1. **Primary Finding**: The facts presented suggest significant implications for strategic decision-making.

2. **Supporting Evidence**: Cross-referencing with the document library reveals consistent patterns and validation points.

3. **Strategic Implications**: These findings should inform future planning and resource allocation.

## Conclusion

The synthesis of new facts with existing documentation provides a comprehensive foundation for informed decision-making.

---
*Generated on %s using %d source documents*`,
		len(sources), facts, strings.Join(blocks, "\n"), now.Format(LocaleTimeLayout), len(sources))
}

func renderSummary(facts string, sources []types.LibraryDocument, now time.Time) string {
	lines := make([]string, len(sources))
	for i, doc := range sources {
		lines[i] = fmt.Sprintf("• %s: %s", doc.Name, tagsJoined(firstN(doc.Tags, 2), "Supporting data"))
	}

	return fmt.Sprintf(`# Executive Summary

## Overview

This summary synthesizes new information with insights from %d source documents to provide actionable intelligence.

## Key Points

• %s
• Analysis supported by comprehensive document review
• Strategic implications identified across multiple domains

## Source Integration

%s

## Recommendations

1. Immediate action required based on new facts
2. Continuous monitoring of related indicators
3. Strategic alignment with existing initiatives

---
*Executive Summary | %s*`,
		len(sources), strings.Split(facts, ".")[0], strings.Join(lines, "\n"), now.Format(LocaleDateLayout))
}

func renderMemo(facts string, sources []types.LibraryDocument, now time.Time) string {
	lines := make([]string, len(sources))
	for i, doc := range sources {
		topic := "relevant topics"
		if len(doc.Tags) > 0 {
			topic = doc.Tags[0]
		}
		lines[i] = fmt.Sprintf("%d. **%s**: Provides context on %s", i+1, doc.Name, topic)
	}

	return fmt.Sprintf(`**MEMORANDUM**

**TO:** Leadership Team
**FROM:** Document Synthesis System
**DATE:** %s
**RE:** Strategic Intelligence Update

## Purpose

This memo synthesizes recent facts with our document library to provide strategic guidance.

## Background

%s

## Analysis

Based on review of %d relevant documents, the following patterns emerge:

%s

## Recommendations

- **Immediate**: Review and validate findings
- **Short-term**: Develop action plan based on synthesis
- **Long-term**: Monitor for additional related developments

## Next Steps

Please review this synthesis and provide feedback for further analysis.`,
		now.Format(LocaleDateLayout), facts, len(sources), strings.Join(lines, "\n"))
}

func renderPresentation(facts string, sources []types.LibraryDocument, now time.Time) string {
	var themes []string
	for _, doc := range sources {
		themes = append(themes, doc.Tags...)
	}
	points := make([]string, len(sources))
	for i, doc := range sources {
		points[i] = fmt.Sprintf("%d. %s - Supporting evidence", i+1, doc.Name)
	}

	return fmt.Sprintf(`# Presentation Outline

## Slide 1: Title
**Topic**: Strategic Intelligence Brief
**Date**: %s

## Slide 2: Key Facts
%s

## Slide 3: Source Analysis
- **Documents Reviewed**: %d
- **Key Themes**: %s

## Slide 4: Synthesis Points
%s

## Slide 5: Strategic Implications
- Impact on current operations
- Future planning considerations
- Risk and opportunity assessment

## Slide 6: Recommendations
1. Immediate actions
2. Strategic planning updates
3. Monitoring protocols

## Slide 7: Next Steps
- Review and validation
- Implementation planning
- Follow-up timeline

---
*Speaker Notes: Use this outline to develop detailed slides with supporting visuals*`,
		now.Format(LocaleDateLayout), facts, len(sources),
		strings.Join(firstN(themes, 5), ", "), strings.Join(points, "\n"))
}

func renderArticle(facts string, sources []types.LibraryDocument, now time.Time) string {
	blocks := make([]string, len(sources))
	for i, doc := range sources {
		blocks[i] = fmt.Sprintf("\n**%s**\n\n%s\n\n*Keywords: %s*\n",
			doc.Name,
			summaryOr(doc, "This document contributes valuable perspective to our analysis."),
			tagsJoined(doc.Tags, "General analysis"))
	}

	return fmt.Sprintf(`# Strategic Intelligence: New Developments and Analysis

*Published %s*

## Introduction

Recent developments have provided new insights that, when analyzed against our comprehensive document library, reveal important strategic implications.

## Key Developments

%s

## Analysis Framework

This analysis draws upon %d source documents to provide context and validation:

%s

## Strategic Synthesis

The integration of new facts with existing knowledge reveals several critical insights:

1. **Pattern Recognition**: Consistent themes emerge across multiple sources
2. **Validation Points**: New information aligns with documented trends
3. **Strategic Implications**: Clear pathways for decision-making

## Conclusion

This synthesis demonstrates the value of combining new intelligence with comprehensive documentation. The resulting analysis provides a robust foundation for strategic planning and tactical implementation.

---
*Article generated through AI synthesis of %d source documents*`,
		now.Format(LocaleDateLayout), facts, len(sources), strings.Join(blocks, "\n"), len(sources))
}

func summaryOr(doc types.LibraryDocument, fallback string) string {
	if doc.Summary == "" {
		return fallback
	}
	return doc.Summary
}

func tagsJoined(tags []string, fallback string) string {
	if len(tags) == 0 {
		return fallback
	}
	return strings.Join(tags, ", ")
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

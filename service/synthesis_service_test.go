package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclibhq/doclib-be/types"
)

var synthesisClock = func() time.Time {
	return time.Date(2026, 1, 15, 9, 5, 30, 0, time.UTC)
}

func synthesisSources() []types.LibraryDocument {
	return []types.LibraryDocument{
		{
			ID:      "doc-1",
			Name:    "Market Research",
			Summary: "Survey responses show strong demand in the enterprise segment",
			Tags:    []string{"market", "survey", "enterprise"},
		},
		{
			ID:   "doc-2",
			Name: "Competitor Notes",
			Tags: []string{"pricing"},
		},
	}
}

func TestSynthesize_DeterministicForFixedClock(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)
	facts := "Demand grew sharply in the enterprise segment"

	first := svc.Synthesize(facts, synthesisSources(), types.FormatReport, "analyst@example.com")
	second := svc.Synthesize(facts, synthesisSources(), types.FormatReport, "analyst@example.com")

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.WordCount, second.WordCount)
}

func TestSynthesize_PopulatesMetadata(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)
	facts := "Demand grew sharply in the enterprise segment"

	doc := svc.Synthesize(facts, synthesisSources(), types.FormatReport, "analyst@example.com")

	assert.Equal(t, "Comprehensive Analysis Report: Demand grew sharply", doc.Title)
	assert.Equal(t, types.FormatReport, doc.Format)
	assert.Equal(t, facts, doc.SourceFacts)
	assert.Equal(t, "analyst@example.com", doc.CreatedBy)
	assert.Equal(t, synthesisClock(), doc.CreatedAt)
	assert.Equal(t, []types.SourceRef{
		{ID: "doc-1", Name: "Market Research"},
		{ID: "doc-2", Name: "Competitor Notes"},
	}, doc.SourceDocuments)
	assert.Equal(t, len(strings.Fields(doc.Content)), doc.WordCount)
}

func TestSynthesize_DefaultsCreatorToAnonymous(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)

	doc := svc.Synthesize("Some new facts", synthesisSources(), types.FormatMemo, "")

	assert.Equal(t, "anonymous", doc.CreatedBy)
}

func TestSynthesize_UnknownFormatFallsBackToReport(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)

	doc := svc.Synthesize("Some new facts", synthesisSources(), types.Format("poem"), "")

	assert.Equal(t, types.FormatReport, doc.Format)
	assert.True(t, strings.HasPrefix(doc.Content, "# Comprehensive Analysis Report"))
}

func TestSynthesize_ReportEmbedsSources(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)
	facts := "Demand grew sharply in the enterprise segment"

	doc := svc.Synthesize(facts, synthesisSources(), types.FormatReport, "")
	content := doc.Content

	assert.Contains(t, content, "Based on the analysis of 2 source documents")
	assert.Contains(t, content, facts)
	assert.Contains(t, content, `### Insights from "Market Research"`)
	assert.Contains(t, content, "Survey responses show strong demand in the enterprise segment")
	assert.Contains(t, content, "**Key Tags:** market, survey, enterprise")

	// A source without a summary gets the fixed filler text.
	assert.Contains(t, content, `### Insights from "Competitor Notes"`)
	assert.Contains(t, content, "This document provides relevant context and supporting information for the analysis.")
	assert.Contains(t, content, "**Key Tags:** pricing")

	assert.Contains(t, content, "*Generated on 1/15/2026, 9:05:30 AM using 2 source documents*")
}

func TestSynthesize_SummaryOneHeadingOneBulletPerSource(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)
	facts := "Demand grew sharply. Margins held steady."

	doc := svc.Synthesize(facts, synthesisSources(), types.FormatSummary, "")
	content := doc.Content

	assert.Equal(t, 1, strings.Count(content, "# Executive Summary"))
	assert.Contains(t, content, "• Demand grew sharply")
	assert.Contains(t, content, "• Market Research: market, survey")
	assert.Contains(t, content, "• Competitor Notes: pricing")
	assert.Contains(t, content, "*Executive Summary | 1/15/2026*")
	assert.Equal(t, "Executive Summary: Demand grew sharply.", doc.Title)
}

func TestSynthesize_SummaryTaglessSourceGetsFallbackLine(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)
	sources := []types.LibraryDocument{{ID: "doc-3", Name: "Raw Dump"}}

	doc := svc.Synthesize("Some new facts", sources, types.FormatSummary, "")

	assert.Contains(t, doc.Content, "• Raw Dump: Supporting data")
}

func TestSynthesize_MemoNumbersSources(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)

	doc := svc.Synthesize("Some new facts", synthesisSources(), types.FormatMemo, "")
	content := doc.Content

	assert.Contains(t, content, "**MEMORANDUM**")
	assert.Contains(t, content, "**DATE:** 1/15/2026")
	assert.Contains(t, content, "1. **Market Research**: Provides context on market")
	assert.Contains(t, content, "2. **Competitor Notes**: Provides context on pricing")
}

func TestSynthesize_MemoTaglessSourceUsesFallbackTopic(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)
	sources := []types.LibraryDocument{{ID: "doc-3", Name: "Raw Dump"}}

	doc := svc.Synthesize("Some new facts", sources, types.FormatMemo, "")

	assert.Contains(t, doc.Content, "1. **Raw Dump**: Provides context on relevant topics")
}

func TestSynthesize_PresentationCapsThemesAtFive(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)
	sources := []types.LibraryDocument{
		{ID: "a", Name: "One", Tags: []string{"t1", "t2", "t3"}},
		{ID: "b", Name: "Two", Tags: []string{"t4", "t5", "t6"}},
	}

	doc := svc.Synthesize("Some new facts", sources, types.FormatPresentation, "")
	content := doc.Content

	assert.Contains(t, content, "# Presentation Outline")
	assert.Contains(t, content, "- **Key Themes**: t1, t2, t3, t4, t5")
	assert.NotContains(t, content, "t6")
	assert.Contains(t, content, "1. One - Supporting evidence")
	assert.Contains(t, content, "2. Two - Supporting evidence")
}

func TestSynthesize_ArticleEmbedsKeywords(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)

	doc := svc.Synthesize("Some new facts", synthesisSources(), types.FormatArticle, "")
	content := doc.Content

	assert.Contains(t, content, "# Strategic Intelligence: New Developments and Analysis")
	assert.Contains(t, content, "*Published 1/15/2026*")
	assert.Contains(t, content, "**Market Research**")
	assert.Contains(t, content, "*Keywords: market, survey, enterprise*")
	assert.Contains(t, content, "This document contributes valuable perspective to our analysis.")
	assert.Contains(t, content, "*Article generated through AI synthesis of 2 source documents*")
}

func TestSynthesize_TitlePrefixPerFormat(t *testing.T) {
	svc := NewSynthesisServiceWithClock(synthesisClock)
	facts := "Alpha beta gamma delta"

	for _, format := range types.Formats {
		doc := svc.Synthesize(facts, synthesisSources(), format, "")
		require.Equal(t, format.Title()+": Alpha beta gamma", doc.Title, "format %s", format)
	}
}

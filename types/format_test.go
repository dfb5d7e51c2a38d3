package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValid(t *testing.T) {
	for _, format := range Formats {
		assert.True(t, format.Valid(), "format %s", format)
	}
	assert.False(t, Format("poem").Valid())
	assert.False(t, Format("").Valid())
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "Comprehensive Analysis Report", FormatReport.Title())
	assert.Equal(t, "Executive Summary", FormatSummary.Title())
	assert.Equal(t, "Strategic Memo", FormatMemo.Title())
	assert.Equal(t, "Presentation Overview", FormatPresentation.Title())
	assert.Equal(t, "Analytical Article", FormatArticle.Title())
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatSummary, ParseFormat("summary"))
	assert.Equal(t, FormatReport, ParseFormat("poem"))
	assert.Equal(t, FormatReport, ParseFormat(""))
}

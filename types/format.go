package types

// Format is the closed set of output templates.
type Format string

const (
	FormatReport       Format = "report"
	FormatSummary      Format = "summary"
	FormatMemo         Format = "memo"
	FormatPresentation Format = "presentation"
	FormatArticle      Format = "article"
)

// Formats lists every valid format in display order.
var Formats = []Format{
	FormatReport,
	FormatSummary,
	FormatMemo,
	FormatPresentation,
	FormatArticle,
}

func (f Format) Valid() bool {
	switch f {
	case FormatReport, FormatSummary, FormatMemo, FormatPresentation, FormatArticle:
		return true
	}
	return false
}

// Title returns the fixed per-format label used as the title prefix of a
// synthesized document.
func (f Format) Title() string {
	switch f {
	case FormatSummary:
		return "Executive Summary"
	case FormatMemo:
		return "Strategic Memo"
	case FormatPresentation:
		return "Presentation Overview"
	case FormatArticle:
		return "Analytical Article"
	default:
		return "Comprehensive Analysis Report"
	}
}

// ParseFormat maps a raw string onto the closed enum. Unrecognized values
// fall back to report so that libraries exported by older builds still
// import, matching the original behavior.
func ParseFormat(s string) Format {
	f := Format(s)
	if !f.Valid() {
		return FormatReport
	}
	return f
}

package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/doclibhq/doclib-be/types"
)

// Layouts matching the locale strings the library has always rendered.
const (
	LocaleTimeLayout = "1/2/2006, 3:04:05 PM"
	LocaleDateLayout = "1/2/2006"
)

// Extraction is the metadata derived from a file at upload time.
type Extraction struct {
	Content string
	Tags    []string
	Summary string
}

var wordPattern = regexp.MustCompile(`\b\w{4,}\b`)

var sentencePattern = regexp.MustCompile(`[.!?]+`)

// stopWords are excluded from tag extraction.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "that": {}, "have": {}, "for": {}, "not": {},
	"with": {}, "you": {}, "this": {}, "but": {}, "his": {}, "from": {},
	"they": {},
}

// ExtractDocument derives content, tags and summary for one uploaded file.
// Text-like media types keep their decoded text. PDF and Word files get a
// synthetic placeholder describing the file; the binary payload is never
// stored. Anything else fails with ErrUnsupportedFileType, which is a
// per-file failure: a batch keeps processing its remaining files.
func ExtractDocument(mediaType, filename string, data []byte, now time.Time) (Extraction, error) {
	var content string
	switch {
	case mediaType == "text/plain":
		content = string(data)
	case mediaType == "application/pdf":
		content = placeholderContent("PDF", filename, int64(len(data)), now)
	case strings.Contains(mediaType, "word"):
		content = placeholderContent("Word", filename, int64(len(data)), now)
	case strings.Contains(mediaType, "text") || strings.HasSuffix(filename, ".md"):
		content = string(data)
	default:
		return Extraction{}, fmt.Errorf("%w: %s", types.ErrUnsupportedFileType, mediaType)
	}

	return Extraction{
		Content: content,
		Tags:    ExtractTags(content),
		Summary: ExtractSummary(content),
	}, nil
}

func placeholderContent(kind, filename string, sizeBytes int64, now time.Time) string {
	return fmt.Sprintf("%s Document: %s\nSize: %.2f KB\nUploaded: %s",
		kind, filename, float64(sizeBytes)/1024, now.Format(LocaleTimeLayout))
}

// ExtractTags keeps the first five 4+-letter words of the content, in
// first-seen order, after dropping duplicates and stop words.
func ExtractTags(content string) []string {
	words := wordPattern.FindAllString(strings.ToLower(content), -1)
	seen := make(map[string]struct{}, len(words))
	tags := make([]string, 0, 5)
	for _, word := range words {
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		if _, stop := stopWords[word]; stop {
			continue
		}
		tags = append(tags, word)
		if len(tags) == 5 {
			break
		}
	}
	return tags
}

// ExtractSummary joins the first two sentence fragments longer than 20
// characters and marks truncation with a trailing ellipsis.
func ExtractSummary(content string) string {
	fragments := sentencePattern.Split(content, -1)
	var sentences []string
	for _, fragment := range fragments {
		if len(strings.TrimSpace(fragment)) > 20 {
			sentences = append(sentences, fragment)
		}
	}
	head := sentences
	if len(head) > 2 {
		head = head[:2]
	}
	summary := strings.Join(head, ". ")
	if len(sentences) > 2 {
		summary += "..."
	}
	return summary
}

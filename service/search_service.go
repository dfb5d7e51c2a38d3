package service

import (
	"strings"

	"github.com/doclibhq/doclib-be/types"
)

// FilterDocuments returns the documents matching query, preserving the input
// order. A document matches when the query is a case-insensitive substring of
// its name, its content, or any of its tags. An empty (or all-whitespace)
// query returns the input unchanged. The input slice is never mutated;
// selection state lives outside the filter, so narrowing the query never
// discards selections made under a wider one.
func FilterDocuments(documents []types.LibraryDocument, query string) []types.LibraryDocument {
	if strings.TrimSpace(query) == "" {
		return documents
	}

	needle := strings.ToLower(query)
	matched := make([]types.LibraryDocument, 0, len(documents))
	for _, doc := range documents {
		if matchesDocument(doc, needle) {
			matched = append(matched, doc)
		}
	}
	return matched
}

func matchesDocument(doc types.LibraryDocument, needle string) bool {
	if strings.Contains(strings.ToLower(doc.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Content), needle) {
		return true
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// SelectDocuments resolves a set of selected ids against the collection,
// preserving collection order. Unknown ids are skipped.
func SelectDocuments(documents []types.LibraryDocument, ids []string) []types.LibraryDocument {
	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}
	picked := make([]types.LibraryDocument, 0, len(ids))
	for _, doc := range documents {
		if _, ok := selected[doc.ID]; ok {
			picked = append(picked, doc)
		}
	}
	return picked
}

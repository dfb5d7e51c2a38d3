// Package cache holds the local fallback snapshots of both library
// collections. Snapshots are JSON arrays written wholesale under fixed keys;
// there is no incremental merge.
package cache

import (
	"context"

	"github.com/doclibhq/doclib-be/types"
)

const (
	DocumentsKey   = "documentLibrary"
	SynthesizedKey = "synthesizedDocuments"
)

type LibraryCache interface {
	SaveDocuments(ctx context.Context, docs []types.LibraryDocument) error
	LoadDocuments(ctx context.Context) ([]types.LibraryDocument, error)
	SaveSynthesized(ctx context.Context, docs []types.SynthesizedDocument) error
	LoadSynthesized(ctx context.Context) ([]types.SynthesizedDocument, error)
}

package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/doclibhq/doclib-be/cache"
	"github.com/doclibhq/doclib-be/repository"
	"github.com/doclibhq/doclib-be/types"
	"github.com/google/uuid"
)

// LibraryService maintains the two in-memory collections, newest first,
// mirrored to the remote store with the cache as fallback. Every operation
// reports the Origin its data came from, so a degraded (local-only) success
// is distinguishable from a remote one without inspecting errors.
//
// Add and Remove against the same collection serialize on a per-collection
// mutex: each call applies as one atomic snapshot update, so interleaved
// writers cannot lose an update. The two collections lock independently.
type LibraryService interface {
	LoadDocuments(ctx context.Context) ([]types.LibraryDocument, types.Origin, error)
	AddDocument(ctx context.Context, doc types.LibraryDocument, uploadedBy string) (types.LibraryDocument, types.Origin, error)
	RemoveDocument(ctx context.Context, id string) (types.Origin, error)
	Documents() []types.LibraryDocument

	LoadSynthesized(ctx context.Context) ([]types.SynthesizedDocument, types.Origin, error)
	AddSynthesized(ctx context.Context, doc types.SynthesizedDocument) (types.SynthesizedDocument, types.Origin, error)
	RemoveSynthesized(ctx context.Context, id string) (types.Origin, error)
	Synthesized() []types.SynthesizedDocument
}

type libraryService struct {
	docRepo   repository.DocumentRepo
	synthRepo repository.SynthesizedRepo
	cache     cache.LibraryCache

	docMu     sync.Mutex
	documents []types.LibraryDocument

	synthMu     sync.Mutex
	synthesized []types.SynthesizedDocument
}

func NewLibraryService(docRepo repository.DocumentRepo, synthRepo repository.SynthesizedRepo, libCache cache.LibraryCache) LibraryService {
	return &libraryService{
		docRepo:   docRepo,
		synthRepo: synthRepo,
		cache:     libCache,
	}
}

// LoadDocuments refreshes the in-memory collection from the remote store,
// falling back to the last cached snapshot when the remote side is down. The
// fallback is silent: the caller gets data and an Origin, never an error the
// UI would have to block on.
func (s *libraryService) LoadDocuments(ctx context.Context) ([]types.LibraryDocument, types.Origin, error) {
	s.docMu.Lock()
	defer s.docMu.Unlock()

	docs, err := s.docRepo.List(ctx)
	if err != nil {
		log.Printf("loading documents from remote failed, using cache: %v", err)
		cached, cacheErr := s.cache.LoadDocuments(ctx)
		if cacheErr != nil {
			return nil, types.OriginLocal, cacheErr
		}
		s.documents = cached
		return snapshotDocs(cached), types.OriginLocal, nil
	}
	s.documents = docs
	return snapshotDocs(docs), types.OriginRemote, nil
}

// AddDocument stamps provenance and inserts remotely; when the remote insert
// fails it assigns a local id, keeps the record in memory only, and rewrites
// the cached snapshot wholesale. Exactly one of the two paths runs.
func (s *libraryService) AddDocument(ctx context.Context, doc types.LibraryDocument, uploadedBy string) (types.LibraryDocument, types.Origin, error) {
	if uploadedBy == "" {
		uploadedBy = "anonymous"
	}
	doc.UploadedAt = time.Now().UTC()
	doc.UploadedBy = uploadedBy

	s.docMu.Lock()
	defer s.docMu.Unlock()

	inserted, err := s.docRepo.Insert(ctx, doc)
	if err != nil {
		log.Printf("adding document remotely failed, keeping local copy: %v", err)
		doc.ID = uuid.NewString()
		s.documents = prependDoc(s.documents, doc)
		if cacheErr := s.cache.SaveDocuments(ctx, s.documents); cacheErr != nil {
			log.Printf("caching document snapshot failed: %v", cacheErr)
		}
		return doc, types.OriginLocal, nil
	}

	s.documents = prependDoc(s.documents, inserted)
	return inserted, types.OriginRemote, nil
}

// RemoveDocument attempts the remote delete but removes the entry from the
// in-memory collection regardless of the outcome; removal never visibly
// fails. A remote miss leaves the stores divergent until the next load.
func (s *libraryService) RemoveDocument(ctx context.Context, id string) (types.Origin, error) {
	s.docMu.Lock()
	defer s.docMu.Unlock()

	origin := types.OriginRemote
	if err := s.docRepo.Delete(ctx, id); err != nil {
		log.Printf("removing document %s remotely failed, removing locally: %v", id, err)
		origin = types.OriginLocal
	}

	kept := s.documents[:0:0]
	for _, doc := range s.documents {
		if doc.ID != id {
			kept = append(kept, doc)
		}
	}
	s.documents = kept
	return origin, nil
}

func (s *libraryService) Documents() []types.LibraryDocument {
	s.docMu.Lock()
	defer s.docMu.Unlock()
	return snapshotDocs(s.documents)
}

func (s *libraryService) LoadSynthesized(ctx context.Context) ([]types.SynthesizedDocument, types.Origin, error) {
	s.synthMu.Lock()
	defer s.synthMu.Unlock()

	docs, err := s.synthRepo.List(ctx)
	if err != nil {
		log.Printf("loading synthesized documents from remote failed, using cache: %v", err)
		cached, cacheErr := s.cache.LoadSynthesized(ctx)
		if cacheErr != nil {
			return nil, types.OriginLocal, cacheErr
		}
		s.synthesized = cached
		return snapshotSynth(cached), types.OriginLocal, nil
	}
	s.synthesized = docs
	return snapshotSynth(docs), types.OriginRemote, nil
}

func (s *libraryService) AddSynthesized(ctx context.Context, doc types.SynthesizedDocument) (types.SynthesizedDocument, types.Origin, error) {
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	if doc.CreatedBy == "" {
		doc.CreatedBy = "anonymous"
	}

	s.synthMu.Lock()
	defer s.synthMu.Unlock()

	inserted, err := s.synthRepo.Insert(ctx, doc)
	if err != nil {
		log.Printf("adding synthesized document remotely failed, keeping local copy: %v", err)
		doc.ID = uuid.NewString()
		s.synthesized = prependSynth(s.synthesized, doc)
		if cacheErr := s.cache.SaveSynthesized(ctx, s.synthesized); cacheErr != nil {
			log.Printf("caching synthesized snapshot failed: %v", cacheErr)
		}
		return doc, types.OriginLocal, nil
	}

	s.synthesized = prependSynth(s.synthesized, inserted)
	return inserted, types.OriginRemote, nil
}

func (s *libraryService) RemoveSynthesized(ctx context.Context, id string) (types.Origin, error) {
	s.synthMu.Lock()
	defer s.synthMu.Unlock()

	origin := types.OriginRemote
	if err := s.synthRepo.Delete(ctx, id); err != nil {
		log.Printf("removing synthesized document %s remotely failed, removing locally: %v", id, err)
		origin = types.OriginLocal
	}

	kept := s.synthesized[:0:0]
	for _, doc := range s.synthesized {
		if doc.ID != id {
			kept = append(kept, doc)
		}
	}
	s.synthesized = kept
	return origin, nil
}

func (s *libraryService) Synthesized() []types.SynthesizedDocument {
	s.synthMu.Lock()
	defer s.synthMu.Unlock()
	return snapshotSynth(s.synthesized)
}

func prependDoc(docs []types.LibraryDocument, doc types.LibraryDocument) []types.LibraryDocument {
	return append([]types.LibraryDocument{doc}, docs...)
}

func prependSynth(docs []types.SynthesizedDocument, doc types.SynthesizedDocument) []types.SynthesizedDocument {
	return append([]types.SynthesizedDocument{doc}, docs...)
}

func snapshotDocs(docs []types.LibraryDocument) []types.LibraryDocument {
	return append([]types.LibraryDocument(nil), docs...)
}

func snapshotSynth(docs []types.SynthesizedDocument) []types.SynthesizedDocument {
	return append([]types.SynthesizedDocument(nil), docs...)
}

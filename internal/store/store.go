package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/jonathan/resume-studio/internal/templates"
	"github.com/jonathan/resume-studio/internal/types"
)

// Storage keys for the current layout.
const (
	keyResumes  = "resumes"
	keyActiveID = "activeId"
)

// Legacy single-resume layout keys, consumed once by migration.
const (
	legacyKeyData         = "resumeData"
	legacyKeyStyle        = "templateStyle"
	legacyKeyOrder        = "sectionOrder"
	legacyKeyUploadedFile = "uploadedFileName"
)

// BundleVersion tags exported bundles.
const BundleVersion = 1

// migratedName is the display name given to a record folded in from
// the legacy layout.
const migratedName = "My Resume"

// Bundle is the portable export format: the whole collection plus the
// active pointer and a format version.
type Bundle struct {
	Resumes  []types.StoredResume `json:"resumes"`
	ActiveID string               `json:"activeId"`
	Version  int                  `json:"version"`
}

// Store implements the resume collection contract over a KV backend.
// A single mutex serializes every read-modify-write cycle; consistency
// across processes is out of scope.
type Store struct {
	mu sync.Mutex
	kv KV
}

// New returns a store over the given backend.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// loadAll reads the collection. Read or parse failures degrade to an
// empty collection so a corrupt backend yields a blank workspace
// instead of an error.
func (s *Store) loadAll(ctx context.Context) []types.StoredResume {
	raw, err := s.kv.Get(ctx, keyResumes)
	if err != nil {
		log.Printf("store: failed to read resumes, treating as empty: %v", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var resumes []types.StoredResume
	if err := json.Unmarshal(raw, &resumes); err != nil {
		log.Printf("store: failed to parse resumes, treating as empty: %v", err)
		return nil
	}
	return resumes
}

func (s *Store) saveAll(ctx context.Context, resumes []types.StoredResume) error {
	raw, err := json.Marshal(resumes)
	if err != nil {
		return &StorageError{Message: "failed to encode resumes", Cause: err}
	}
	return s.kv.Set(ctx, keyResumes, raw)
}

func (s *Store) loadActiveID(ctx context.Context) string {
	raw, err := s.kv.Get(ctx, keyActiveID)
	if err != nil || raw == nil {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return ""
	}
	return id
}

func (s *Store) saveActiveID(ctx context.Context, id string) error {
	if id == "" {
		return s.kv.Delete(ctx, keyActiveID)
	}
	raw, _ := json.Marshal(id)
	return s.kv.Set(ctx, keyActiveID, raw)
}

// Create appends a fresh record, makes it active and persists.
func (s *Store) Create(ctx context.Context, name string, data types.ResumeData, style types.ResumeTemplateStyle, order types.SectionOrder, sourceFileName *string) (types.StoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := types.StoredResume{
		ID:               types.NewItemID("resume"),
		Name:             name,
		ResumeData:       data,
		TemplateStyle:    style,
		SectionOrder:     order.Normalize(),
		UploadedFileName: sourceFileName,
	}
	record.Touch()

	resumes := append(s.loadAll(ctx), record)
	if err := s.saveAll(ctx, resumes); err != nil {
		return types.StoredResume{}, err
	}
	if err := s.saveActiveID(ctx, record.ID); err != nil {
		return types.StoredResume{}, err
	}
	return record, nil
}

// Update applies a mutation to one record, refreshes its timestamp
// and persists. Returns NotFoundError when the id is absent.
func (s *Store) Update(ctx context.Context, id string, apply func(*types.StoredResume)) (types.StoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumes := s.loadAll(ctx)
	for i := range resumes {
		if resumes[i].ID != id {
			continue
		}
		apply(&resumes[i])
		resumes[i].ID = id
		resumes[i].SectionOrder = resumes[i].SectionOrder.Normalize()
		resumes[i].Touch()
		if err := s.saveAll(ctx, resumes); err != nil {
			return types.StoredResume{}, err
		}
		return resumes[i], nil
	}
	return types.StoredResume{}, &NotFoundError{ID: id}
}

// Delete removes a record. When the deleted record was active, the
// pointer moves to the first remaining record, or clears if the
// collection is now empty.
func (s *Store) Delete(ctx context.Context, id string) (types.StoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumes := s.loadAll(ctx)
	for i := range resumes {
		if resumes[i].ID != id {
			continue
		}
		deleted := resumes[i]
		remaining := append(resumes[:i:i], resumes[i+1:]...)
		if err := s.saveAll(ctx, remaining); err != nil {
			return types.StoredResume{}, err
		}
		if s.loadActiveID(ctx) == id {
			next := ""
			if len(remaining) > 0 {
				next = remaining[0].ID
			}
			if err := s.saveActiveID(ctx, next); err != nil {
				return types.StoredResume{}, err
			}
		}
		return deleted, nil
	}
	return types.StoredResume{}, &NotFoundError{ID: id}
}

// GetAll returns the whole collection.
func (s *Store) GetAll(ctx context.Context) []types.StoredResume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll(ctx)
}

// GetByID returns one record or NotFoundError.
func (s *Store) GetByID(ctx context.Context, id string) (types.StoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.loadAll(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return types.StoredResume{}, &NotFoundError{ID: id}
}

// GetActiveID returns the active pointer, empty when unset.
func (s *Store) GetActiveID(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadActiveID(ctx)
}

// SetActiveID repoints the active pointer. The id must exist.
func (s *Store) SetActiveID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.loadAll(ctx) {
		if r.ID == id {
			return s.saveActiveID(ctx, id)
		}
	}
	return &NotFoundError{ID: id}
}

// ExportBundle serializes the collection, active pointer and format
// version as one portable blob.
func (s *Store) ExportBundle(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumes := s.loadAll(ctx)
	if resumes == nil {
		resumes = []types.StoredResume{}
	}
	bundle := Bundle{
		Resumes:  resumes,
		ActiveID: s.loadActiveID(ctx),
		Version:  BundleVersion,
	}
	raw, err := json.Marshal(bundle)
	if err != nil {
		return nil, &StorageError{Message: "failed to encode bundle", Cause: err}
	}
	return raw, nil
}

// ImportBundle atomically replaces the collection from a bundle blob.
// Shape failures return an ImportError with no change committed. A
// dangling active id heals to the first record.
func (s *Store) ImportBundle(ctx context.Context, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var probe struct {
		Resumes json.RawMessage `json:"resumes"`
	}
	if err := json.Unmarshal(blob, &probe); err != nil {
		return &ImportError{Message: "bundle is not valid JSON", Cause: err}
	}
	var bundle Bundle
	if err := json.Unmarshal(blob, &bundle); err != nil {
		return &ImportError{Message: "bundle has wrong shape", Cause: err}
	}
	if bundle.Resumes == nil {
		return &ImportError{Message: "bundle is missing a resumes array"}
	}

	for i := range bundle.Resumes {
		bundle.Resumes[i].SectionOrder = bundle.Resumes[i].SectionOrder.Normalize()
	}

	activeID := bundle.ActiveID
	if !containsID(bundle.Resumes, activeID) {
		activeID = ""
		if len(bundle.Resumes) > 0 {
			activeID = bundle.Resumes[0].ID
		}
	}

	if err := s.saveAll(ctx, bundle.Resumes); err != nil {
		return err
	}
	return s.saveActiveID(ctx, activeID)
}

// EnsureAtLeastOne is the migration and bootstrap entrypoint. It folds
// the legacy single-resume keys into one record when the collection is
// empty, creates a default record if still empty, heals a dangling
// active pointer, and returns the active record.
func (s *Store) EnsureAtLeastOne(ctx context.Context) (types.StoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumes := s.loadAll(ctx)

	if len(resumes) == 0 {
		if migrated, ok := s.migrateLegacy(ctx); ok {
			resumes = []types.StoredResume{migrated}
			if err := s.saveAll(ctx, resumes); err != nil {
				return types.StoredResume{}, err
			}
			if err := s.saveActiveID(ctx, migrated.ID); err != nil {
				return types.StoredResume{}, err
			}
		}
	}

	if len(resumes) == 0 {
		record := types.StoredResume{
			ID:            types.NewItemID("resume"),
			Name:          migratedName,
			ResumeData:    types.NewResumeData(),
			TemplateStyle: templates.Default(),
			SectionOrder:  types.DefaultSectionOrder(),
		}
		record.Touch()
		resumes = []types.StoredResume{record}
		if err := s.saveAll(ctx, resumes); err != nil {
			return types.StoredResume{}, err
		}
		if err := s.saveActiveID(ctx, record.ID); err != nil {
			return types.StoredResume{}, err
		}
	}

	activeID := s.loadActiveID(ctx)
	if !containsID(resumes, activeID) {
		activeID = resumes[0].ID
		if err := s.saveActiveID(ctx, activeID); err != nil {
			return types.StoredResume{}, err
		}
	}

	for _, r := range resumes {
		if r.ID == activeID {
			return r, nil
		}
	}
	return resumes[0], nil
}

// migrateLegacy reads the pre-multi-resume keys and folds them into
// one record, deleting the legacy keys on success. Returns false when
// no legacy data exists.
func (s *Store) migrateLegacy(ctx context.Context) (types.StoredResume, bool) {
	rawData, err := s.kv.Get(ctx, legacyKeyData)
	if err != nil || rawData == nil {
		return types.StoredResume{}, false
	}

	var data types.ResumeData
	if err := json.Unmarshal(rawData, &data); err != nil {
		log.Printf("store: legacy resume data unreadable, skipping migration: %v", err)
		return types.StoredResume{}, false
	}

	style := templates.Default()
	if raw, err := s.kv.Get(ctx, legacyKeyStyle); err == nil && raw != nil {
		var parsed types.ResumeTemplateStyle
		if json.Unmarshal(raw, &parsed) == nil {
			parsed.Normalize()
			style = parsed
		}
	}

	order := types.DefaultSectionOrder()
	if raw, err := s.kv.Get(ctx, legacyKeyOrder); err == nil && raw != nil {
		var parsed types.SectionOrder
		if json.Unmarshal(raw, &parsed) == nil {
			order = parsed.Normalize()
		}
	}

	var uploadedFileName *string
	if raw, err := s.kv.Get(ctx, legacyKeyUploadedFile); err == nil && raw != nil {
		var name string
		if json.Unmarshal(raw, &name) == nil && name != "" {
			uploadedFileName = &name
		}
	}

	record := types.StoredResume{
		ID:               types.NewItemID("resume"),
		Name:             migratedName,
		ResumeData:       data,
		TemplateStyle:    style,
		SectionOrder:     order,
		UploadedFileName: uploadedFileName,
	}
	record.Touch()

	for _, key := range []string{legacyKeyData, legacyKeyStyle, legacyKeyOrder, legacyKeyUploadedFile} {
		if err := s.kv.Delete(ctx, key); err != nil {
			log.Printf("store: failed to clear legacy key %s: %v", key, err)
		}
	}

	return record, true
}

func containsID(resumes []types.StoredResume, id string) bool {
	if id == "" {
		return false
	}
	for _, r := range resumes {
		if r.ID == id {
			return true
		}
	}
	return false
}

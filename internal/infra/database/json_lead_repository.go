package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/recruitedge/outreach/internal/entity"
)

// JSONLeadRepository keeps every lead in a single JSON array on disk.
// Each mutation is load-modify-save of the whole file, serialized by mu and
// written through a temp file + rename so readers never see a partial file.
type JSONLeadRepository struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewJSONLeadRepository(path string) *JSONLeadRepository {
	return &JSONLeadRepository{path: path, now: time.Now}
}

// WithClock replaces the time source used for date_sent.
func (r *JSONLeadRepository) WithClock(now func() time.Time) *JSONLeadRepository {
	r.now = now
	return r
}

func (r *JSONLeadRepository) Path() string {
	return r.path
}

func (r *JSONLeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *JSONLeadRepository) Append(ctx context.Context, draft entity.LeadDraft) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	lead := entity.Lead{
		ID:          nextID(leads),
		AthleteName: draft.AthleteName,
		CoachName:   draft.CoachName,
		College:     draft.College,
		CoachEmail:  draft.CoachEmail,
		Status:      statusOrSent(draft.Status),
		DateSent:    r.now().Format(entity.DateSentLayout),
		Notes:       "",
	}

	if err := r.save(append(leads, lead)); err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *JSONLeadRepository) Update(ctx context.Context, id int, update entity.LeadUpdate) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range leads {
		if leads[i].ID != id {
			continue
		}
		if update.ExpectStatus != nil && leads[i].Status != *update.ExpectStatus {
			return nil, entity.ErrLeadStatusChanged
		}
		if update.Status != nil {
			leads[i].Status = *update.Status
		}
		if update.Notes != nil {
			leads[i].Notes = *update.Notes
		}
		if err := r.save(leads); err != nil {
			return nil, err
		}
		lead := leads[i]
		return &lead, nil
	}

	return nil, entity.ErrLeadNotFound
}

func (r *JSONLeadRepository) load() ([]entity.Lead, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entity.Lead{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	leads := []entity.Lead{}
	if len(data) == 0 {
		return leads, nil
	}
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.path, err)
	}

	return leads, nil
}

func (r *JSONLeadRepository) save(leads []entity.Lead) error {
	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode leads: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write leads: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush leads: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}

	return nil
}

// nextID is count+1. A hand-edited file could make that collide, so it
// never goes below the highest id already present.
func nextID(leads []entity.Lead) int {
	next := len(leads) + 1
	for _, l := range leads {
		if l.ID >= next {
			next = l.ID + 1
		}
	}
	return next
}

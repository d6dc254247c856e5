package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"vet-form/internal/domain/vets"
)

type vetRepo struct {
	mu   sync.RWMutex
	byID map[string]vets.Record
}

func NewVetRepo() vets.Repository {
	return &vetRepo{
		byID: make(map[string]vets.Record),
	}
}

func (r *vetRepo) Create(ctx context.Context, rec vets.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("vet id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("vet already exists")
	}
	r.byID[rec.ID] = cloneRecord(rec)
	return nil
}

func (r *vetRepo) Update(ctx context.Context, rec vets.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("vet id required")
	}
	if _, exists := r.byID[rec.ID]; !exists {
		return fmt.Errorf("vet %s: %w", rec.ID, vets.ErrNotFound)
	}
	r.byID[rec.ID] = cloneRecord(rec)
	return nil
}

func (r *vetRepo) GetByID(ctx context.Context, id string) (vets.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return vets.Record{}, fmt.Errorf("vet %s: %w", id, vets.ErrNotFound)
	}
	return cloneRecord(rec), nil
}

func (r *vetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("vet %s: %w", id, vets.ErrNotFound)
	}
	delete(r.byID, id)
	return nil
}

func (r *vetRepo) List(ctx context.Context, f vets.ListFilter) ([]vets.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Record, 0)
	for _, rec := range r.byID {
		if f.Match(rec) {
			out = append(out, cloneRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// cloneRecord copia slices y punteros para que el llamador no mute lo guardado.
func cloneRecord(rec vets.Record) vets.Record {
	v := rec.Vet
	v.Contacts = append([]vets.ContactEntry(nil), v.Contacts...)
	v.Treatments = append([]string(nil), v.Treatments...)

	for i, oh := range v.OpeningHours {
		if oh != nil {
			c := *oh
			v.OpeningHours[i] = &c
		}
	}

	if v.EmergencyTimes != nil {
		ets := make([]vets.EmergencyTimeRequest, len(v.EmergencyTimes))
		for i, et := range v.EmergencyTimes {
			et.Days = append([]string(nil), et.Days...)
			ets[i] = et
		}
		v.EmergencyTimes = ets
	}

	rec.Vet = v
	return rec
}

package vets

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound lo devuelven (o envuelven) los repositorios cuando el id no existe.
// Cualquier otro error es una falla del storage.
var ErrNotFound = errors.New("not found")

// Verification indica si content management aprobó la clínica.
type Verification string

const (
	VerificationUnverified Verification = "unverified"
	VerificationVerified   Verification = "verified"
)

// Visibilidades conocidas; vienen en el claim "visibility" del token.
const (
	VisibilityPublic = "public"
	VisibilityHidden = "hidden"
)

var Visibilities = []string{VisibilityPublic, VisibilityHidden}

// Record es lo que guarda el backend por clínica.
type Record struct {
	ID           string          `json:"id"`
	Visibility   string          `json:"visibility"`
	Verification Verification    `json:"verification"`
	Vet          FormDataRequest `json:"vet"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ListFilter: campos vacíos no filtran.
type ListFilter struct {
	Visibility   string
	Verification Verification
}

type Repository interface {
	Create(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
	// List ordena por fecha de alta y luego por id.
	List(ctx context.Context, f ListFilter) ([]Record, error)
}

func (f ListFilter) Match(rec Record) bool {
	if f.Visibility != "" && rec.Visibility != f.Visibility {
		return false
	}
	if f.Verification != "" && rec.Verification != f.Verification {
		return false
	}
	return true
}

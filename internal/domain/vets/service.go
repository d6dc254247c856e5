package vets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"vet-form/internal/domain/calendar"
	"vet-form/internal/platform/logger"
	"vet-form/internal/ports/auth"
	"vet-form/internal/ports/mailer"
)

var (
	ErrForbidden = errors.New("forbidden")
)

const contentManagementPath = "/content-management"

type Options struct {
	Policy calendar.Policy
	// Base pública del backend para armar los links de content management.
	PublicURL string
	// Destinatarios de los avisos de alta/modificación.
	ContentManagementEmails []string
	Logger                  logger.Logger
}

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
	mailer mailer.Mailer
	log    logger.Logger

	policy     calendar.Policy
	publicURL  string
	recipients []string

	now func() time.Time
}

func NewService(repo Repository, issuer auth.TokenIssuer, m mailer.Mailer, opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = logger.NewNop()
	}
	policy := opts.Policy
	if policy.Location == nil {
		policy = calendar.DefaultPolicy()
	}
	return &Service{
		repo:       repo,
		issuer:     issuer,
		mailer:     m,
		log:        l.With(map[string]any{"component": "vets"}),
		policy:     policy,
		publicURL:  strings.TrimRight(strings.TrimSpace(opts.PublicURL), "/"),
		recipients: opts.ContentManagementEmails,
		now:        time.Now,
	}
}

// Get devuelve la clínica del form_user. ErrNotFound si todavía no guardó nada.
func (s *Service) Get(ctx context.Context, claims auth.Claims) (Record, error) {
	if err := requireRole(claims, auth.RoleFormUser); err != nil {
		return Record{}, err
	}
	return s.load(ctx, claims)
}

// CreateOrOverwrite valida y guarda la clínica como "unverified" (cualquier cambio
// vuelve a pasar por content management) y avisa por email con los links de
// verificación y borrado.
func (s *Service) CreateOrOverwrite(ctx context.Context, claims auth.Claims, req FormDataRequest) (Record, error) {
	if err := requireRole(claims, auth.RoleFormUser); err != nil {
		return Record{}, err
	}

	req = Normalize(req)
	if err := Validate(req, s.policy); err != nil {
		return Record{}, err
	}

	now := s.now()
	existing, err := s.load(ctx, claims)
	switch {
	case err == nil:
		existing.Vet = req
		existing.Verification = VerificationUnverified
		existing.UpdatedAt = now
		if err := s.repo.Update(ctx, existing); err != nil {
			return Record{}, err
		}
		s.notify(ctx, existing)
		return existing, nil

	case errors.Is(err, ErrNotFound):
		rec := Record{
			ID:           claims.Subject,
			Visibility:   claims.Visibility,
			Verification: VerificationUnverified,
			Vet:          req,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			return Record{}, err
		}
		s.notify(ctx, rec)
		return rec, nil

	default:
		return Record{}, err
	}
}

// SetVerification lo usan los links de content management (grant/revoke).
func (s *Service) SetVerification(ctx context.Context, claims auth.Claims, v Verification) (Record, error) {
	if err := requireRole(claims, auth.RoleContentManagement); err != nil {
		return Record{}, err
	}
	if v != VerificationVerified && v != VerificationUnverified {
		return Record{}, ErrInvalidInput
	}

	rec, err := s.load(ctx, claims)
	if err != nil {
		return Record{}, err
	}

	// Idempotente
	if rec.Verification == v {
		return rec, nil
	}

	rec.Verification = v
	rec.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	s.log.Info("vet verification changed", map[string]any{"vet_id": rec.ID, "verification": string(v)})
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, claims auth.Claims) error {
	if err := requireRole(claims, auth.RoleContentManagement); err != nil {
		return err
	}
	if _, err := s.load(ctx, claims); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, claims.Subject); err != nil {
		return err
	}
	s.log.Info("vet deleted", map[string]any{"vet_id": claims.Subject})
	return nil
}

// Window es el intervalo pedido por availability_from / availability_to.
type Window struct {
	From time.Time
	To   time.Time
}

// Listing es una clínica verificada tal como la ve el sitio web.
type Listing struct {
	ID                    string          `json:"id"`
	Vet                   FormDataRequest `json:"vet"`
	EmergencyAvailability []TimeSpan      `json:"emergencyAvailability,omitempty"`
}

// ListVerified devuelve las clínicas verificadas de la visibilidad del token del sitio.
// Con window != nil agrega los intervalos de guardia dentro de la ventana.
func (s *Service) ListVerified(ctx context.Context, claims auth.Claims, window *Window) ([]Listing, error) {
	if err := requireRole(claims, auth.RoleSystem); err != nil {
		return nil, err
	}
	if strings.TrimSpace(claims.Visibility) == "" {
		return nil, ErrForbidden
	}
	if window != nil && window.From.After(window.To) {
		return nil, &ValidationError{Problems: []string{"availability_from must not be after availability_to"}}
	}

	recs, err := s.repo.List(ctx, ListFilter{
		Visibility:   claims.Visibility,
		Verification: VerificationVerified,
	})
	if err != nil {
		return nil, fmt.Errorf("list vets: %w", err)
	}

	conv := NewConverter(s.policy)
	out := make([]Listing, 0, len(recs))
	for _, rec := range recs {
		l := Listing{ID: rec.ID, Vet: rec.Vet}
		if window != nil {
			ets, err := conv.EmergencyTimesFromRequests(rec.Vet.EmergencyTimes)
			if err != nil {
				s.log.Warn("skip emergency times of stored vet", map[string]any{"error": err, "vet_id": rec.ID})
			} else {
				l.EmergencyAvailability = conv.EmergencySpans(ets, window.From, window.To)
			}
		}
		out = append(out, l)
	}
	return out, nil
}

// Treatments lista los códigos que acepta Validate.
func (s *Service) Treatments() []string {
	return TreatmentCodes()
}

func (s *Service) load(ctx context.Context, claims auth.Claims) (Record, error) {
	id := strings.TrimSpace(claims.Subject)
	if id == "" {
		return Record{}, ErrForbidden
	}
	rec, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get vet %s: %w", id, err)
	}
	// un token de otra visibilidad no ve el registro
	if rec.Visibility != claims.Visibility {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// notify es best-effort: el registro ya quedó guardado.
func (s *Service) notify(ctx context.Context, rec Record) {
	if s.mailer == nil || len(s.recipients) == 0 {
		return
	}

	token, err := s.issuer.Issue(auth.Claims{
		Subject:    rec.ID,
		Role:       auth.RoleContentManagement,
		Visibility: rec.Visibility,
	})
	if err != nil {
		s.log.Error("issue content management token", map[string]any{"error": err, "vet_id": rec.ID})
		return
	}

	body, err := s.managementBody(rec, token)
	if err != nil {
		s.log.Error("render content management email", map[string]any{"error": err, "vet_id": rec.ID})
		return
	}

	for _, to := range s.recipients {
		msg := mailer.Message{
			To:      to,
			Subject: fmt.Sprintf("Tierarzt-Eintrag prüfen: %s", rec.Vet.ClinicName),
			Body:    body,
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			s.log.Error("send content management email", map[string]any{"error": err, "vet_id": rec.ID, "to": to})
		}
	}
}

func (s *Service) managementBody(rec Record, token string) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}

	link := func(action string) string {
		return s.publicURL + contentManagementPath + "/" + action + "?access-token=" + url.QueryEscape(token)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ein Tierarzt-Eintrag wurde angelegt oder geändert (ID %s).\n\n", rec.ID)
	fmt.Fprintf(&b, "Verifizieren:\n%s\n\n", link("grant-vet-verification"))
	fmt.Fprintf(&b, "Verifizierung zurückziehen:\n%s\n\n", link("revoke-vet-verification"))
	fmt.Fprintf(&b, "Löschen:\n%s\n\n", link("delete-vet"))
	b.WriteString("Daten:\n")
	b.Write(data)
	b.WriteString("\n")
	return b.String(), nil
}

func requireRole(claims auth.Claims, role auth.Role) error {
	if claims.Role != role || strings.TrimSpace(claims.Subject) == "" {
		return ErrForbidden
	}
	return nil
}

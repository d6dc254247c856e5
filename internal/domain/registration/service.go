package registration

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"vet-form/internal/platform/logger"
	"vet-form/internal/ports/auth"
	"vet-form/internal/ports/mailer"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrSendFailed   = errors.New("failed to send email")
)

const (
	tokenPlaceholder = "{token}"
	emailPlaceholder = "{email}"
)

type Options struct {
	// URL del formulario. Puede traer {token} y {email}; si no trae {token}
	// se agrega como query param "token".
	FormURL     string
	ProjectName string
	Logger      logger.Logger
}

// Service manda el link de registro: un token form_user nuevo por pedido.
type Service struct {
	issuer auth.TokenIssuer
	mailer mailer.Mailer
	log    logger.Logger

	formURL     string
	projectName string

	newID func() string
}

func NewService(issuer auth.TokenIssuer, m mailer.Mailer, opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = logger.NewNop()
	}
	name := strings.TrimSpace(opts.ProjectName)
	if name == "" {
		name = "Tierarztsuche"
	}
	return &Service{
		issuer:      issuer,
		mailer:      m,
		log:         l.With(map[string]any{"component": "registration"}),
		formURL:     strings.TrimSpace(opts.FormURL),
		projectName: name,
		newID:       uuid.NewString,
	}
}

// SendRegistrationEmail lo llama el sitio web con su token de visibilidad.
// La clínica nueva hereda esa visibilidad.
func (s *Service) SendRegistrationEmail(ctx context.Context, caller auth.Claims, emailAddress string) error {
	if caller.Role != auth.RoleSystem || strings.TrimSpace(caller.Visibility) == "" {
		return ErrForbidden
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(emailAddress))
	if err != nil {
		return fmt.Errorf("%w: emailAddress", ErrInvalidInput)
	}

	id := s.newID()
	token, err := s.issuer.Issue(auth.Claims{
		Subject:    id,
		Role:       auth.RoleFormUser,
		Visibility: caller.Visibility,
	})
	if err != nil {
		return err
	}

	link := s.FormLink(token, addr.Address)
	msg := mailer.Message{
		To:      addr.Address,
		Subject: fmt.Sprintf("%s: Registrierung für Tierarztpraxen", s.projectName),
		Body: fmt.Sprintf(
			"Hallo,\n\nüber den folgenden Link können Sie die Daten Ihrer Praxis bei %s eintragen:\n\n%s\n\nDer Link ist persönlich. Bitte nicht weitergeben.\n",
			s.projectName, link,
		),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.Error("send registration email", map[string]any{"error": err, "vet_id": id})
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.log.Info("registration email sent", map[string]any{"vet_id": id, "visibility": caller.Visibility})
	return nil
}

// FormLink arma el link del formulario con el token (y el email si la plantilla lo pide).
func (s *Service) FormLink(token, email string) string {
	if strings.Contains(s.formURL, tokenPlaceholder) {
		r := strings.NewReplacer(
			tokenPlaceholder, url.QueryEscape(token),
			emailPlaceholder, url.QueryEscape(email),
		)
		return r.Replace(s.formURL)
	}

	u, err := url.Parse(s.formURL)
	if err != nil {
		return s.formURL + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

package formapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vet-form/internal/domain/vets"
	"vet-form/internal/platform/httpclient"
	"vet-form/internal/platform/logger"
)

var (
	ErrNotFound     = errors.New("formapi: not found")
	ErrValidation   = errors.New("formapi: validation failed")
	ErrUnauthorized = errors.New("formapi: unauthorized")
	ErrTransport    = errors.New("formapi: transport failure")
)

const (
	pathVet                  = "/form/vet"
	pathCreateOrOverwriteVet = "/form/create-or-overwrite-vet"
	pathRegistrationEmail    = "/form/send-vet-registration-email"
	pathTreatments           = "/treatments"
)

// Client habla con el backend del formulario.
// Cada llamada es independiente; no hay reintentos ni cache.
type Client struct {
	http *httpclient.Client
	// token del sitio (visibilidad) para pedir emails de registro
	siteToken string
	log       logger.Logger
}

type Options struct {
	SiteToken string
	Logger    logger.Logger
}

func New(http *httpclient.Client, opts Options) *Client {
	l := opts.Logger
	if l == nil {
		l = logger.NewNop()
	}
	return &Client{
		http:      http,
		siteToken: strings.TrimSpace(opts.SiteToken),
		log:       l.With(map[string]any{"component": "formapi"}),
	}
}

// GetVetWithToken trae la clínica asociada al token del link de registro.
// 404 => ErrNotFound (todavía no se guardó nada).
func (c *Client) GetVetWithToken(ctx context.Context, vetToken string) (vets.FormDataRequest, vets.SchemaVersion, error) {
	var raw []byte
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   pathVet,
		Token:  vetToken,
	}, &raw)
	if err != nil {
		return vets.FormDataRequest{}, 0, c.fail("get vet", err)
	}
	if len(raw) == 0 {
		return vets.FormDataRequest{}, 0, c.fail("get vet", fmt.Errorf("%w: empty body", ErrTransport))
	}

	req, version, err := vets.DecodeFormDataRequest(raw)
	if err != nil {
		return vets.FormDataRequest{}, 0, c.fail("get vet", fmt.Errorf("%w: %v", ErrTransport, err))
	}
	if version == vets.SchemaLegacy {
		c.log.Warn("backend returned legacy form data schema; migrated", map[string]any{"schema": version.String()})
	}
	return req, version, nil
}

// CreateOrOverwriteVet guarda el formulario. 4xx de validación => ErrValidation.
func (c *Client) CreateOrOverwriteVet(ctx context.Context, vetToken string, req vets.FormDataRequest) error {
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPut,
		Path:   pathCreateOrOverwriteVet,
		Token:  vetToken,
		Body:   req,
	}, nil)
	if err != nil {
		return c.fail("create or overwrite vet", err)
	}
	return nil
}

type registrationEmailRequest struct {
	EmailAddress string `json:"emailAddress"`
}

// SendVetRegistrationEmail pide al backend que mande el link de registro.
// Devuelve la respuesta (opaca) del backend.
func (c *Client) SendVetRegistrationEmail(ctx context.Context, email string) (string, error) {
	var out string
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   pathRegistrationEmail,
		Token:  c.siteToken,
		Body:   registrationEmailRequest{EmailAddress: strings.TrimSpace(email)},
	}, &out)
	if err != nil {
		return "", c.fail("send vet registration email", err)
	}
	c.log.Info("registration email requested", map[string]any{"response": out})
	return out, nil
}

// GetTreatments lista los códigos de tratamiento disponibles.
func (c *Client) GetTreatments(ctx context.Context) ([]string, error) {
	var out []string
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   pathTreatments,
	}, &out)
	if err != nil {
		return nil, c.fail("get treatments", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// fail clasifica el error, lo loguea y lo devuelve envuelto.
func (c *Client) fail(op string, err error) error {
	classified := classify(err)
	c.log.Error(op+" failed", map[string]any{
		"error":  err,
		"status": httpclient.StatusCode(err),
	})
	return classified
}

func classify(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrTransport) {
		return err
	}

	switch status := httpclient.StatusCode(err); {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %v", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
}

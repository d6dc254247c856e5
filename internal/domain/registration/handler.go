package registration

import (
	"encoding/json"
	"errors"
	"net/http"

	"vet-form/internal/middleware"
	"vet-form/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRoutes monta el endpoint; limit (opcional) envuelve solo este POST.
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	h := middleware.RequireRole(auth.RoleSystem)(sendRegistrationEmailHandler(svc))
	if limit != nil {
		h = limit(h)
	}
	r.Method(http.MethodPost, "/form/send-vet-registration-email", h)
}

type registrationEmailRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required,email"`
}

// sendRegistrationEmailHandler godoc
// @Summary Enviar link de registro a una clínica
// @Description Genera un token `form_user` nuevo y manda por email el link al formulario. Autenticación: token estático de visibilidad del sitio web.
// @Tags form
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token de visibilidad"
// @Param payload body registrationEmailRequest true "Email de la clínica"
// @Success 200 {string} string "Sent email"
// @Failure 400 {string} string "invalid json / Failed to send email"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 422 {string} string "invalid input"
// @Failure 429 {string} string "too many requests"
// @Router /form/send-vet-registration-email [post]
func sendRegistrationEmailHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req registrationEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "invalid input: emailAddress", http.StatusUnprocessableEntity)
			return
		}

		if err := svc.SendRegistrationEmail(r.Context(), claims, req.EmailAddress); err != nil {
			switch {
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, ErrSendFailed):
				http.Error(w, "Failed to send email", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, "Sent email")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package vets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vet-form/internal/middleware"
	"vet-form/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/form", func(fr chi.Router) {
		fu := fr.With(middleware.RequireRole(auth.RoleFormUser))
		fu.Get("/vet", getVetHandler(svc))
		fu.Put("/create-or-overwrite-vet", createOrOverwriteVetHandler(svc))
	})

	r.Get("/treatments", listTreatmentsHandler(svc))
	r.With(middleware.RequireRole(auth.RoleSystem)).Get("/vets", listVetsHandler(svc))

	r.Route("/content-management", func(cr chi.Router) {
		cr.Use(middleware.RequireRole(auth.RoleContentManagement))
		cr.Get("/grant-vet-verification", setVerificationHandler(svc, VerificationVerified, "Verification granted"))
		cr.Get("/revoke-vet-verification", setVerificationHandler(svc, VerificationUnverified, "Verification revoked"))
		cr.Get("/delete-vet", deleteVetHandler(svc))
	})
}

// getVetHandler godoc
// @Summary Obtener la clínica del link de registro
// @Description Devuelve el formulario guardado para el token `form_user`. 404 si todavía no se guardó nada.
// @Tags form
// @Produce json
// @Param Authorization header string true "Bearer token form_user"
// @Success 200 {object} FormDataRequest
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "vet not found"
// @Router /form/vet [get]
func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		rec, err := svc.Get(r.Context(), claims)
		if err != nil {
			writeServiceError(w, err, "vet not found")
			return
		}
		writeJSON(w, http.StatusOK, rec.Vet)
	}
}

// createOrOverwriteVetHandler godoc
// @Summary Crear o sobrescribir la clínica
// @Description Valida el formulario, lo guarda como `unverified` y avisa a content management por email.
// @Tags form
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token form_user"
// @Param payload body FormDataRequest true "Formulario completo"
// @Success 200 {object} Record
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 422 {string} string "invalid input"
// @Router /form/create-or-overwrite-vet [put]
func createOrOverwriteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req FormDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.CreateOrOverwrite(r.Context(), claims, req)
		if err != nil {
			writeServiceError(w, err, "vet not found")
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// listTreatmentsHandler godoc
// @Summary Listar tratamientos
// @Tags form
// @Produce json
// @Success 200 {array} string
// @Router /treatments [get]
func listTreatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Treatments())
	}
}

// listVetsHandler godoc
// @Summary Listar clínicas verificadas
// @Description Clínicas verificadas de la visibilidad del token del sitio. Con availability_from y availability_to (RFC 3339, ambos o ninguno) agrega los intervalos de guardia.
// @Tags vets
// @Produce json
// @Param Authorization header string true "Bearer token de visibilidad"
// @Param availability_from query string false "Inicio de la ventana (RFC 3339)"
// @Param availability_to query string false "Fin de la ventana (RFC 3339)"
// @Success 200 {array} Listing
// @Failure 400 {string} string "invalid query"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /vets [get]
func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		window, err := parseWindow(r.URL.Query().Get("availability_from"), r.URL.Query().Get("availability_to"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		out, err := svc.ListVerified(r.Context(), claims, window)
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			writeServiceError(w, err, "vet not found")
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseWindow(from, to string) (*Window, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	// un "+02:00" sin escapar llega como espacio
	from, to = strings.ReplaceAll(from, " ", "+"), strings.ReplaceAll(to, " ", "+")
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, errors.New("availability_from and availability_to must be given together")
	}
	f, err := time.Parse(time.RFC3339, from)
	if err != nil {
		return nil, errors.New("availability_from is not an RFC 3339 date time")
	}
	t, err := time.Parse(time.RFC3339, to)
	if err != nil {
		return nil, errors.New("availability_to is not an RFC 3339 date time")
	}
	return &Window{From: f, To: t}, nil
}

// setVerificationHandler godoc
// @Summary Verificar o quitar verificación de una clínica
// @Description Links enviados por email a content management. El token va en `access-token`.
// @Tags content-management
// @Produce json
// @Param access-token query string true "Token content_management"
// @Success 200 {string} string "Verification granted"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "vet not found"
// @Router /content-management/grant-vet-verification [get]
// @Router /content-management/revoke-vet-verification [get]
func setVerificationHandler(svc *Service, v Verification, done string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		if _, err := svc.SetVerification(r.Context(), claims, v); err != nil {
			writeServiceError(w, err, "vet not found")
			return
		}
		writeJSON(w, http.StatusOK, done)
	}
}

// deleteVetHandler godoc
// @Summary Borrar una clínica
// @Tags content-management
// @Produce json
// @Param access-token query string true "Token content_management"
// @Success 200 {string} string "Deleted"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "vet not found"
// @Router /content-management/delete-vet [get]
func deleteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims); err != nil {
			writeServiceError(w, err, "vet not found")
			return
		}
		writeJSON(w, http.StatusOK, "Deleted")
	}
}

func requireClaims(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.Subject) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Claims{}, false
	}
	return claims, true
}

func writeServiceError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, notFound, http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

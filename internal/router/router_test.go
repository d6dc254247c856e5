package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"vet-form/internal/adapters/formapi"
	"vet-form/internal/config"
	"vet-form/internal/domain/calendar"
	"vet-form/internal/domain/vets"
	"vet-form/internal/platform/httpclient"
	"vet-form/internal/ports/mailer"
	"vet-form/internal/router"

	"golang.org/x/crypto/bcrypt"
)

type captureMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *captureMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) lastTo(to string) (mailer.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.sent) - 1; i >= 0; i-- {
		if m.sent[i].To == to {
			return m.sent[i], true
		}
	}
	return mailer.Message{}, false
}

func testConfig(t *testing.T) config.Server {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("site-token"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return config.Server{
		JWTSecret:                 "test-secret",
		JWTTTL:                    time.Hour,
		VisibilityTokenHashes:     "public=" + string(hash),
		ProjectName:               "Tierarztsuche",
		PublicURL:                 "http://api.test",
		FormURL:                   "http://form.test/register",
		ContentManagementEmails:   []string{"cm@example.org"},
		RateLimitPerMinute:        1000,
		RegistrationRatePerMinute: 100,
	}
}

func newServer(t *testing.T) (*httptest.Server, *captureMailer) {
	t.Helper()
	m := &captureMailer{}
	h, err := router.NewRouter(router.Options{Config: testConfig(t), Mailer: m})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, m
}

func newClient(t *testing.T, baseURL, siteToken string) *formapi.Client {
	t.Helper()
	hc, err := httpclient.NewWithBaseURL(baseURL, 5*time.Second)
	if err != nil {
		t.Fatalf("httpclient: %v", err)
	}
	return formapi.New(hc, formapi.Options{SiteToken: siteToken})
}

// findLink devuelve el primer link del body que empieza con prefix.
func findLink(t *testing.T, body, prefix string) *url.URL {
	t.Helper()
	for _, f := range strings.Fields(body) {
		if strings.HasPrefix(f, prefix) {
			u, err := url.Parse(f)
			if err != nil {
				t.Fatalf("parse link %q: %v", f, err)
			}
			return u
		}
	}
	t.Fatalf("no link with prefix %q in:\n%s", prefix, body)
	return nil
}

func validForm() vets.FormDataRequest {
	var oh vets.OpeningHours
	oh.Set(calendar.Mon, vets.OpeningHoursInformation{From: "08:00", To: "18:00"})
	oh.Set(calendar.Fri, vets.OpeningHoursInformation{From: "08:00", To: "14:00"})

	return vets.FormDataRequest{
		ClinicName: "Kleintierpraxis am Park",
		NameInformation: vets.NameInformation{
			FormOfAddress: vets.FormOfAddressMs,
			Title:         vets.TitleDrMedVent,
			FirstName:     "Anna",
			LastName:      "Schmidt",
		},
		Contacts: []vets.ContactEntry{
			{Type: vets.ContactTypeEmail, Value: "info@kleintierpraxis.de"},
			{Type: vets.ContactTypeLandline, Value: "030 1234567"},
		},
		Location: vets.Location{Address: vets.Address{
			Street: "Parkstraße", Number: "3", City: "Berlin", ZipCode: "10115",
		}},
		Treatments:   []string{string(vets.TreatmentDogs), string(vets.TreatmentCats)},
		OpeningHours: oh,
		EmergencyTimes: []vets.EmergencyTimeRequest{
			{StartDate: "06.01.2025", EndDate: "10.01.2025", FromTime: "20:00", ToTime: "06:00", Days: []string{"Mon", "Tue"}},
		},
		Timezone: calendar.DefaultTimezone,
	}
}

func get(t *testing.T, rawURL string, headers map[string]string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestHTTP_EndToEnd_RegistrationToDeletion(t *testing.T) {
	ts, m := newServer(t)
	ctx := context.Background()
	site := newClient(t, ts.URL, "site-token")

	// 1) El sitio pide el email de registro
	out, err := site.SendVetRegistrationEmail(ctx, "vet@example.org")
	if err != nil {
		t.Fatalf("send registration email: %v", err)
	}
	if out != "Sent email" {
		t.Fatalf("unexpected response %q", out)
	}

	reg, ok := m.lastTo("vet@example.org")
	if !ok {
		t.Fatalf("registration email not sent")
	}
	formToken := findLink(t, reg.Body, "http://form.test/register").Query().Get("token")
	if formToken == "" {
		t.Fatalf("form link without token:\n%s", reg.Body)
	}

	// 2) Todavía no hay clínica
	if _, _, err := site.GetVetWithToken(ctx, formToken); !errors.Is(err, formapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first save, got %v", err)
	}

	// 3) Guardar y leer
	form := validForm()
	if err := site.CreateOrOverwriteVet(ctx, formToken, form); err != nil {
		t.Fatalf("create or overwrite: %v", err)
	}
	got, version, err := site.GetVetWithToken(ctx, formToken)
	if err != nil {
		t.Fatalf("get vet: %v", err)
	}
	if version != vets.SchemaCurrent {
		t.Fatalf("expected current schema, got %v", version)
	}
	if got.ClinicName != form.ClinicName || got.Location.Address.ZipCode != "10115" {
		t.Fatalf("unexpected vet: %+v", got)
	}
	if _, ok := got.OpeningHours.Get(calendar.Fri); !ok {
		t.Fatalf("opening hours lost: %+v", got.OpeningHours)
	}
	if len(got.EmergencyTimes) != 1 || got.EmergencyTimes[0].FromTime != "20:00" {
		t.Fatalf("emergency times lost: %+v", got.EmergencyTimes)
	}

	// 4) Un formulario inválido no pisa el guardado
	bad := validForm()
	bad.ClinicName = ""
	if err := site.CreateOrOverwriteVet(ctx, formToken, bad); !errors.Is(err, formapi.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	// 5) Content management usa los links del email
	cm, ok := m.lastTo("cm@example.org")
	if !ok {
		t.Fatalf("content management email not sent")
	}
	for _, step := range []struct {
		action string
		want   string
	}{
		{"grant-vet-verification", "Verification granted"},
		{"revoke-vet-verification", "Verification revoked"},
		{"delete-vet", "Deleted"},
	} {
		link := findLink(t, cm.Body, "http://api.test/content-management/"+step.action)
		st, body := get(t, ts.URL+link.RequestURI(), nil)
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d body=%s", step.action, st, body)
		}
		if !strings.Contains(body, step.want) {
			t.Fatalf("%s: unexpected body %q", step.action, body)
		}
	}

	// 6) Borrada
	if _, _, err := site.GetVetWithToken(ctx, formToken); !errors.Is(err, formapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

// registerVet pasa por el email de registro y guarda validForm; devuelve el token del form.
func registerVet(t *testing.T, ts *httptest.Server, m *captureMailer, email string) string {
	t.Helper()
	ctx := context.Background()
	site := newClient(t, ts.URL, "site-token")
	if _, err := site.SendVetRegistrationEmail(ctx, email); err != nil {
		t.Fatalf("send registration email: %v", err)
	}
	reg, ok := m.lastTo(email)
	if !ok {
		t.Fatalf("registration email not sent to %s", email)
	}
	formToken := findLink(t, reg.Body, "http://form.test/register").Query().Get("token")
	if err := site.CreateOrOverwriteVet(ctx, formToken, validForm()); err != nil {
		t.Fatalf("create or overwrite: %v", err)
	}
	return formToken
}

func TestHTTP_ListVerifiedVets(t *testing.T) {
	ts, m := newServer(t)
	site := map[string]string{"Authorization": "Bearer site-token"}

	formToken := registerVet(t, ts, m, "vet@example.org")

	// sin verificar no aparece
	st, body := get(t, ts.URL+"/vets", site)
	if st != http.StatusOK || strings.TrimSpace(body) != "[]" {
		t.Fatalf("expected empty list, got %d %s", st, body)
	}

	cm, _ := m.lastTo("cm@example.org")
	link := findLink(t, cm.Body, "http://api.test/content-management/grant-vet-verification")
	if st, body := get(t, ts.URL+link.RequestURI(), nil); st != http.StatusOK {
		t.Fatalf("grant: %d %s", st, body)
	}

	q := url.Values{}
	q.Set("availability_from", "2025-01-07T00:00:00+01:00")
	q.Set("availability_to", "2025-01-07T12:00:00+01:00")
	st, body = get(t, ts.URL+"/vets?"+q.Encode(), site)
	if st != http.StatusOK {
		t.Fatalf("list: %d %s", st, body)
	}
	var listed []vets.Listing
	if err := json.Unmarshal([]byte(body), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 1 || listed[0].Vet.ClinicName != validForm().ClinicName {
		t.Fatalf("unexpected listing: %+v", listed)
	}
	// guardia del lunes 20:00 a martes 06:00, recortada a la ventana
	spans := listed[0].EmergencyAvailability
	if len(spans) != 1 || spans[0].To.Sub(spans[0].From) != 6*time.Hour {
		t.Fatalf("unexpected availability: %+v", spans)
	}

	// ventana incompleta o invertida
	if st, _ := get(t, ts.URL+"/vets?availability_from=2025-01-07T00:00:00Z", site); st != http.StatusBadRequest {
		t.Fatalf("expected 400 with only availability_from, got %d", st)
	}
	q.Set("availability_to", "2025-01-06T00:00:00Z")
	if st, _ := get(t, ts.URL+"/vets?"+q.Encode(), site); st != http.StatusBadRequest {
		t.Fatalf("expected 400 with inverted window, got %d", st)
	}

	// el token del formulario no lista
	if st, _ := get(t, ts.URL+"/vets", map[string]string{"Authorization": "Bearer " + formToken}); st != http.StatusForbidden {
		t.Fatalf("expected 403 with form token, got %d", st)
	}
	if st, _ := get(t, ts.URL+"/vets", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", st)
	}
}

func TestHTTP_AuthErrors(t *testing.T) {
	ts, m := newServer(t)
	ctx := context.Background()

	if st, _ := get(t, ts.URL+"/form/vet", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", st)
	}
	if st, _ := get(t, ts.URL+"/form/vet", map[string]string{"Authorization": "Bearer garbage"}); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unknown token, got %d", st)
	}

	// el token del sitio no sirve para el formulario
	if st, _ := get(t, ts.URL+"/form/vet", map[string]string{"Authorization": "Bearer site-token"}); st != http.StatusForbidden {
		t.Fatalf("expected 403 with site token, got %d", st)
	}

	if _, err := newClient(t, ts.URL, "wrong").SendVetRegistrationEmail(ctx, "vet@example.org"); !errors.Is(err, formapi.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := newClient(t, ts.URL, "site-token").SendVetRegistrationEmail(ctx, "no-email"); !errors.Is(err, formapi.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	// un form_user no puede usar los endpoints de content management
	if _, err := newClient(t, ts.URL, "site-token").SendVetRegistrationEmail(ctx, "vet@example.org"); err != nil {
		t.Fatalf("send registration email: %v", err)
	}
	reg, _ := m.lastTo("vet@example.org")
	formToken := findLink(t, reg.Body, "http://form.test/register").Query().Get("token")
	st, _ := get(t, ts.URL+"/content-management/delete-vet?access-token="+url.QueryEscape(formToken), nil)
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 for form_user on content management, got %d", st)
	}
}

func TestHTTP_PublicEndpoints(t *testing.T) {
	ts, _ := newServer(t)

	if st, body := get(t, ts.URL+"/health", nil); st != http.StatusOK || body != "ok" {
		t.Fatalf("health: %d %q", st, body)
	}

	treatments, err := newClient(t, ts.URL, "").GetTreatments(context.Background())
	if err != nil {
		t.Fatalf("treatments: %v", err)
	}
	if len(treatments) != len(vets.TreatmentCodes()) {
		t.Fatalf("expected %d treatments, got %v", len(vets.TreatmentCodes()), treatments)
	}

	if st, _ := get(t, ts.URL+"/swagger/doc.json", nil); st != http.StatusOK {
		t.Fatalf("swagger doc: %d", st)
	}
}

func TestNewRouter_RequiresJWTSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTSecret = ""
	if _, err := router.NewRouter(router.Options{Config: cfg, Mailer: &captureMailer{}}); err == nil {
		t.Fatalf("expected error without JWT secret")
	}

	cfg = testConfig(t)
	cfg.VisibilityTokenHashes = "public=plain"
	if _, err := router.NewRouter(router.Options{Config: cfg, Mailer: &captureMailer{}}); err == nil {
		t.Fatalf("expected error with malformed visibility hashes")
	}
}

package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "vet-form/docs"

	"vet-form/internal/adapters/auth/apitoken"
	"vet-form/internal/adapters/auth/jwttokens"
	"vet-form/internal/adapters/mail"
	mem "vet-form/internal/adapters/storage/memory"
	pg "vet-form/internal/adapters/storage/postgres"
	"vet-form/internal/config"
	"vet-form/internal/domain/registration"
	"vet-form/internal/domain/vets"
	"vet-form/internal/middleware"
	"vet-form/internal/platform/logger"
	"vet-form/internal/ports/mailer"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Server

	// Opcional: si viene, usa Postgres. Si no, intenta Config.DBDSN y si no in-memory.
	DB *sql.DB

	// Opcional: si no viene, SMTP si está configurado y si no LogMailer.
	Mailer mailer.Mailer

	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	tokens, err := jwttokens.New(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}
	entries, err := apitoken.ParseEntries(cfg.VisibilityTokenHashes)
	if err != nil {
		return nil, fmt.Errorf("visibility tokens: %w", err)
	}
	if len(entries) == 0 {
		log.Warn("no visibility tokens configured, registration emails are disabled", nil)
	}

	repo, err := vetRepo(opts.DB, cfg, log)
	if err != nil {
		return nil, err
	}
	m := opts.Mailer
	if m == nil {
		m = newMailer(cfg.SMTP, log)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(corsOptions(cfg.CORSAllowedOrigins)))
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}

	// JWT primero: los tokens estáticos pasan por bcrypt y son más caros.
	r.Use(middleware.AuthContext(tokens, apitoken.NewVerifier(entries)))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	vetsSvc := vets.NewService(repo, tokens, m, vets.Options{
		PublicURL:               cfg.PublicURL,
		ContentManagementEmails: cfg.ContentManagementEmails,
		Logger:                  log,
	})
	regSvc := registration.NewService(tokens, m, registration.Options{
		FormURL:     cfg.FormURL,
		ProjectName: cfg.ProjectName,
		Logger:      log,
	})

	vets.RegisterRoutes(r, vetsSvc)
	var limit func(http.Handler) http.Handler
	if cfg.RegistrationRatePerMinute > 0 {
		limit = middleware.NewRateLimiter(cfg.RegistrationRatePerMinute).Limit
	}
	registration.RegisterRoutes(r, regSvc, limit)

	return r, nil
}

func vetRepo(db *sql.DB, cfg config.Server, log logger.Logger) (vets.Repository, error) {
	if db == nil && cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN, pg.PoolOptions{
			MaxOpenConns: cfg.DBMaxOpenConns,
			MaxIdleConns: cfg.DBMaxIdleConns,
		})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db = opened
	}
	if db == nil {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
		return mem.NewVetRepo(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pg.Migrate(ctx, db); err != nil {
		return nil, err
	}
	return pg.NewVetsRepo(db), nil
}

func newMailer(c config.SMTP, log logger.Logger) mailer.Mailer {
	m, err := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     c.Host,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
		Sender:   c.Sender,
	})
	if errors.Is(err, mail.ErrNotConfigured) {
		log.Warn("SMTP not configured, emails go to the log", nil)
		return mail.NewLogMailer(log)
	}
	if err != nil {
		log.Error("smtp mailer", map[string]any{"error": err})
		return mail.NewLogMailer(log)
	}
	return m
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}
}

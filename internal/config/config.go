package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load lee .env (si existe) antes de consultar el entorno.
func Load(files ...string) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring env file: %v", err)
	}
}

// Server agrupa la configuración del backend del formulario.
type Server struct {
	Port string
	// DSN de Postgres; vacío => repositorio en memoria.
	DBDSN string
	// Tamaño del pool de database/sql.
	DBMaxOpenConns int
	DBMaxIdleConns int

	JWTSecret string
	JWTTTL    time.Duration

	// "id=bcrypthash,id2=bcrypthash"
	VisibilityTokenHashes string

	// Nombre que aparece en los emails.
	ProjectName string

	// Base pública del backend (links de content-management).
	PublicURL string
	// URL del formulario web; el token va como query param.
	FormURL string

	ContentManagementEmails []string

	CORSAllowedOrigins []string

	// Límite global por IP (httprate) y el más estricto del email de registro.
	RateLimitPerMinute        int
	RegistrationRatePerMinute int

	SMTP SMTP
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// Client agrupa la configuración del cliente de la API (CLI).
type Client struct {
	APIURL string
	// Token form_user del link de registro.
	Token string
	// Token estático de visibilidad del sitio (pedidos de registro).
	SiteToken string
	Timeout   time.Duration
}

func NewServer() Server {
	return Server{
		Port:                      GetEnvString("PORT", "8080"),
		DBDSN:                     GetEnvString("DB_DSN", ""),
		DBMaxOpenConns:            GetEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:            GetEnvInt("DB_MAX_IDLE_CONNS", 5),
		JWTSecret:                 GetEnvString("JWT_SECRET", ""),
		JWTTTL:                    GetEnvDuration("JWT_TTL", 30*24*time.Hour),
		VisibilityTokenHashes:     GetEnvString("VISIBILITY_TOKEN_HASHES", ""),
		ProjectName:               GetEnvString("PROJECT_NAME", "Tierarztsuche"),
		PublicURL:                 GetEnvString("PUBLIC_URL", "http://localhost:8080"),
		FormURL:                   GetEnvString("FORM_URL", "http://localhost:5173"),
		ContentManagementEmails:   GetEnvList("CONTENT_MANAGEMENT_EMAILS"),
		CORSAllowedOrigins:        GetEnvList("CORS_ALLOWED_ORIGINS"),
		RateLimitPerMinute:        GetEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RegistrationRatePerMinute: GetEnvInt("REGISTRATION_RATE_PER_MINUTE", 5),
		SMTP: SMTP{
			Host:     GetEnvString("SMTP_HOST", ""),
			Port:     GetEnvInt("SMTP_PORT", 587),
			Username: GetEnvString("SMTP_USERNAME", ""),
			Password: GetEnvString("SMTP_PASSWORD", ""),
			Sender:   GetEnvString("SMTP_SENDER", ""),
		},
	}
}

func NewClient() Client {
	return Client{
		APIURL:    GetEnvString("API_URL", "http://localhost:8080"),
		Token:     GetEnvString("VET_TOKEN", ""),
		SiteToken: GetEnvString("SITE_TOKEN", ""),
		Timeout:   GetEnvDuration("API_TIMEOUT", 10*time.Second),
	}
}

func GetEnvString(key, defaultValue string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return strings.TrimSpace(v)
}

func GetEnvInt(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Printf("config: error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return n
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		log.Printf("config: error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return d
}

// GetEnvList separa por comas y descarta vacíos.
func GetEnvList(key string) []string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

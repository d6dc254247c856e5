// vetform es el cliente de línea de comandos del backend del formulario.
//
//	vetform get                  muestra la clínica del token (VET_TOKEN)
//	vetform put -file form.json  valida y guarda el formulario
//	vetform register -email x    pide el email de registro (SITE_TOKEN)
//	vetform treatments           lista los tratamientos
//	vetform template             propone una guardia para la semana siguiente
//	vetform hash-token <token>   hash bcrypt para VISIBILITY_TOKEN_HASHES
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"vet-form/internal/adapters/auth/apitoken"
	"vet-form/internal/adapters/formapi"
	"vet-form/internal/config"
	"vet-form/internal/domain/calendar"
	"vet-form/internal/domain/vets"
	"vet-form/internal/platform/httpclient"
	"vet-form/internal/platform/logger"
)

var errUsage = errors.New("usage: vetform <get|put|register|treatments|template|hash-token> [flags]")

func main() {
	config.Load()
	log := logger.NewFromEnv()
	defer func() { _ = log.Sync() }()

	if err := run(context.Background(), os.Args[1:], config.NewClient(), log, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, cfg config.Client, log logger.Logger, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.APIURL, "api", cfg.APIURL, "URL del backend")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "token form_user")
	fs.StringVar(&cfg.SiteToken, "site-token", cfg.SiteToken, "token de visibilidad del sitio")
	file := fs.String("file", "", "formulario JSON (put)")
	email := fs.String("email", "", "email de la clínica (register)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %v: %w", cmd, err, errUsage)
	}

	switch cmd {
	case "hash-token":
		return hashToken(fs.Args(), out)
	case "template":
		return printTemplate(out)
	}

	hc, err := httpclient.NewWithBaseURL(cfg.APIURL, cfg.Timeout)
	if err != nil {
		return err
	}
	client := formapi.New(hc, formapi.Options{SiteToken: cfg.SiteToken, Logger: log})

	switch cmd {
	case "get":
		v, _, err := client.GetVetWithToken(ctx, cfg.Token)
		if err != nil {
			return err
		}
		return printJSON(out, v)

	case "put":
		if *file == "" {
			return fmt.Errorf("put: -file is required: %w", errUsage)
		}
		req, err := readForm(*file)
		if err != nil {
			return err
		}
		if err := client.CreateOrOverwriteVet(ctx, cfg.Token, req); err != nil {
			return err
		}
		fmt.Fprintln(out, "saved")
		return nil

	case "register":
		if strings.TrimSpace(*email) == "" {
			return fmt.Errorf("register: -email is required: %w", errUsage)
		}
		resp, err := client.SendVetRegistrationEmail(ctx, *email)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, resp)
		return nil

	case "treatments":
		codes, err := client.GetTreatments(ctx)
		if err != nil {
			return err
		}
		for _, c := range codes {
			fmt.Fprintf(out, "%s\t%s\n", c, vets.TreatmentLabel(c))
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

// readForm acepta también el esquema viejo y valida antes de mandar.
func readForm(path string) (vets.FormDataRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return vets.FormDataRequest{}, err
	}
	req, version, err := vets.DecodeFormDataRequest(data)
	if err != nil {
		return vets.FormDataRequest{}, fmt.Errorf("%s: %w", path, err)
	}
	if version == vets.SchemaLegacy {
		fmt.Fprintf(os.Stderr, "%s: legacy schema migrated\n", path)
	}

	req = vets.Normalize(req)
	if err := vets.Validate(req, calendar.DefaultPolicy()); err != nil {
		return vets.FormDataRequest{}, err
	}
	return req, nil
}

func printTemplate(out io.Writer) error {
	conv := vets.NewConverter(calendar.DefaultPolicy())
	tmpl := conv.DefaultEmergencyTimeTemplate()
	et, err := conv.EmergencyTimeFromTemplate(tmpl)
	if err != nil {
		return err
	}
	return printJSON(out, map[string]any{
		"template": tmpl,
		"request":  conv.EmergencyTimeToRequest(et),
	})
}

func hashToken(args []string, out io.Writer) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("hash-token: expected exactly one token: %w", errUsage)
	}
	h, err := apitoken.HashToken(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, h)
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package vets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"vet-form/internal/domain/calendar"
)

// ErrSchemaConflict: el payload trae el mismo dato en la forma vieja y en la actual con valores distintos.
var ErrSchemaConflict = errors.New("conflicting legacy and current fields")

// SchemaVersion identifica la versión del wire format recibida.
type SchemaVersion int

const (
	// SchemaCurrent: zipCode string, días "Mon".."Sun".
	SchemaCurrent SchemaVersion = iota + 1
	// SchemaLegacy: postCode y/o zipCode numérico, días "monday".."sunday".
	SchemaLegacy
)

func (v SchemaVersion) String() string {
	switch v {
	case SchemaCurrent:
		return "current"
	case SchemaLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// DecodeFormDataRequest es el único punto que acepta el esquema viejo.
// Migra postCode -> zipCode, zipCode numérico -> string y nombres de días completos
// -> tokens canónicos, y reporta qué versión encontró. Todo lo demás pasa por el
// decode estricto de FormDataRequest.
func DecodeFormDataRequest(data []byte) (FormDataRequest, SchemaVersion, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return FormDataRequest{}, 0, fmt.Errorf("decode form data: %w", err)
	}

	m := &migration{}
	if err := m.address(raw); err != nil {
		return FormDataRequest{}, 0, err
	}
	if err := m.openingHours(raw); err != nil {
		return FormDataRequest{}, 0, err
	}
	if err := m.emergencyTimes(raw); err != nil {
		return FormDataRequest{}, 0, err
	}

	// Re-marshal al struct para reutilizar tags y validaciones de tipos.
	b, err := json.Marshal(raw)
	if err != nil {
		return FormDataRequest{}, 0, fmt.Errorf("re-encode form data: %w", err)
	}
	var out FormDataRequest
	if err := json.Unmarshal(b, &out); err != nil {
		return FormDataRequest{}, 0, fmt.Errorf("decode form data: %w", err)
	}

	if m.legacy {
		return out, SchemaLegacy, nil
	}
	return out, SchemaCurrent, nil
}

type migration struct {
	legacy bool
}

func (m *migration) address(raw map[string]any) error {
	loc, ok := raw["location"].(map[string]any)
	if !ok {
		return nil
	}
	addr, ok := loc["address"].(map[string]any)
	if !ok {
		return nil
	}

	if pc, exists := addr["postCode"]; exists {
		m.legacy = true
		if zc, has := addr["zipCode"]; has && fmt.Sprint(zc) != fmt.Sprint(pc) {
			return fmt.Errorf("%w: location.address.postCode %v vs zipCode %v", ErrSchemaConflict, pc, zc)
		}
		addr["zipCode"] = pc
		delete(addr, "postCode")
	}

	// El backend guarda el código postal como entero.
	if n, isNum := addr["zipCode"].(json.Number); isNum {
		m.legacy = true
		addr["zipCode"] = n.String()
	}
	return nil
}

func (m *migration) openingHours(raw map[string]any) error {
	oh, ok := raw["openingHours"].(map[string]any)
	if !ok {
		return nil
	}

	migrated := make(map[string]any, len(oh))
	for k, v := range oh {
		token, err := m.dayToken(k)
		if err != nil {
			return fmt.Errorf("openingHours: %w", err)
		}
		// "Mon" y "monday" juntos: el orden del map no puede decidir cuál gana
		if _, dup := migrated[token]; dup {
			return fmt.Errorf("%w: openingHours.%s given twice", ErrSchemaConflict, token)
		}
		migrated[token] = v
	}
	raw["openingHours"] = migrated
	return nil
}

func (m *migration) emergencyTimes(raw map[string]any) error {
	ets, ok := raw["emergencyTimes"].([]any)
	if !ok {
		return nil
	}

	for i, item := range ets {
		et, ok := item.(map[string]any)
		if !ok {
			continue
		}
		days, ok := et["days"].([]any)
		if !ok {
			continue
		}
		for j, d := range days {
			s, ok := d.(string)
			if !ok {
				return fmt.Errorf("emergencyTimes[%d].days[%d]: %w: %v", i, j, calendar.ErrInvalidDayToken, d)
			}
			token, err := m.dayToken(s)
			if err != nil {
				return fmt.Errorf("emergencyTimes[%d].days[%d]: %w", i, j, err)
			}
			days[j] = token
		}
	}
	return nil
}

func (m *migration) dayToken(s string) (string, error) {
	if d, err := calendar.ParseDay(s); err == nil {
		return d.String(), nil
	}
	d, err := calendar.ParseLegacyDay(s)
	if err != nil {
		return "", err
	}
	m.legacy = true
	return d.String(), nil
}

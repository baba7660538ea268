package domain

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Mercosul-style plate: 3 letters, 1 digit, 1 alphanumeric, 2 digits.
var placaPattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

// Placa is an immutable license-plate value object. The wrapped string is
// always trimmed and upper-cased before validation.
type Placa struct {
	value string
}

func NewPlaca(raw string) (Placa, error) {
	if strings.TrimSpace(raw) == "" {
		return Placa{}, NewValidationError("Placa é obrigatória.")
	}

	v := strings.ToUpper(strings.TrimSpace(raw))
	if !placaPattern.MatchString(v) {
		return Placa{}, NewValidationError("Placa inválida.")
	}

	return Placa{value: v}, nil
}

func (p Placa) String() string {
	return p.value
}

func (p Placa) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

func (p *Placa) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	placa, err := NewPlaca(raw)
	if err != nil {
		return err
	}
	*p = placa
	return nil
}

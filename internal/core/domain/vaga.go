package domain

import "strings"

// Status values recognized by the link generation. Status itself is a free
// string; nothing besides the ocupar/liberar links depends on it.
const (
	StatusLivre   = "Livre"
	StatusOcupada = "Ocupada"
)

type Vaga struct {
	ID     int64  `json:"id"`
	Status string `json:"status" validate:"max=20"`
	Numero int    `json:"numero" validate:"min=1"`
	Patio  string `json:"patio" validate:"required,max=50"`
}

func NewVaga(numero int, patio string) (*Vaga, error) {
	v := &Vaga{Status: StatusLivre}
	if err := v.setLocalizacao(numero, patio); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vaga) AtualizarLocalizacao(numero int, patio string) error {
	return v.setLocalizacao(numero, patio)
}

func (v *Vaga) setLocalizacao(numero int, patio string) error {
	if numero <= 0 {
		return NewValidationError("Número da vaga deve ser maior que zero.")
	}
	if strings.TrimSpace(patio) == "" {
		return NewValidationError("Pátio é obrigatório.")
	}

	v.Numero = numero
	v.Patio = strings.TrimSpace(patio)
	return nil
}

func (v *Vaga) Livre() bool {
	return strings.EqualFold(v.Status, StatusLivre)
}

func (v *Vaga) Ocupada() bool {
	return strings.EqualFold(v.Status, StatusOcupada)
}

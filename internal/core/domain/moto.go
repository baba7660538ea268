package domain

import (
	"strings"
	"time"
)

// Ano mínimo aceito: primeira moto fabricada em 1885.
const anoMinimo = 1885

type Moto struct {
	ID     int64  `json:"id"`
	Placa  Placa  `json:"placa"`
	Marca  string `json:"marca" validate:"required,max=50"`
	Modelo string `json:"modelo" validate:"required,max=50"`
	Ano    int    `json:"ano" validate:"min=1885"`
}

func NewMoto(placa Placa, marca, modelo string, ano int) (*Moto, error) {
	m := &Moto{}
	m.SetPlaca(placa)
	if err := m.AtualizarDadosBasicos(marca, modelo, ano); err != nil {
		return nil, err
	}
	return m, nil
}

// SetPlaca replaces the plate unconditionally; Placa validates itself on
// construction.
func (m *Moto) SetPlaca(placa Placa) {
	m.Placa = placa
}

func (m *Moto) AtualizarDadosBasicos(marca, modelo string, ano int) error {
	if strings.TrimSpace(marca) == "" {
		return NewValidationError("Marca é obrigatória.")
	}
	if strings.TrimSpace(modelo) == "" {
		return NewValidationError("Modelo é obrigatório.")
	}
	anoMax := time.Now().UTC().Year() + 1
	if ano < anoMinimo || ano > anoMax {
		return NewValidationError("Ano inválido.")
	}

	m.Marca = strings.TrimSpace(marca)
	m.Modelo = strings.TrimSpace(modelo)
	m.Ano = ano
	return nil
}

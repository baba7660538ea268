package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlaca(t *testing.T, raw string) Placa {
	t.Helper()
	placa, err := NewPlaca(raw)
	require.NoError(t, err)
	return placa
}

func TestNewMoto(t *testing.T) {
	moto, err := NewMoto(mustPlaca(t, "KAC7516"), " Honda ", " CG 160 ", 2021)
	require.NoError(t, err)

	assert.Equal(t, "KAC7516", moto.Placa.String())
	assert.Equal(t, "Honda", moto.Marca)
	assert.Equal(t, "CG 160", moto.Modelo)
	assert.Equal(t, 2021, moto.Ano)
}

func TestNewMotoInvalid(t *testing.T) {
	anoMax := time.Now().UTC().Year() + 1

	tests := []struct {
		name   string
		marca  string
		modelo string
		ano    int
	}{
		{"blank marca", "  ", "CG 160", 2021},
		{"blank modelo", "Honda", "", 2021},
		{"ano before first motorcycle", "Honda", "CG 160", 1884},
		{"ano too far in the future", "Honda", "CG 160", anoMax + 1},
		{"ano zero", "Honda", "CG 160", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMoto(mustPlaca(t, "KAC7516"), tt.marca, tt.modelo, tt.ano)
			require.Error(t, err)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestMotoAnoBoundaries(t *testing.T) {
	anoMax := time.Now().UTC().Year() + 1

	for _, ano := range []int{1885, anoMax} {
		_, err := NewMoto(mustPlaca(t, "KAC7516"), "Honda", "CG 160", ano)
		assert.NoError(t, err, "ano %d should be accepted", ano)
	}
}

func TestMotoAtualizarDadosBasicos(t *testing.T) {
	moto, err := NewMoto(mustPlaca(t, "KAC7516"), "Honda", "CG 160", 2021)
	require.NoError(t, err)

	require.NoError(t, moto.AtualizarDadosBasicos("Yamaha", "Fazer 250", 2023))
	assert.Equal(t, "Yamaha", moto.Marca)
	assert.Equal(t, "Fazer 250", moto.Modelo)
	assert.Equal(t, 2023, moto.Ano)

	// invalid update keeps previous state
	require.Error(t, moto.AtualizarDadosBasicos("", "Fazer 250", 2023))
	assert.Equal(t, "Yamaha", moto.Marca)
}

func TestMotoSetPlaca(t *testing.T) {
	moto, err := NewMoto(mustPlaca(t, "KAC7516"), "Honda", "CG 160", 2021)
	require.NoError(t, err)

	moto.SetPlaca(mustPlaca(t, "XYZ1234"))
	assert.Equal(t, "XYZ1234", moto.Placa.String())
}

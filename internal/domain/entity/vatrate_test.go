package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faktura-api/internal/domain"
	"github.com/jhoicas/faktura-api/internal/domain/entity"
)

func TestParseVATRate_Porcentaje(t *testing.T) {
	rate, err := entity.ParseVATRate("23")
	require.NoError(t, err, "un código numérico debe parsear sin error")

	assert.Equal(t, entity.VATPercentage, rate.Kind)
	assert.Equal(t, "23", rate.Code, "el código crudo se conserva intacto")
	assert.Equal(t, "23 %", rate.Display())
}

func TestParseVATRate_PorcentajeDecimal(t *testing.T) {
	rate, err := entity.ParseVATRate("23.0")
	require.NoError(t, err)

	assert.Equal(t, "23.0", rate.Code, "\"23.0\" no se normaliza a \"23\"")
	assert.Equal(t, "23.0 %", rate.Display())
}

func TestParseVATRate_NoSujeto(t *testing.T) {
	rate, err := entity.ParseVATRate("-1")
	require.NoError(t, err)

	assert.Equal(t, entity.VATNotApplicable, rate.Kind)
	assert.Equal(t, "np", rate.Display(), "el centinela -1 se muestra como np")
}

func TestParseVATRate_Exento(t *testing.T) {
	for _, code := range []string{"ZW", "zw", "Zw"} {
		rate, err := entity.ParseVATRate(code)
		require.NoError(t, err, "ZW debe aceptarse sin distinguir mayúsculas: %q", code)

		assert.Equal(t, entity.VATExempt, rate.Kind)
		assert.Equal(t, "ZW", rate.Display(), "la celda siempre muestra ZW canónico")
	}
}

func TestParseVATRate_CodigoInvalido(t *testing.T) {
	for _, code := range []string{"", "abc", "23%", "zwolniony"} {
		_, err := entity.ParseVATRate(code)
		require.Error(t, err, "código no reconocido debe fallar: %q", code)
		assert.ErrorIs(t, err, domain.ErrInvalidVATRate)
	}
}

func TestLineItem_DisplayName(t *testing.T) {
	item := entity.LineItem{Name: []string{"Usługa programistyczna", "(umowa 12/2024)"}}
	assert.Equal(t, "Usługa programistyczna\n(umowa 12/2024)", item.DisplayName(),
		"los segmentos del nombre se unen con salto de línea")

	single := entity.LineItem{Name: []string{"Hosting"}}
	assert.Equal(t, "Hosting", single.DisplayName())
}

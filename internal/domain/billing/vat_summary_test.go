package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faktura-api/internal/domain"
	"github.com/jhoicas/faktura-api/internal/domain/billing"
	"github.com/jhoicas/faktura-api/internal/domain/entity"
)

func item(rate, net, vat, gross string) entity.LineItem {
	return entity.LineItem{
		Name:      []string{"Usługa"},
		Quantity:  "1",
		Price:     net,
		Net:       net,
		VATRate:   rate,
		VATAmount: vat,
		Gross:     gross,
	}
}

// TestSummarizeVAT_DosTasas reproduce el caso canónico: dos líneas con tasas
// distintas producen dos filas de resumen y el total general suma ambas.
func TestSummarizeVAT_DosTasas(t *testing.T) {
	items := []entity.LineItem{
		item("23", "100.00", "23.00", "123.00"),
		item("-1", "50.00", "0.00", "50.00"),
	}

	rows, err := billing.SummarizeVAT(items)
	require.NoError(t, err)
	require.Len(t, rows, 2, "una fila por código de tasa distinto")

	assert.Equal(t, entity.VATPercentage, rows[0].Rate.Kind)
	assert.Equal(t, "100.00", rows[0].Net.StringFixed(2))
	assert.Equal(t, "23.00", rows[0].VATAmount.StringFixed(2))
	assert.Equal(t, "123.00", rows[0].Gross.StringFixed(2))

	assert.Equal(t, entity.VATNotApplicable, rows[1].Rate.Kind)
	assert.Equal(t, "50.00", rows[1].Net.StringFixed(2))

	net, vat, gross, err := billing.SumTotals(items)
	require.NoError(t, err)
	assert.Equal(t, "150.00", net.StringFixed(2))
	assert.Equal(t, "23.00", vat.StringFixed(2))
	assert.Equal(t, "173.00", gross.StringFixed(2))
}

// TestSummarizeVAT_AgrupaPorCodigoCrudo la agrupación es por igualdad exacta
// del string: "23" y "23.0" representan el mismo porcentaje pero forman grupos
// separados.
func TestSummarizeVAT_AgrupaPorCodigoCrudo(t *testing.T) {
	items := []entity.LineItem{
		item("23", "100.00", "23.00", "123.00"),
		item("23.0", "200.00", "46.00", "246.00"),
		item("23", "10.00", "2.30", "12.30"),
	}

	rows, err := billing.SummarizeVAT(items)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "23", rows[0].Rate.Code)
	assert.Equal(t, "110.00", rows[0].Net.StringFixed(2), "las líneas con código idéntico se acumulan")
	assert.Equal(t, "23.0", rows[1].Rate.Code)
	assert.Equal(t, "200.00", rows[1].Net.StringFixed(2))
}

// TestSummarizeVAT_OrdenPrimeraAparicion las filas salen en el orden en que
// cada código aparece por primera vez en las líneas.
func TestSummarizeVAT_OrdenPrimeraAparicion(t *testing.T) {
	items := []entity.LineItem{
		item("8", "10.00", "0.80", "10.80"),
		item("23", "100.00", "23.00", "123.00"),
		item("8", "20.00", "1.60", "21.60"),
		item("ZW", "5.00", "0.00", "5.00"),
	}

	rows, err := billing.SummarizeVAT(items)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "8", rows[0].Rate.Code)
	assert.Equal(t, "23", rows[1].Rate.Code)
	assert.Equal(t, "ZW", rows[2].Rate.Code)
	assert.Equal(t, "30.00", rows[0].Net.StringFixed(2))
}

func TestSummarizeVAT_PrecisionDecimal(t *testing.T) {
	// 0.1 + 0.2 en float64 no da 0.3; con decimales sí.
	items := []entity.LineItem{
		item("23", "0.10", "0.02", "0.12"),
		item("23", "0.20", "0.05", "0.25"),
	}

	rows, err := billing.SummarizeVAT(items)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "0.30", rows[0].Net.StringFixed(2))
}

func TestSummarizeVAT_TasaInvalida(t *testing.T) {
	items := []entity.LineItem{
		item("23", "100.00", "23.00", "123.00"),
		item("foo", "50.00", "0.00", "50.00"),
	}

	_, err := billing.SummarizeVAT(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidVATRate)
	assert.Contains(t, err.Error(), "línea 2", "el error identifica la línea culpable")
}

func TestSummarizeVAT_ImporteMalformado(t *testing.T) {
	items := []entity.LineItem{
		item("23", "cien", "23.00", "123.00"),
	}

	_, err := billing.SummarizeVAT(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
}

func TestSummarizeVAT_SinLineas(t *testing.T) {
	rows, err := billing.SummarizeVAT(nil)
	require.NoError(t, err)
	assert.Empty(t, rows, "sin líneas no hay filas de resumen")
}

func TestSumTotals_ImporteMalformado(t *testing.T) {
	items := []entity.LineItem{
		item("23", "100.00", "23,00", "123.00"), // coma decimal: no interpretable
	}

	_, _, _, err := billing.SumTotals(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedAmount)
	assert.Contains(t, err.Error(), "línea 1")
}

package quoting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
	"github.com/bmcuruguay/panelin-api/internal/domain/quoting"
)

func rval(v float64) *float64 { return &v }

func panelIsodec(id string, espesor int, r *float64) *entity.Product {
	return &entity.Product{
		ID: id, Family: "ISODEC", ThicknessMM: espesor, ResistenciaTermica: r,
	}
}

// TestCompareEnergy_HermanoMasGrueso: 100mm contra 150mm de la misma familia,
// R 2.86 contra 4.29: mejora del 50.0% y diferencia de resistencia 1.43.
func TestCompareEnergy_HermanoMasGrueso(t *testing.T) {
	base := panelIsodec("ISODEC_EPS_100", 100, rval(2.86))
	catalogo := []*entity.Product{
		base,
		panelIsodec("ISODEC_EPS_150", 150, rval(4.29)),
	}

	cmp := quoting.CompareEnergy(catalogo, base)

	require.NotNil(t, cmp)
	assert.Equal(t, 100, cmp.ThicknessA)
	assert.Equal(t, 150, cmp.ThicknessB)
	assert.Equal(t, "50.0%", cmp.SavingsPct)
	assert.Equal(t, "1.43", cmp.ResistanceDiff)
}

// TestCompareEnergy_PrimerMatch: se toma el primer hermano más grueso en orden
// de declaración del catálogo, no el de espesor más cercano.
func TestCompareEnergy_PrimerMatch(t *testing.T) {
	base := panelIsodec("ISODEC_PIR_50", 50, rval(2.27))
	catalogo := []*entity.Product{
		panelIsodec("ISODEC_EPS_100", 100, rval(2.86)),
		panelIsodec("ISODEC_EPS_150", 150, rval(4.29)),
		base,
	}

	cmp := quoting.CompareEnergy(catalogo, base)

	require.NotNil(t, cmp)
	assert.Equal(t, 100, cmp.ThicknessB, "debe tomar el primero declarado, no el más grueso")
	assert.Equal(t, "26.0%", cmp.SavingsPct)
	assert.Equal(t, "0.59", cmp.ResistanceDiff)
}

// TestCompareEnergy_SinCandidato: el panel más grueso de su familia no tiene
// con quién compararse y la sugerencia se omite.
func TestCompareEnergy_SinCandidato(t *testing.T) {
	base := panelIsodec("ISODEC_EPS_150", 150, rval(4.29))
	catalogo := []*entity.Product{
		panelIsodec("ISODEC_EPS_100", 100, rval(2.86)),
		base,
	}

	assert.Nil(t, quoting.CompareEnergy(catalogo, base))
}

// TestCompareEnergy_OtraFamiliaNoCuenta: un panel más grueso de otra familia
// no participa de la comparación.
func TestCompareEnergy_OtraFamiliaNoCuenta(t *testing.T) {
	base := panelIsodec("ISODEC_EPS_100", 100, rval(2.86))
	otro := &entity.Product{ID: "ISOFRIG_PIR_80", Family: "ISOFRIG", ThicknessMM: 200, ResistenciaTermica: rval(9.1)}

	assert.Nil(t, quoting.CompareEnergy([]*entity.Product{base, otro}, base))
}

// TestCompareEnergy_SinResistencia: si cualquiera de los dos no publica
// resistencia térmica la comparación se omite en silencio, nunca falla.
func TestCompareEnergy_SinResistencia(t *testing.T) {
	sinR := panelIsodec("ISODEC_EPS_100", 100, nil)
	conR := panelIsodec("ISODEC_EPS_150", 150, rval(4.29))

	assert.Nil(t, quoting.CompareEnergy([]*entity.Product{sinR, conR}, sinR))
	assert.Nil(t, quoting.CompareEnergy(
		[]*entity.Product{conR, panelIsodec("ISODEC_EPS_200", 200, nil)}, conR))
}

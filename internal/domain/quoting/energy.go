package quoting

import (
	"fmt"

	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
)

// EnergyComparison mejora de resistencia térmica frente al hermano más grueso
// de la misma familia. Solo se produce cuando ambos productos publican
// resistencia térmica; en cualquier otro caso la comparación se omite.
type EnergyComparison struct {
	ThicknessA     int    `json:"thickness_a"`
	ThicknessB     int    `json:"thickness_b"`
	SavingsPct     string `json:"savings_pct"`
	ResistanceDiff string `json:"resistance_diff"`
}

// CompareEnergy busca el primer producto de la misma familia con espesor
// estrictamente mayor, recorriendo el catálogo en orden de declaración (primer
// match, no el espesor más cercano). Devuelve nil si no hay candidato o falta
// resistencia térmica en alguno de los dos: omisión, no error.
func CompareEnergy(products []*entity.Product, base *entity.Product) *EnergyComparison {
	var mejor *entity.Product
	for _, p := range products {
		if p.Family == base.Family && p.ThicknessMM > base.ThicknessMM {
			mejor = p
			break
		}
	}
	if mejor == nil || base.ResistenciaTermica == nil || mejor.ResistenciaTermica == nil {
		return nil
	}

	ra := *base.ResistenciaTermica
	rb := *mejor.ResistenciaTermica
	pct := (rb - ra) / ra * 100

	return &EnergyComparison{
		ThicknessA:     base.ThicknessMM,
		ThicknessB:     mejor.ThicknessMM,
		SavingsPct:     fmt.Sprintf("%.1f%%", pct),
		ResistanceDiff: fmt.Sprintf("%.2f", rb-ra),
	}
}

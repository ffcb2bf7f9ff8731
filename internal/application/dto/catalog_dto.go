package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
)

// ProductResponse ficha de producto del catálogo.
type ProductResponse struct {
	ID                 string          `json:"id"`
	SKU                string          `json:"sku"`
	Name               string          `json:"name"`
	Family             string          `json:"family"`
	SubFamily          string          `json:"sub_family"`
	Type               string          `json:"type"`
	ThicknessMM        int             `json:"thickness_mm"`
	AnchoUtil          float64         `json:"ancho_util"`
	AutoportanciaMax   float64         `json:"autoportancia_max"`
	LargoMin           float64         `json:"largo_min"`
	LargoMax           float64         `json:"largo_max"`
	PriceOnlineM2      decimal.Decimal `json:"price_online_m2"`
	PriceFactoryM2     decimal.Decimal `json:"price_factory_m2"`
	Supplier           string          `json:"supplier"`
	Ignifugo           string          `json:"ignifugo"`
	ResistenciaTermica *float64        `json:"resistencia_termica,omitempty"`
	CoeficienteTermico *float64        `json:"coeficiente_termico,omitempty"`
	SistemaFijacion    string          `json:"sistema_fijacion,omitempty"`
	Description        string          `json:"description,omitempty"`
}

// AccessoryResponse ficha de accesorio del catálogo.
type AccessoryResponse struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
	Supplier string          `json:"supplier"`
	Type     string          `json:"type"`
}

// ToProductResponse mapea la entidad a su ficha pública.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:                 p.ID,
		SKU:                p.SKU,
		Name:               p.Name,
		Family:             p.Family,
		SubFamily:          p.SubFamily,
		Type:               string(p.Type),
		ThicknessMM:        p.ThicknessMM,
		AnchoUtil:          p.AnchoUtil,
		AutoportanciaMax:   p.AutoportanciaMax,
		LargoMin:           p.LargoMin,
		LargoMax:           p.LargoMax,
		PriceOnlineM2:      p.PriceOnlineM2,
		PriceFactoryM2:     p.PriceFactoryM2,
		Supplier:           p.Supplier,
		Ignifugo:           p.Ignifugo,
		ResistenciaTermica: p.ResistenciaTermica,
		CoeficienteTermico: p.CoeficienteTermico,
		SistemaFijacion:    string(p.SistemaFijacion),
		Description:        p.Description,
	}
}

// ToAccessoryResponse mapea el accesorio a su ficha pública.
func ToAccessoryResponse(a *entity.Accessory) AccessoryResponse {
	return AccessoryResponse{
		SKU:      a.SKU,
		Name:     a.Name,
		Unit:     a.Unit,
		Price:    a.Price,
		Supplier: a.Supplier,
		Type:     a.Type,
	}
}

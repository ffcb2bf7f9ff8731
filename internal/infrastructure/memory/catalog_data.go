package memory

import (
	"github.com/shopspring/decimal"

	"github.com/bmcuruguay/panelin-api/internal/domain/entity"
)

// Catálogo unificado BMC Uruguay v6.0. El orden de declaración de los
// productos es significativo: el comparador energético toma el primer hermano
// más grueso en este orden.

func ptr(v float64) *float64 { return &v }

func precio(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var institucional = entity.CompanyInfo{
	Name:         "BMC Uruguay",
	Description:  "Asesoramiento integral y comercialización de paneles térmicos. NO fabricación.",
	Contact:      "Montevideo, Uruguay. Tel: 092 663 245. Email: info@bmcuruguay.com.uy",
	Website:      "www.bmcuruguay.com.uy",
	IVARate:      0.22,
	Currency:     "USD",
	BankTransfer: "Metalog SAS – RUT: 120403630012 | BROU Caja Ahorro USD: 110520638-00002",
}

var productos = []*entity.Product{
	// ISODEC EPS (cubierta pesada)
	{
		ID: "ISODEC_EPS_100", SKU: "ISODEC-EPS-100", Name: "Isodec EPS 100mm",
		Family: "ISODEC", SubFamily: "EPS", Type: entity.TipoCubiertaPesada, ThicknessMM: 100,
		PriceOnlineM2: precio("46.07"), PriceFactoryM2: precio("39.15"),
		AnchoUtil: 1.12, AutoportanciaMax: 5.5, LargoMin: 2.3, LargoMax: 14.0,
		Supplier: "BROMYROS", Ignifugo: "Estándar (Autoextinguible)",
		ResistenciaTermica: ptr(2.86), CoeficienteTermico: ptr(0.035),
		SistemaFijacion: entity.FijacionVarillaTuerca,
		Description:     "Recomendado para viviendas en Uruguay. Excelente balance costo/aislamiento.",
	},
	{
		ID: "ISODEC_EPS_150", SKU: "ISODEC-EPS-150", Name: "Isodec EPS 150mm",
		Family: "ISODEC", SubFamily: "EPS", Type: entity.TipoCubiertaPesada, ThicknessMM: 150,
		PriceOnlineM2: precio("51.50"), PriceFactoryM2: precio("43.77"),
		AnchoUtil: 1.12, AutoportanciaMax: 7.5, LargoMin: 2.3, LargoMax: 14.0,
		Supplier: "BROMYROS", Ignifugo: "Estándar (Autoextinguible)",
		ResistenciaTermica: ptr(4.29), CoeficienteTermico: ptr(0.035),
		SistemaFijacion: entity.FijacionVarillaTuerca,
	},
	// ISODEC PIR (alta resistencia al fuego)
	{
		ID: "ISODEC_PIR_50", SKU: "ISODEC-PIR-50", Name: "Isodec PIR 50mm",
		Family: "ISODEC", SubFamily: "PIR", Type: entity.TipoCubiertaPesada, ThicknessMM: 50,
		PriceOnlineM2: precio("51.02"), PriceFactoryM2: precio("43.37"),
		AnchoUtil: 1.12, AutoportanciaMax: 3.5, LargoMin: 3.5, LargoMax: 14.0,
		Supplier: "BROMYROS", Ignifugo: "Excelente (Alta Resistencia)",
		ResistenciaTermica: ptr(2.27), CoeficienteTermico: ptr(0.022),
		SistemaFijacion: entity.FijacionVarillaTuerca,
	},
	// ISOROOF (cubierta liviana)
	{
		ID: "ISOROOF_30", SKU: "ISOROOF-30", Name: "Isoroof 30mm",
		Family: "ISOROOF", SubFamily: "3G", Type: entity.TipoCubiertaLiviana, ThicknessMM: 30,
		PriceOnlineM2: precio("48.74"), PriceFactoryM2: precio("41.40"),
		AnchoUtil: 1.00, AutoportanciaMax: 2.8, LargoMin: 3.5, LargoMax: 8.5,
		Supplier: "BROMYROS", Ignifugo: "Estándar (EPS)",
		ResistenciaTermica: ptr(0.86), CoeficienteTermico: ptr(0.035),
		SistemaFijacion: entity.FijacionCaballeteTornillo,
	},
	{
		ID: "ISOROOF_50", SKU: "ISOROOF-50", Name: "Isoroof 50mm",
		Family: "ISOROOF", SubFamily: "3G", Type: entity.TipoCubiertaLiviana, ThicknessMM: 50,
		PriceOnlineM2: precio("53.00"), PriceFactoryM2: precio("45.05"),
		AnchoUtil: 1.00, AutoportanciaMax: 3.3, LargoMin: 3.5, LargoMax: 8.5,
		Supplier: "BROMYROS", Ignifugo: "Estándar (EPS)",
		ResistenciaTermica: ptr(1.43), CoeficienteTermico: ptr(0.035),
		SistemaFijacion: entity.FijacionCaballeteTornillo,
	},
	// ISOPANEL (pared)
	{
		ID: "ISOPANEL_EPS_100", SKU: "ISOPANEL-EPS-100", Name: "Isopanel Pared 100mm",
		Family: "ISOPANEL", SubFamily: "EPS", Type: entity.TipoPared, ThicknessMM: 100,
		PriceOnlineM2: precio("46.00"), PriceFactoryM2: precio("39.10"),
		AnchoUtil: 1.14, AutoportanciaMax: 5.5, LargoMin: 2.3, LargoMax: 12.0,
		Supplier: "BROMYROS", Ignifugo: "Estándar (EPS)",
		SistemaFijacion: entity.FijacionVarillaTuerca,
	},
	// ISOFRIG (cámara frigorífica)
	{
		ID: "ISOFRIG_PIR_80", SKU: "ISOFRIG-PIR-80", Name: "Isofrig PIR 80mm",
		Family: "ISOFRIG", SubFamily: "PIR", Type: entity.TipoParedFrigorifica, ThicknessMM: 80,
		PriceOnlineM2: precio("68.00"), PriceFactoryM2: precio("57.80"),
		AnchoUtil: 1.10, AutoportanciaMax: 4.5, LargoMin: 2.3, LargoMax: 14.0,
		Supplier: "BROMYROS", Ignifugo: "Excelente (PIR)",
		ResistenciaTermica: ptr(3.64), CoeficienteTermico: ptr(0.022),
		SistemaFijacion: entity.FijacionVarillaTuerca,
		Description:     "Especial para cámaras frigoríficas y logística de frío.",
	},
}

var accesorios = []*entity.Accessory{
	{SKU: "VAR38", Name: `Varilla Roscada 3/8"`, Unit: "unid", Price: precio("3.81"), Supplier: "BMC", Type: "fijacion"},
	{SKU: "TUE38", Name: `Tuerca 3/8"`, Unit: "unid", Price: precio("0.15"), Supplier: "BMC", Type: "fijacion"},
	{SKU: "TAC38", Name: `Taco Expansivo 3/8"`, Unit: "unid", Price: precio("1.17"), Supplier: "BMC", Type: "fijacion"},
	{SKU: "ARA_CARR", Name: `Arandela Carrocero 3/8"`, Unit: "unid", Price: precio("2.05"), Supplier: "BMC", Type: "fijacion"},
	{SKU: "TORTUGA", Name: "Tortuga PVC Blanca", Unit: "unid", Price: precio("1.55"), Supplier: "BMC", Type: "fijacion"},
	{SKU: "SIL_POMO", Name: "Silicona Pomo", Unit: "unid", Price: precio("11.58"), Supplier: "BMC", Type: "sellador"},
	{SKU: "CABALLE", Name: "Caballete Isoroof", Unit: "unid", Price: precio("9.20"), Supplier: "BMC", Type: "fijacion"},
}

// preciosRespaldo precios de lista documentados que cubren un sku ausente del
// catálogo sin abortar la cotización (lookup degradado).
var preciosRespaldo = map[string]decimal.Decimal{
	"VAR38":    precio("3.81"),
	"TUE38":    precio("0.15"),
	"TAC38":    precio("1.17"),
	"ARA_CARR": precio("2.05"),
	"TORTUGA":  precio("1.55"),
	"SIL_POMO": precio("11.58"),
	"CABALLE":  precio("9.20"),
}

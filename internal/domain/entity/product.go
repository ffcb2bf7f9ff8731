package entity

import "github.com/shopspring/decimal"

// ProductType clasifica el uso constructivo del panel dentro del catálogo.
type ProductType string

const (
	TipoCubiertaPesada    ProductType = "cubierta_pesada"
	TipoCubiertaLiviana   ProductType = "cubierta_liviana"
	TipoPared             ProductType = "pared"
	TipoParedFrigorifica  ProductType = "pared_frigorifica"
	TipoImpermeabilizante ProductType = "impermeabilizante"
	TipoAccesorio         ProductType = "accesorio"
)

// FixationSystem familia de herrajes con la que se instala el panel; determina
// qué accesorios entran al despiece.
type FixationSystem string

const (
	FijacionVarillaTuerca     FixationSystem = "varilla_tuerca"
	FijacionCaballeteTornillo FixationSystem = "caballete_tornillo"
	// FijacionIndefinida: el producto no declara sistema; el despiece solo lleva sellador.
	FijacionIndefinida FixationSystem = ""
)

// StructureType material de la estructura de apoyo declarado por el cliente.
type StructureType string

const (
	EstructuraMetal    StructureType = "metal"
	EstructuraHormigon StructureType = "hormigon"
	EstructuraMadera   StructureType = "madera"
)

// Product es un registro inmutable del catálogo de paneles. Se carga una vez al
// inicio del proceso y nunca se muta; los precios van en decimal para evitar
// acumulación de error binario en los totales.
type Product struct {
	ID        string
	SKU       string
	Name      string
	Family    string
	SubFamily string
	Type      ProductType

	ThicknessMM int
	// AnchoUtil ancho útil por panel en metros (> 0).
	AnchoUtil float64
	// AutoportanciaMax luz máxima autoportante admitida en metros (> 0).
	AutoportanciaMax float64
	LargoMin         float64
	LargoMax         float64

	PriceOnlineM2  decimal.Decimal
	PriceFactoryM2 decimal.Decimal

	Supplier string
	Ignifugo string
	// ResistenciaTermica R-value; nil cuando el proveedor no lo publica.
	ResistenciaTermica *float64
	CoeficienteTermico *float64

	SistemaFijacion FixationSystem
	Description     string
}

package entity

// CompanyInfo datos institucionales que acompañan cotizaciones y respuestas
// del asistente. BMC comercializa y asesora, no fabrica.
type CompanyInfo struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Contact      string  `json:"contact"`
	Website      string  `json:"website"`
	IVARate      float64 `json:"iva_rate"`
	Currency     string  `json:"currency"`
	BankTransfer string  `json:"bank_transfer"`
}

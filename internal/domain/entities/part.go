package entities

// Part (peça) is stock referenced by work orders through part lines.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Valor is the unit price, never negative.
type Part struct {
	ID     string  `json:"id"`
	Nome   string  `json:"nome"`
	Marca  string  `json:"marca"`
	Modelo string  `json:"modelo"`
	Valor  float64 `json:"valor"`
}

type PartPatch struct {
	Nome   *string
	Marca  *string
	Modelo *string
	Valor  *float64
}

func (p PartPatch) Empty() bool {
	return p.Nome == nil && p.Marca == nil && p.Modelo == nil && p.Valor == nil
}

package entities

// Service (serviço) is billable labor referenced directly by work orders.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Ativo is forced true at creation; it can only be flipped through update.
type Service struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Valor     float64 `json:"valor"`
	Ativo     bool    `json:"ativo"`
	Categoria string  `json:"categoria"`
}

type ServicePatch struct {
	Nome      *string
	Valor     *float64
	Ativo     *bool
	Categoria *string
}

func (p ServicePatch) Empty() bool {
	return p.Nome == nil && p.Valor == nil && p.Ativo == nil && p.Categoria == nil
}

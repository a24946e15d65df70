package entities

// Mechanic (mecânico) executes work orders; email is optional.
//
// Storage model (DynamoDB):
//   - PK: id
type Mechanic struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Sobrenome string  `json:"sobrenome"`
	Telefone  string  `json:"telefone"`
	Email     *string `json:"email,omitempty"`
}

type MechanicPatch struct {
	Nome      *string
	Sobrenome *string
	Telefone  *string
	Email     *string
}

func (p MechanicPatch) Empty() bool {
	return p.Nome == nil && p.Sobrenome == nil && p.Telefone == nil && p.Email == nil
}

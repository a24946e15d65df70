package entities

// Endereco is the structured customer address.
type Endereco struct {
	Cidade     string `json:"cidade"`
	Bairro     string `json:"bairro"`
	Logradouro string `json:"logradouro"`
}

// Customer (cliente) is a workshop customer referenced by work orders.
//
// Storage model (DynamoDB):
//   - PK: id
type Customer struct {
	ID        string   `json:"id"`
	Nome      string   `json:"nome"`
	Sobrenome string   `json:"sobrenome"`
	Endereco  Endereco `json:"endereco"`
	Telefone  string   `json:"telefone"`
}

// CustomerPatch carries a partial update; nil fields are left untouched.
type CustomerPatch struct {
	Nome      *string
	Sobrenome *string
	Endereco  *Endereco
	Telefone  *string
}

func (p CustomerPatch) Empty() bool {
	return p.Nome == nil && p.Sobrenome == nil && p.Endereco == nil && p.Telefone == nil
}

package response

import "oficina_mecanica/internal/domain/entities"

type EnderecoResponse struct {
	Cidade     string `json:"cidade"`
	Bairro     string `json:"bairro"`
	Logradouro string `json:"logradouro"`
}

type CustomerResponse struct {
	ID        string           `json:"id"`
	Nome      string           `json:"nome"`
	Sobrenome string           `json:"sobrenome"`
	Endereco  EnderecoResponse `json:"endereco"`
	Telefone  string           `json:"telefone"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Sobrenome: c.Sobrenome,
		Endereco: EnderecoResponse{
			Cidade:     c.Endereco.Cidade,
			Bairro:     c.Endereco.Bairro,
			Logradouro: c.Endereco.Logradouro,
		},
		Telefone: c.Telefone,
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCustomer(c))
	}
	return out
}

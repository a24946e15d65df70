package request

import "oficina_mecanica/internal/domain/entities"

type EnderecoRequest struct {
	Cidade     string `json:"cidade" binding:"required"`
	Bairro     string `json:"bairro" binding:"required"`
	Logradouro string `json:"logradouro" binding:"required"`
}

func (r EnderecoRequest) ToEntity() entities.Endereco {
	return entities.Endereco{
		Cidade:     r.Cidade,
		Bairro:     r.Bairro,
		Logradouro: r.Logradouro,
	}
}

type CustomerCreateRequest struct {
	Nome      string          `json:"nome" binding:"required"`
	Sobrenome string          `json:"sobrenome" binding:"required"`
	Endereco  EnderecoRequest `json:"endereco" binding:"required"`
	Telefone  string          `json:"telefone" binding:"required"`
}

func (r CustomerCreateRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Nome:      r.Nome,
		Sobrenome: r.Sobrenome,
		Endereco:  r.Endereco.ToEntity(),
		Telefone:  r.Telefone,
	}
}

// CustomerUpdateRequest is a partial update; absent fields stay untouched.
type CustomerUpdateRequest struct {
	Nome      *string          `json:"nome"`
	Sobrenome *string          `json:"sobrenome"`
	Endereco  *EnderecoRequest `json:"endereco"`
	Telefone  *string          `json:"telefone"`
}

func (r CustomerUpdateRequest) ToPatch() entities.CustomerPatch {
	p := entities.CustomerPatch{
		Nome:      r.Nome,
		Sobrenome: r.Sobrenome,
		Telefone:  r.Telefone,
	}
	if r.Endereco != nil {
		e := r.Endereco.ToEntity()
		p.Endereco = &e
	}
	return p
}

package request

import "oficina_mecanica/internal/domain/entities"

// ServiceCreateRequest omits ativo on purpose: services always open active.
type ServiceCreateRequest struct {
	Nome      string   `json:"nome" binding:"required"`
	Valor     *float64 `json:"valor" binding:"required"`
	Categoria string   `json:"categoria" binding:"required"`
}

func (r ServiceCreateRequest) ToEntity() entities.Service {
	s := entities.Service{
		Nome:      r.Nome,
		Categoria: r.Categoria,
	}
	if r.Valor != nil {
		s.Valor = *r.Valor
	}
	return s
}

type ServiceUpdateRequest struct {
	Nome      *string  `json:"nome"`
	Valor     *float64 `json:"valor"`
	Ativo     *bool    `json:"ativo"`
	Categoria *string  `json:"categoria"`
}

func (r ServiceUpdateRequest) ToPatch() entities.ServicePatch {
	return entities.ServicePatch{
		Nome:      r.Nome,
		Valor:     r.Valor,
		Ativo:     r.Ativo,
		Categoria: r.Categoria,
	}
}

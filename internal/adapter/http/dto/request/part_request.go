package request

import "oficina_mecanica/internal/domain/entities"

type PartCreateRequest struct {
	Nome   string   `json:"nome" binding:"required"`
	Marca  string   `json:"marca" binding:"required"`
	Modelo string   `json:"modelo" binding:"required"`
	Valor  *float64 `json:"valor" binding:"required"`
}

func (r PartCreateRequest) ToEntity() entities.Part {
	p := entities.Part{
		Nome:   r.Nome,
		Marca:  r.Marca,
		Modelo: r.Modelo,
	}
	if r.Valor != nil {
		p.Valor = *r.Valor
	}
	return p
}

type PartUpdateRequest struct {
	Nome   *string  `json:"nome"`
	Marca  *string  `json:"marca"`
	Modelo *string  `json:"modelo"`
	Valor  *float64 `json:"valor"`
}

func (r PartUpdateRequest) ToPatch() entities.PartPatch {
	return entities.PartPatch{
		Nome:   r.Nome,
		Marca:  r.Marca,
		Modelo: r.Modelo,
		Valor:  r.Valor,
	}
}

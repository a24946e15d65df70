package request

import "oficina_mecanica/internal/domain/entities"

type MechanicCreateRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	Sobrenome string  `json:"sobrenome" binding:"required"`
	Telefone  string  `json:"telefone" binding:"required"`
	Email     *string `json:"email"`
}

func (r MechanicCreateRequest) ToEntity() entities.Mechanic {
	return entities.Mechanic{
		Nome:      r.Nome,
		Sobrenome: r.Sobrenome,
		Telefone:  r.Telefone,
		Email:     r.Email,
	}
}

type MechanicUpdateRequest struct {
	Nome      *string `json:"nome"`
	Sobrenome *string `json:"sobrenome"`
	Telefone  *string `json:"telefone"`
	Email     *string `json:"email"`
}

func (r MechanicUpdateRequest) ToPatch() entities.MechanicPatch {
	return entities.MechanicPatch{
		Nome:      r.Nome,
		Sobrenome: r.Sobrenome,
		Telefone:  r.Telefone,
		Email:     r.Email,
	}
}

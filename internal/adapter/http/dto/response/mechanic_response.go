package response

import "oficina_mecanica/internal/domain/entities"

type MechanicResponse struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Sobrenome string  `json:"sobrenome"`
	Telefone  string  `json:"telefone"`
	Email     *string `json:"email,omitempty"`
}

func FromMechanic(m entities.Mechanic) MechanicResponse {
	return MechanicResponse{
		ID:        m.ID,
		Nome:      m.Nome,
		Sobrenome: m.Sobrenome,
		Telefone:  m.Telefone,
		Email:     m.Email,
	}
}

func FromMechanics(ms []entities.Mechanic) []MechanicResponse {
	out := make([]MechanicResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMechanic(m))
	}
	return out
}

package response

import "oficina_mecanica/internal/domain/entities"

type ServiceResponse struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Valor     float64 `json:"valor"`
	Ativo     bool    `json:"ativo"`
	Categoria string  `json:"categoria"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:        s.ID,
		Nome:      s.Nome,
		Valor:     s.Valor,
		Ativo:     s.Ativo,
		Categoria: s.Categoria,
	}
}

func FromServices(ss []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromService(s))
	}
	return out
}

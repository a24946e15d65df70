package response

import "oficina_mecanica/internal/domain/entities"

type PartResponse struct {
	ID     string  `json:"id"`
	Nome   string  `json:"nome"`
	Marca  string  `json:"marca"`
	Modelo string  `json:"modelo"`
	Valor  float64 `json:"valor"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:     p.ID,
		Nome:   p.Nome,
		Marca:  p.Marca,
		Modelo: p.Modelo,
		Valor:  p.Valor,
	}
}

func FromParts(ps []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPart(p))
	}
	return out
}

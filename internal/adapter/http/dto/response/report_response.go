package response

import "oficina_mecanica/internal/domain/entities"

type MechanicProductivityResponse struct {
	Nome        string `json:"nome"`
	Sobrenome   string `json:"sobrenome"`
	TotalOrdens int    `json:"total_ordens"`
}

// MechanicReportResponse carries the productivity rows plus the download URL
// of the rendered PDF.
type MechanicReportResponse struct {
	Relatorio   []MechanicProductivityResponse `json:"relatorio"`
	DownloadURL string                         `json:"download_url"`
}

func FromMechanicReport(rows []entities.MechanicProductivityRow, downloadURL string) MechanicReportResponse {
	out := make([]MechanicProductivityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, MechanicProductivityResponse{
			Nome:        r.Nome,
			Sobrenome:   r.Sobrenome,
			TotalOrdens: r.TotalOrdens,
		})
	}
	return MechanicReportResponse{Relatorio: out, DownloadURL: downloadURL}
}

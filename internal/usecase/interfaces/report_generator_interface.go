package interfaces

import "oficina_mecanica/internal/domain/entities"

//go:generate mockgen -source=report_generator_interface.go -destination=mocks/report_generator_mock.go -package=mock_interfaces

// IReportGenerator renders productivity report rows into a downloadable
// artifact and returns the generated filename. The use case only supplies row
// data and the formatted period; rendering is opaque.
type IReportGenerator interface {
	MechanicReport(rows []entities.MechanicProductivityRow, dataInicio, dataFim string) (filename string, err error)
}

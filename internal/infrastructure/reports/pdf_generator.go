package reports

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"oficina_mecanica/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// PDFGenerator renders the mechanic productivity report as a PDF file under
// REPORTS_DIR (default "reports") and returns the generated filename.
type PDFGenerator struct{}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

func (g *PDFGenerator) MechanicReport(rows []entities.MechanicProductivityRow, dataInicio, dataFim string) (string, error) {
	dir := getenvDefault("REPORTS_DIR", "reports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[relatorio][pdf] failed creating reports dir err=%v", err)
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de Produtividade dos Mecânicos"), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Período: %s a %s", dataInicio, dataFim)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 8, tr("Nome"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 8, tr("Sobrenome"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, tr("Ordens de Serviço"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetFillColor(245, 245, 245)
	for i, r := range rows {
		fill := i%2 == 1
		pdf.CellFormat(70, 8, tr(r.Nome), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(70, 8, tr(r.Sobrenome), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(50, 8, fmt.Sprintf("%d", r.TotalOrdens), "1", 1, "C", fill, 0, "")
	}

	filename := fmt.Sprintf("relatorio-%s.pdf", uuid.New().String())
	path := filepath.Join(dir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		log.Printf("[relatorio][pdf] failed writing report file=%s err=%v", path, err)
		return "", err
	}

	log.Printf("[relatorio][pdf] report generated file=%s rows=%d", path, len(rows))
	return filename, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

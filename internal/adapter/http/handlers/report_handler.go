package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
)

const reportDownloadPath = "/mecanicos/reports/download/"

// ReportHandler renders the mechanic productivity report and serves the
// generated PDF artifacts.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// MechanicReport builds the productivity rows for the DD/MM/YYYY period and,
// when there is data, the downloadable PDF. No rows in the period is a valid
// outcome, answered with an explicit marker instead of an empty list.
func (h *ReportHandler) MechanicReport(c *gin.Context) {
	var query request.ReportPeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Informe data_inicio e data_fim no formato DD/MM/YYYY", http.StatusBadRequest))
		return
	}
	start, end, err := query.Parse()
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Período inválido, use DD/MM/YYYY", http.StatusBadRequest))
		return
	}

	rows, filename, err := h.usecase.MechanicReport(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, mapReportError(err))
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Sem dados"})
		return
	}
	log.Printf("[report][handler] mechanic report generated rows=%d file=%s", len(rows), filename)

	c.JSON(http.StatusOK, response.FromMechanicReport(rows, reportDownloadPath+filename))
}

// DownloadReport serves a previously generated PDF by filename.
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Nome de arquivo inválido", http.StatusBadRequest))
		return
	}

	path := filepath.Join(reportsDir(), filename)
	if _, err := os.Stat(path); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Relatório não encontrado", http.StatusNotFound))
		return
	}

	c.FileAttachment(path, filename)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Período inválido: data final anterior à inicial", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportGeneration):
		return pkg.NewDomainError("REPORT_GENERATION_FAILED", "Falha ao gerar o relatório", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}

func reportsDir() string {
	if v := os.Getenv("REPORTS_DIR"); v != "" {
		return v
	}
	return "reports"
}

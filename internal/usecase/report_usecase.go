package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"
)

var (
	ErrOrderTotal       = errors.New("failed to compute work order total")
	ErrReportGeneration = errors.New("failed to generate report file")
	ErrInvalidPeriod    = errors.New("invalid report period")
)

const reportDateLayout = "02/01/2006"

// IReportUseCase is the aggregation engine: order totalization at conclusion
// time and the mechanic productivity report.
type IReportUseCase interface {
	OrderTotal(ctx context.Context, o entities.WorkOrder) (float64, error)
	MechanicReport(ctx context.Context, start, end time.Time) ([]entities.MechanicProductivityRow, string, error)
}

type ReportUseCase struct {
	orders    interfaces.IWorkOrderRepository
	mechanics interfaces.IMechanicRepository
	services  interfaces.IServiceRepository
	parts     interfaces.IPartRepository
	generator interfaces.IReportGenerator
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	orders interfaces.IWorkOrderRepository,
	mechanics interfaces.IMechanicRepository,
	services interfaces.IServiceRepository,
	parts interfaces.IPartRepository,
	generator interfaces.IReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{orders: orders, mechanics: mechanics, services: services, parts: parts, generator: generator}
}

// OrderTotal sums service prices plus part price times quantity over the
// order's live references, rounded to two decimal places. The referential
// guard keeps referenced services/parts alive, so an unresolved id here is an
// aggregation failure, not a caller error.
func (u *ReportUseCase) OrderTotal(ctx context.Context, o entities.WorkOrder) (float64, error) {
	total := 0.0

	for _, servicoID := range o.ServicoIDs {
		s, err := u.services.GetByID(ctx, servicoID)
		if err != nil {
			return 0, err
		}
		if s.ID == "" {
			return 0, fmt.Errorf("%w: servico %s missing", ErrOrderTotal, servicoID)
		}
		total += s.Valor
	}

	for _, line := range o.Pecas {
		p, err := u.parts.GetByID(ctx, line.PecaID)
		if err != nil {
			return 0, err
		}
		if p.ID == "" {
			return 0, fmt.Errorf("%w: peca %s missing", ErrOrderTotal, line.PecaID)
		}
		total += p.Valor * float64(line.Quantidade)
	}

	return math.Round(total*100) / 100, nil
}

// MechanicProductivity runs the report aggregation: filter orders by opening
// date, group by mechanic, sort groups by count descending, then join each
// group with the mechanic's name. The stage order mirrors the store pipeline
// it replaces. Tie-break on equal counts is mechanic id ascending, kept stable
// for reproducible output. Mechanics whose record no longer resolves are
// dropped from the result, matching unwind-after-lookup semantics.
func (u *ReportUseCase) MechanicProductivity(ctx context.Context, start, end time.Time) ([]entities.MechanicProductivityRow, error) {
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	orders, err := u.orders.ListOpenedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.MecanicoID]++
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	rows := make([]entities.MechanicProductivityRow, 0, len(ids))
	for _, id := range ids {
		m, err := u.mechanics.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if m.ID == "" {
			continue
		}
		rows = append(rows, entities.MechanicProductivityRow{
			Nome:        m.Nome,
			Sobrenome:   m.Sobrenome,
			TotalOrdens: counts[id],
		})
	}

	return rows, nil
}

// MechanicReport aggregates the rows and, when there is data, renders them
// into a downloadable file. Empty rows with an empty filename signal the
// "Sem dados" case to the caller.
func (u *ReportUseCase) MechanicReport(ctx context.Context, start, end time.Time) ([]entities.MechanicProductivityRow, string, error) {
	rows, err := u.MechanicProductivity(ctx, start, end)
	if err != nil {
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", nil
	}

	filename, err := u.generator.MechanicReport(rows, start.Format(reportDateLayout), end.Format(reportDateLayout))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrReportGeneration, err)
	}
	return rows, filename, nil
}

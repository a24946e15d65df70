package request

import (
	"errors"
	"time"
)

var ErrInvalidReportPeriod = errors.New("invalid report period")

const reportDateLayout = "02/01/2006"

// ReportPeriodQuery is the DD/MM/YYYY period of the mechanic productivity
// report.
type ReportPeriodQuery struct {
	DataInicio string `form:"data_inicio" binding:"required"`
	DataFim    string `form:"data_fim" binding:"required"`
}

func (q ReportPeriodQuery) Parse() (time.Time, time.Time, error) {
	start, err := time.Parse(reportDateLayout, q.DataInicio)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidReportPeriod
	}
	end, err := time.Parse(reportDateLayout, q.DataFim)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidReportPeriod
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}

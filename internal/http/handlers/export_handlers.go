package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/report"
	"github.com/rogerio-castellano/surgery-tracker/internal/trends"
)

// reportRows aggregates records for the requested grouping.
func reportRows(records []models.Surgery, group string) ([]report.Row, [2]string, error) {
	if group == "month" {
		monthly := trends.Aggregate(records)
		rows := make([]report.Row, len(monthly))
		for i, m := range monthly {
			rows[i] = report.Row{Label: m.Month.String(), Value: float64(m.Total)}
		}
		return rows, [2]string{"month", "total"}, nil
	}

	names, err := groupNames(trends.Grouping(group))
	if err != nil {
		return nil, [2]string{}, err
	}

	totals := trends.AggregateBy(records, trends.Grouping(group))
	rows := make([]report.Row, len(totals))
	for i, t := range totals {
		label, ok := names[t.ID]
		if !ok {
			label = "#" + strconv.Itoa(t.ID)
		}
		rows[i] = report.Row{Label: label, Value: float64(t.Total)}
	}
	return rows, [2]string{group, "total"}, nil
}

func groupNames(g trends.Grouping) (map[int]string, error) {
	names := map[int]string{}
	switch g {
	case trends.ByStaff:
		staff, err := staffRepo.GetAll()
		if err != nil {
			return nil, err
		}
		for _, s := range staff {
			names[s.ID] = s.Name
		}
	case trends.ByHospital:
		hospitals, err := facilityRepo.GetHospitals()
		if err != nil {
			return nil, err
		}
		for _, h := range hospitals {
			names[h.ID] = h.Name
		}
	case trends.ByRegion:
		regions, err := facilityRepo.GetRegions()
		if err != nil {
			return nil, err
		}
		for _, r := range regions {
			names[r.ID] = r.Name
		}
	}
	return names, nil
}

// ExportReportHandler godoc
// @Summary Export aggregated surgery totals
// @Tags reports
// @Produce text/csv, application/json, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string true "Export format (csv, json or xlsx)"
// @Param group query string false "Grouping (month, staff, hospital or region); month by default"
// @Param staff_id query int false "Staff ID"
// @Param hospital_id query int false "Hospital ID"
// @Param region_id query int false "Region ID"
// @Param type query string false "Surgery type"
// @Param since query string false "From (YYYY-MM, YYYY-MM-DD or RFC3339)"
// @Param until query string false "Until (YYYY-MM, YYYY-MM-DD or RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /reports/export [get]
func ExportReportHandler(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	group := r.URL.Query().Get("group")
	if group == "" {
		group = "month"
	}
	if group != "month" && !trends.Grouping(group).Valid() {
		http.Error(w, "group must be 'month', 'staff', 'hospital' or 'region'", http.StatusBadRequest)
		return
	}

	filter, msg := parseSurgeryFilter(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	records, _, err := surgeryRepo.Find(filter.Unpaged())
	if err != nil {
		http.Error(w, "could not retrieve surgeries", http.StatusInternalServerError)
		return
	}

	rows, header, err := reportRows(records, group)
	if err != nil {
		http.Error(w, "could not build report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename("surgeries_by_"+group)+`"`)
	if err := report.Write(w, format, header, rows); err != nil {
		slog.Error("failed to write report", "format", format, "error", err)
	}
}

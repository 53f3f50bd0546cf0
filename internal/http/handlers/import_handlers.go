package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/surgery-tracker/internal/metrics"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
)

// csvRecord maps a header-indexed CSV line; missing columns read as "".
type csvRecord struct {
	index  map[string]int
	fields []string
}

func (c csvRecord) get(name string) string {
	i, ok := c.index[name]
	if !ok || i >= len(c.fields) {
		return ""
	}
	return strings.TrimSpace(c.fields[i])
}

func parseCSV(file io.Reader) ([]csvRecord, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["surgery_type"]; !ok {
		return nil, fmt.Errorf("CSV header must include surgery_type")
	}

	var rows []csvRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}
		rows = append(rows, csvRecord{index: index, fields: record})
	}
	return rows, nil
}

// toSurgeryRequest converts a row. Unparseable numbers become zero values and
// are rejected by validateSurgery.
func toSurgeryRequest(rec csvRecord) SurgeryRequest {
	req := SurgeryRequest{
		StaffName:   rec.get("staff_name"),
		SurgeryType: strings.ToLower(rec.get("surgery_type")),
		PerformedAt: rec.get("performed_at"),
		PatientRef:  rec.get("patient_ref"),
		Outcome:     rec.get("outcome"),
	}
	if req.StaffName == "" {
		req.StaffName = rec.get("staff")
	}
	if v, err := strconv.Atoi(rec.get("staff_id")); err == nil {
		req.StaffID = &v
	}
	req.HospitalID, _ = strconv.Atoi(rec.get("hospital_id"))
	req.Count, _ = strconv.Atoi(rec.get("count"))
	if v, err := strconv.Atoi(rec.get("duration_minutes")); err == nil {
		req.DurationMinutes = &v
	}
	return req
}

// ImportSurgeriesHandler godoc
// @Summary Import surgery logs via CSV
// @Description Columns: staff_id or staff_name, hospital_id, surgery_type, performed_at, count, and optional patient_ref, duration_minutes, outcome
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportSurgeriesResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /surgeries/import [post]
// @Security BearerAuth
func ImportSurgeriesHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported := 0
	errorsList := []ValidationError{}
	reject := func(row int, field, desc string) {
		metrics.RecordImportRowFailed()
		errorsList = append(errorsList, ValidationError{Field: field, Description: fmt.Sprintf("row %d: %s", row, desc)})
	}

	for i, rec := range records {
		rowNum := i + 2 // header is row 1
		req := toSurgeryRequest(rec)

		if errs := validateSurgery(req); len(errs) > 0 {
			for _, e := range errs {
				reject(rowNum, e.Field, e.Description)
			}
			continue
		}

		surgery, err := buildSurgery(req)
		switch {
		case errors.Is(err, repo.ErrStaffNotFound):
			reject(rowNum, "staff", staffNotFoundMessage)
			continue
		case errors.Is(err, repo.ErrHospitalNotFound):
			reject(rowNum, "hospital_id", "unknown hospital")
			continue
		case err != nil:
			reject(rowNum, "", err.Error())
			continue
		}

		created, err := surgeryRepo.Create(surgery)
		if err != nil {
			slog.Error("import row failed", "row", rowNum, "error", err)
			reject(rowNum, "", "could not store surgery")
			continue
		}
		metrics.RecordSurgeryLogged(created.Count)
		imported++
	}

	if imported > 0 {
		invalidateTrends(r)
	}
	slog.Info("surgery import finished", "imported", imported, "rejected_rows", len(records)-imported)

	respondJSON(w, http.StatusOK, ImportSurgeriesResult{
		ImportedCount: imported,
		Errors:        errorsList,
	})
}

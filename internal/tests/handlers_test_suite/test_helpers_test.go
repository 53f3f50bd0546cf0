package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/config"
	handler "github.com/rogerio-castellano/surgery-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/surgery-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/surgery-tracker/internal/http/router"
	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
	"github.com/rogerio-castellano/surgery-tracker/internal/seed"
)

// Seeded ids: regions North=1 South=2, hospitals General=1 (North) and
// St. Mary=2 (South), staff Dr. Lee=1 and Dr. Park=2.
const (
	northRegionID   = 1
	southRegionID   = 2
	generalID       = 1
	stMaryID        = 2
	drLeeID         = 1
	drParkID        = 2
	staffUserName   = "nurse.joy"
	staffUserSecret = "nurse-secret"
)

var (
	token      string
	staffToken string

	surgeryRepo  *repo.InMemorySurgeryRepository
	targetRepo   *repo.InMemoryTargetRepository
	staffRepo    *repo.InMemoryStaffRepository
	facilityRepo *repo.InMemoryFacilityRepository
	userRepo     *repo.InMemoryUserRepository
)

func init() {
	rl.Configure(100, 100)
	handler.SetTrendWindow(3, 12)
	setupTestRepos("secret")
	r := router.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
	staffToken, err = generateToken(r, staffUserName, staffUserSecret)
	if err != nil {
		panic(fmt.Sprintf("error generating staff token: %v", err))
	}
}

func setupTestRepos(password string) {
	surgeryRepo = repo.NewInMemorySurgeryRepository()
	handler.SetSurgeryRepo(surgeryRepo)

	targetRepo = repo.NewInMemoryTargetRepository()
	handler.SetTargetRepo(targetRepo)

	staffRepo = repo.NewInMemoryStaffRepository()
	handler.SetStaffRepo(staffRepo)

	facilityRepo = repo.NewInMemoryFacilityRepository()
	handler.SetFacilityRepo(facilityRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(surgeryRepo, staffRepo, facilityRepo)
	handler.SetMetricsRepo(metricsRepo)

	err := seed.Apply(config.Seed{
		Regions: []string{"North", "South"},
		Hospitals: []config.SeedHospital{
			{Name: "General", Region: "North"},
			{Name: "St. Mary", Region: "South"},
		},
		Staff: []config.SeedStaff{
			{Name: "Dr. Lee", Role: "surgeon"},
			{Name: "Dr. Park", Role: "surgeon"},
		},
		Admin: config.SeedAdmin{Username: "admin", Password: password},
	}, seed.Repos{Staff: staffRepo, Facilities: facilityRepo, Users: userRepo})
	if err != nil {
		panic(fmt.Sprintf("error seeding repositories: %v", err))
	}

	registerUser(staffUserName, staffUserSecret)
}

// registerUser goes through /register, which always grants the staff role.
func registerUser(username, password string) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.NewRouter().ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("error creating user %s: %d %s", username, w.Code, w.Body.String()))
	}
}

func clearAllSurgeries() {
	surgeryRepo.Clear()
	targetRepo.Clear()
	handler.SetTrendCache(newMapCache())
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doRequest(r http.Handler, method, path string, payload any, tok string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func logSurgery(r http.Handler, s handler.SurgeryRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/surgeries", s, token)
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

// addSurgery stores a record directly, bypassing the handlers.
func addSurgery(staffID, hospitalID int, surgeryType string, year int, month time.Month, count int) models.Surgery {
	h, err := facilityRepo.GetHospitalByID(hospitalID)
	if err != nil {
		panic(fmt.Sprintf("unknown hospital %d", hospitalID))
	}
	s, _ := surgeryRepo.Create(models.Surgery{
		StaffID:     staffID,
		HospitalID:  hospitalID,
		RegionID:    h.RegionID,
		SurgeryType: surgeryType,
		PerformedAt: time.Date(year, month, 10, 9, 0, 0, 0, time.UTC),
		Count:       count,
	})
	return s
}

func intPtr(v int) *int {
	return &v
}

func repoAll() repo.SurgeryFilter {
	return repo.SurgeryFilter{}
}

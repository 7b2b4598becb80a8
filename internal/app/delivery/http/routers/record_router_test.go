package routers

import (
	"context"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/delivery/http/controllers"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPatientUsecase struct{}

func (s *stubPatientUsecase) SavePatient(ctx context.Context, request *requests.SavePatient) (*responses.SavePatient, error) {
	return &responses.SavePatient{PatientID: "patient-1"}, nil
}

func (s *stubPatientUsecase) GetPatientDetails(ctx context.Context, patientID string) (*models.Patient, error) {
	if patientID == "patient-1" {
		return &models.Patient{ID: "patient-1", Name: "Asha"}, nil
	}
	return nil, exceptions.ErrPatientNotFound(nil)
}

type stubReportUsecase struct{}

func (s *stubReportUsecase) SaveDetailedReport(ctx context.Context, request *requests.SaveDetailedReport) (*responses.SaveDetailedReport, error) {
	return &responses.SaveDetailedReport{ReportID: "report-1"}, nil
}

func (s *stubReportUsecase) GetDetailedReport(ctx context.Context, patientID string) (*models.DetailedReport, error) {
	return nil, exceptions.ErrReportNotFound(nil)
}

func (s *stubReportUsecase) GetReports(ctx context.Context, patientID string, limit int) ([]models.ReportSummary, error) {
	return nil, exceptions.ErrReportsNotFound(nil)
}

type stubAppointmentUsecase struct {
	seenLimit int
}

func (s *stubAppointmentUsecase) SaveAppointment(ctx context.Context, request *requests.SaveAppointment) (*responses.SaveAppointment, error) {
	return &responses.SaveAppointment{AppointmentID: "appointment-1"}, nil
}

func (s *stubAppointmentUsecase) GetAppointmentDetails(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return nil, exceptions.ErrAppointmentNotFound(nil)
}

func (s *stubAppointmentUsecase) GetAppointments(ctx context.Context, doctorID string, limit int) ([]models.Appointment, error) {
	s.seenLimit = limit
	return []models.Appointment{{ID: "appointment-1", DoctorID: doctorID}}, nil
}

type stubExtractionUsecase struct{}

func (s *stubExtractionUsecase) ExtractDocument(ctx context.Context, image []byte, fileName, contentType, schemaKind string) (map[string]interface{}, error) {
	return map[string]interface{}{schemaKind: map[string]interface{}{}}, nil
}

type stubQuestionnaireUsecase struct{}

func (s *stubQuestionnaireUsecase) FirstStageQuestions() []models.Question {
	return models.FirstStageQuestionnaire()
}

func (s *stubQuestionnaireUsecase) SubmitFirstStage(ctx context.Context, request *requests.SubmitResponses) ([]models.DerivedQuestion, error) {
	return []models.DerivedQuestion{{Category: "Medical History", Question: "Any fever?"}}, nil
}

func (s *stubQuestionnaireUsecase) SubmitSecondStage(ctx context.Context, request *requests.SubmitResponses) (string, error) {
	return "final report", nil
}

type stubChatUsecase struct{}

func (s *stubChatUsecase) Converse(ctx context.Context, request *requests.Chat) (*responses.Chat, error) {
	return &responses.Chat{Response: "reply", Conversation: request.Conversation}, nil
}

func newTestRouter(appointmentUsecase *stubAppointmentUsecase) http.Handler {
	if appointmentUsecase == nil {
		appointmentUsecase = &stubAppointmentUsecase{}
	}
	log := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Env:                        "development",
			StoreTimeoutInSeconds:      2,
			ModelTimeoutInSeconds:      2,
			RequestBodyLimitInMegabyte: 6,
		},
	}

	m := middlewares.NewMiddlewares(log, internalConfig)
	return SetupRouter(m, &RouterDependencies{
		HealthController:        controllers.NewHealthController(),
		ExtractionController:    controllers.NewExtractionController(log, internalConfig, &stubExtractionUsecase{}),
		QuestionnaireController: controllers.NewQuestionnaireController(log, internalConfig, &stubQuestionnaireUsecase{}),
		PatientController:       controllers.NewPatientController(log, internalConfig, &stubPatientUsecase{}),
		ReportController:        controllers.NewReportController(log, internalConfig, &stubReportUsecase{}),
		AppointmentController:   controllers.NewAppointmentController(log, internalConfig, appointmentUsecase),
		ChatController:          controllers.NewChatController(log, internalConfig, &stubChatUsecase{}),
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status": "ok"}`, recorder.Body.String())
}

func TestSavePatient_Created(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	body := strings.NewReader(`{"name": "Asha", "gender": "F"}`)
	request := httptest.NewRequest(http.MethodPost, "/save_patient", body)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response responses.ResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "patient-1", data["patient_id"])
}

func TestSavePatient_MissingName(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	body := strings.NewReader(`{"gender": "F"}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/save_patient", body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetPatientDetails_NotFound(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/get_patient_details/unknown", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetPatientDetails_RawShape(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/get_patient_details/patient-1", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var patient models.Patient
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &patient))
	assert.Equal(t, "Asha", patient.Name)
}

func TestGetNAppointments_InvalidLimit(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	for _, n := range []string{"0", "-3", "abc"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/get_n_appointments/doctor-1?n="+n, nil))
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "n=%s", n)
	}
}

func TestGetNAppointments_ValidLimit(t *testing.T) {
	appointmentUsecase := &stubAppointmentUsecase{}
	router := newTestRouter(appointmentUsecase)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/get_n_appointments/doctor-1?n=3", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 3, appointmentUsecase.seenLimit)
}

func TestGetQuestionnaire_ReturnsFixedSet(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/questionnaire", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response responses.Questionnaire
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(t, response.Questions, 13)
}

func TestSubmitResponses_MissingBody(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/submit_responses", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRequestIDHeaderEchoed(t *testing.T) {
	router := newTestRouter(&stubAppointmentUsecase{})

	request := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	request.Header.Set("X-Request-ID", "req-123")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, "req-123", recorder.Header().Get("X-Request-ID"))
}

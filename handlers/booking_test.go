package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dbswash/models"
	"dbswash/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSessionService returns canned values so the handler's wiring and error
// mapping can be exercised without Redis.
type stubSessionService struct {
	view    *booking.SessionView
	receipt *models.Receipt
	err     error
}

func (s *stubSessionService) CreateSession(booking.SessionSeed) (*booking.SessionView, error) {
	return s.view, s.err
}
func (s *stubSessionService) GetSession(string) (*booking.SessionView, error) {
	return s.view, s.err
}
func (s *stubSessionService) SetSchedule(string, booking.ScheduleInput) (*booking.SessionView, error) {
	return s.view, s.err
}
func (s *stubSessionService) TogglePackage(string, int) (*booking.SessionView, error) {
	return s.view, s.err
}
func (s *stubSessionService) ToggleExtra(string, int) (*booking.SessionView, error) {
	return s.view, s.err
}
func (s *stubSessionService) SetContact(string, booking.ContactInput) (*booking.SessionView, error) {
	return s.view, s.err
}
func (s *stubSessionService) Advance(string) (*booking.SessionView, error) { return s.view, s.err }
func (s *stubSessionService) Back(string) (*booking.SessionView, error)    { return s.view, s.err }
func (s *stubSessionService) Submit(string) (*models.Receipt, error)       { return s.receipt, s.err }
func (s *stubSessionService) CancelSession(string) error                   { return s.err }

func newTestRouter(svc booking.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	api := r.Group("/api/booking")
	api.POST("/session", h.CreateSession)
	api.GET("/session/:sessionID", h.GetSession)
	api.PUT("/session/:sessionID/schedule", h.SetSchedule)
	api.PUT("/session/:sessionID/package", h.TogglePackage)
	api.POST("/session/:sessionID/next", h.Advance)
	api.POST("/session/:sessionID/submit", h.Submit)
	api.DELETE("/session/:sessionID", h.CancelSession)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleView() *booking.SessionView {
	return &booking.SessionView{
		Draft: &models.BookingDraft{SessionID: "abc", Step: models.StepScheduleAndVehicle},
		Quote: &models.Quote{Currency: "UGX"},
	}
}

func TestCreateSessionEndpoint(t *testing.T) {
	r := newTestRouter(&stubSessionService{view: sampleView()})

	w := doRequest(r, http.MethodPost, "/api/booking/session?package=2&mode=night", "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Draft models.BookingDraft `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "abc", body.Draft.SessionID)
}

func TestGetSessionNotFound(t *testing.T) {
	r := newTestRouter(&stubSessionService{err: booking.ErrSessionNotFound})

	w := doRequest(r, http.MethodGet, "/api/booking/session/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMutationConflicts(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"submitted sessions are read-only", booking.ErrSessionSubmitted},
		{"in-flight submissions block edits", booking.ErrSubmitInFlight},
		{"final step refuses advance", booking.ErrAlreadyOnFinalStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubSessionService{err: tc.err})
			w := doRequest(r, http.MethodPost, "/api/booking/session/abc/next", "")
			assert.Equal(t, http.StatusConflict, w.Code)
		})
	}
}

func TestValidationFailureResponse(t *testing.T) {
	verr := &booking.ValidationError{
		Step: models.StepScheduleAndVehicle,
		Fields: models.FieldErrors{
			"location": {Code: models.ErrCodeMissingField, Message: "Please select a branch location"},
		},
	}
	r := newTestRouter(&stubSessionService{err: verr})

	w := doRequest(r, http.MethodPost, "/api/booking/session/abc/next", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error  string             `json:"error"`
		Step   int                `json:"step"`
		Fields models.FieldErrors `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Equal(t, models.StepScheduleAndVehicle, body.Step)
	assert.Contains(t, body.Fields, "location")
}

func TestSubmitEndpoint(t *testing.T) {
	t.Run("success returns the receipt", func(t *testing.T) {
		r := newTestRouter(&stubSessionService{
			receipt: &models.Receipt{Reference: "DBS-4821", GrandTotal: 40000, Currency: "UGX"},
		})

		w := doRequest(r, http.MethodPost, "/api/booking/session/abc/submit", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Receipt models.Receipt `json:"receipt"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "DBS-4821", body.Receipt.Reference)
	})

	t.Run("declined payment is retryable", func(t *testing.T) {
		r := newTestRouter(&stubSessionService{
			err: &booking.SubmissionError{Reason: assert.AnError},
		})

		w := doRequest(r, http.MethodPost, "/api/booking/session/abc/submit", "")
		assert.Equal(t, http.StatusPaymentRequired, w.Code)

		var body struct {
			Error     string `json:"error"`
			Retryable bool   `json:"retryable"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, models.ErrCodeSubmissionFailure, body.Error)
		assert.True(t, body.Retryable)
	})
}

func TestBadJSONInput(t *testing.T) {
	r := newTestRouter(&stubSessionService{view: sampleView()})

	w := doRequest(r, http.MethodPut, "/api/booking/session/abc/schedule", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPut, "/api/booking/session/abc/package", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "packageId is required")
}

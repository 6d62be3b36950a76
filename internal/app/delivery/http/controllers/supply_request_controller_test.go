package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/dto/requests"
	"necessitous-service/internal/pkg/dto/responses"
	"necessitous-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newSupplyRequestController(uc contracts.SupplyRequestUsecase) *SupplyRequestController {
	return &SupplyRequestController{Log: zap.NewNop(), SupplyRequestUsecase: uc}
}

func TestSupplyRequestController_Preview(t *testing.T) {
	t.Run("Complete dict returns the built request", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)
		uc.On("Preview", mock.Anything, mock.MatchedBy(func(steps models.PartialStepDict) bool {
			return len(steps) == 3
		})).Return(requests.SupplyRequest{requests.KeyGloves: "x"}, nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/supply-requests/preview", strings.NewReader(completeStepsBody))
		newSupplyRequestController(uc).Preview(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"gloves":"x"`)
		uc.AssertExpectations(t)
	})

	t.Run("Invalid contact never reaches the usecase", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)
		body := `{
			"contact": {"type":"contact","data":{"name":"   ","city":"Gdansk","street":"Dluga","building":"12","email":"not-an-email","phone":"1"}},
			"demand": {"type":"demand","data":{"supplies":{}}},
			"summary": {"type":"summary","data":{}}
		}`

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/supply-requests/preview", strings.NewReader(body))
		newSupplyRequestController(uc).Preview(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		uc.AssertNotCalled(t, "Preview", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON is a bad request", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/supply-requests/preview", strings.NewReader(`{`))
		newSupplyRequestController(uc).Preview(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Partial dict maps to 400", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/supply-requests/preview", strings.NewReader(`{"contact":`+contactEnvelope+`}`))
		newSupplyRequestController(uc).Preview(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientIncompleteRequest)
		uc.AssertNotCalled(t, "Preview", mock.Anything, mock.Anything)
	})

	t.Run("Partial dict wins over invalid demand data", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)
		body := `{
			"demand": {"type":"demand","data":{"supplies":{"Glove":{"positions":[{"material":"bogus","quantity":2,"size":"M"}]}}}},
			"summary": {"type":"summary","data":{"comment":"thanks"}}
		}`

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/supply-requests/preview", strings.NewReader(body))
		newSupplyRequestController(uc).Preview(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientIncompleteRequest)
		assert.NotContains(t, rr.Body.String(), "material")
		uc.AssertNotCalled(t, "Preview", mock.Anything, mock.Anything)
	})
}

func TestSupplyRequestController_Send(t *testing.T) {
	t.Run("Sent request returns 201 with id", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)
		uc.On("Send", mock.Anything, mock.Anything).Return(&responses.SupplyRequestSent{ID: "backend-7"}, nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/supply-requests", strings.NewReader(completeStepsBody))
		newSupplyRequestController(uc).Send(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"backend-7"`)
	})

	t.Run("Partial dict is never sent", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)
		body := `{"contact":` + contactEnvelope + `,"demand":{"type":"demand","data":{"supplies":{"Mask":{"positions":[{"type":"nope","quantity":-1,"style":"x"}]}}}}}`

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/supply-requests", strings.NewReader(body))
		newSupplyRequestController(uc).Send(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientIncompleteRequest)
		uc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Transport failure is a bad gateway", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)
		uc.On("Send", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrTransport(contracts.ErrTransport, constvars.TransportDriverHTTP))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/supply-requests", strings.NewReader(completeStepsBody))
		newSupplyRequestController(uc).Send(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientFailedToSendRequest)
	})
}

func TestSupplyRequestController_Navigate(t *testing.T) {
	t.Run("Valid navigation returns the path", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)
		uc.On("Navigate", mock.Anything, &requests.StepNavigation{Type: models.StepTypeContact, Direction: "next"}).
			Return(&responses.StepNavigation{Type: models.StepTypeContact, Path: models.StepPathDemand}, nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/steps/navigation", strings.NewReader(`{"type":"contact","direction":"next"}`))
		newSupplyRequestController(uc).Navigate(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"path":"2"`)
	})

	t.Run("Impossible state is a server error", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)
		uc.On("Navigate", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrImpossibleState(models.ErrImpossibleState, "summary"))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/steps/navigation", strings.NewReader(`{"type":"summary","direction":"next"}`))
		newSupplyRequestController(uc).Navigate(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Unknown direction fails validation", func(t *testing.T) {
		uc := new(MockSupplyRequestUsecase)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/steps/navigation", strings.NewReader(`{"type":"summary","direction":"up"}`))
		newSupplyRequestController(uc).Navigate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		uc.AssertNotCalled(t, "Navigate", mock.Anything, mock.Anything)
	})
}

package controllers

import (
	"context"

	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/dto/requests"
	"necessitous-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockSupplyRequestUsecase struct {
	mock.Mock
}

func (m *MockSupplyRequestUsecase) Preview(ctx context.Context, steps models.PartialStepDict) (requests.SupplyRequest, error) {
	args := m.Called(ctx, steps)
	request, _ := args.Get(0).(requests.SupplyRequest)
	return request, args.Error(1)
}

func (m *MockSupplyRequestUsecase) Send(ctx context.Context, steps models.PartialStepDict) (*responses.SupplyRequestSent, error) {
	args := m.Called(ctx, steps)
	result, _ := args.Get(0).(*responses.SupplyRequestSent)
	return result, args.Error(1)
}

func (m *MockSupplyRequestUsecase) Navigate(ctx context.Context, request *requests.StepNavigation) (*responses.StepNavigation, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.StepNavigation)
	return result, args.Error(1)
}

type MockDraftUsecase struct {
	mock.Mock
}

func (m *MockDraftUsecase) Create(ctx context.Context) (*responses.Draft, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Draft)
	return result, args.Error(1)
}

func (m *MockDraftUsecase) FindByID(ctx context.Context, draftID string) (*responses.Draft, error) {
	args := m.Called(ctx, draftID)
	result, _ := args.Get(0).(*responses.Draft)
	return result, args.Error(1)
}

func (m *MockDraftUsecase) SaveStep(ctx context.Context, draftID string, step models.Step) (*responses.Draft, error) {
	args := m.Called(ctx, draftID, step)
	result, _ := args.Get(0).(*responses.Draft)
	return result, args.Error(1)
}

func (m *MockDraftUsecase) Submit(ctx context.Context, draftID string) (*responses.SupplyRequestSent, error) {
	args := m.Called(ctx, draftID)
	result, _ := args.Get(0).(*responses.SupplyRequestSent)
	return result, args.Error(1)
}

const contactEnvelope = `{"type":"contact","data":{"name":"Szpital Miejski","city":"Gdansk","street":"Dluga","building":"12","email":"kontakt@szpital.pl","phone":"+48123456789"}}`

const completeStepsBody = `{
	"contact": ` + contactEnvelope + `,
	"demand": {"type":"demand","data":{"supplies":{"Glove":{"positions":[{"material":"latex","quantity":2,"size":"M"}]}}}},
	"summary": {"type":"summary","data":{"comment":"thanks"}}
}`

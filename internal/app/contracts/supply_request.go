package contracts

import (
	"context"
	"errors"
	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/dto/requests"
	"necessitous-service/internal/pkg/dto/responses"
)

// ErrTransport is the single error a RequestSender reports, whatever went
// wrong on the way to the backend.
var ErrTransport = errors.New("Failed to send the request")

type SupplyRequestUsecase interface {
	Preview(ctx context.Context, steps models.PartialStepDict) (requests.SupplyRequest, error)
	Send(ctx context.Context, steps models.PartialStepDict) (*responses.SupplyRequestSent, error)
	Navigate(ctx context.Context, request *requests.StepNavigation) (*responses.StepNavigation, error)
}

// RequestSender delivers a built request to the backend in a single attempt
// and returns the identifier the backend issued for it.
type RequestSender interface {
	Send(ctx context.Context, request requests.SupplyRequest) (string, error)
}

// SubmissionArchive keeps a copy of every request that was sent.
type SubmissionArchive interface {
	Archive(ctx context.Context, responseID string, request requests.SupplyRequest) error
}

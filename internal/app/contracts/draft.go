package contracts

import (
	"context"
	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/dto/responses"
)

type DraftUsecase interface {
	Create(ctx context.Context) (*responses.Draft, error)
	FindByID(ctx context.Context, draftID string) (*responses.Draft, error)
	SaveStep(ctx context.Context, draftID string, step models.Step) (*responses.Draft, error)
	Submit(ctx context.Context, draftID string) (*responses.SupplyRequestSent, error)
}

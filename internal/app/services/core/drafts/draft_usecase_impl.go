package drafts

import (
	"context"
	"fmt"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/app/models"
	supplyRequests "necessitous-service/internal/app/services/core/supply_requests"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/dto/responses"
	"necessitous-service/internal/pkg/exceptions"
	"necessitous-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// submitLockExpiration bounds how long a crashed submission can block the draft.
const submitLockExpiration = time.Minute

type draftUsecase struct {
	RedisRepository      contracts.RedisRepository
	LockerService        contracts.LockerService
	SupplyRequestUsecase contracts.SupplyRequestUsecase
	TTL                  time.Duration
	Log                  *zap.Logger
}

var (
	draftUsecaseInstance contracts.DraftUsecase
	onceDraftUsecase     sync.Once
)

// NewDraftUsecase keeps wizard progress in redis. Every write refreshes the
// draft expiry to ttl.
func NewDraftUsecase(
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	supplyRequestUsecase contracts.SupplyRequestUsecase,
	ttl time.Duration,
	logger *zap.Logger,
) contracts.DraftUsecase {
	onceDraftUsecase.Do(func() {
		draftUsecaseInstance = &draftUsecase{
			RedisRepository:      redisRepository,
			LockerService:        lockerService,
			SupplyRequestUsecase: supplyRequestUsecase,
			TTL:                  ttl,
			Log:                  logger,
		}
	})
	return draftUsecaseInstance
}

func (uc *draftUsecase) Create(ctx context.Context) (*responses.Draft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("draftUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	draftID := utils.GenerateDraftID()
	steps := models.PartialStepDict{}
	err := uc.save(ctx, draftID, steps)
	if err != nil {
		uc.Log.Error("draftUsecase.Create error saving draft to Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("draftUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)
	return toDraftResponse(draftID, steps), nil
}

func (uc *draftUsecase) FindByID(ctx context.Context, draftID string) (*responses.Draft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("draftUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)

	steps, err := uc.load(ctx, draftID)
	if err != nil {
		uc.Log.Error("draftUsecase.FindByID error loading draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
		return nil, err
	}

	draft := toDraftResponse(draftID, steps)
	uc.Log.Info("draftUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingCompleteKey, draft.Complete),
	)
	return draft, nil
}

func (uc *draftUsecase) SaveStep(ctx context.Context, draftID string, step models.Step) (*responses.Draft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("draftUsecase.SaveStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
		zap.String(constvars.LoggingStepTypeKey, string(step.Type())),
	)

	steps, err := uc.load(ctx, draftID)
	if err != nil {
		uc.Log.Error("draftUsecase.SaveStep error loading draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
		return nil, err
	}

	steps = steps.With(step)
	err = uc.save(ctx, draftID, steps)
	if err != nil {
		uc.Log.Error("draftUsecase.SaveStep error saving draft to Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
		return nil, err
	}

	draft := toDraftResponse(draftID, steps)
	uc.Log.Info("draftUsecase.SaveStep succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingCompleteKey, draft.Complete),
	)
	return draft, nil
}

// Submit sends the draft and deletes it. A draft whose send failed is kept
// so the user can try again. Concurrent submits of one draft are rejected
// while the first is in flight.
func (uc *draftUsecase) Submit(ctx context.Context, draftID string) (*responses.SupplyRequestSent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("draftUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyDraftSubmitLockFormat, draftID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, submitLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("draftUsecase.Submit draft already being submitted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
		)
		return nil, exceptions.ErrDraftSubmitInProgress(nil, draftID)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("draftUsecase.Submit error releasing submit lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	steps, err := uc.load(ctx, draftID)
	if err != nil {
		uc.Log.Error("draftUsecase.Submit error loading draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := uc.SupplyRequestUsecase.Send(ctx, steps)
	if err != nil {
		uc.Log.Error("draftUsecase.Submit error sending supply request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.RedisRepository.Delete(ctx, draftKey(draftID))
	if err != nil {
		uc.Log.Warn("draftUsecase.Submit error deleting submitted draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDraftIDKey, draftID),
			zap.Error(err),
		)
	}

	uc.Log.Info("draftUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, result.ID),
	)
	return result, nil
}

func (uc *draftUsecase) load(ctx context.Context, draftID string) (models.PartialStepDict, error) {
	data, err := uc.RedisRepository.Get(ctx, draftKey(draftID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrDraftNotFound(nil, draftID)
	}

	var steps models.PartialStepDict
	err = json.Unmarshal([]byte(data), &steps)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return steps, nil
}

func (uc *draftUsecase) save(ctx context.Context, draftID string, steps models.PartialStepDict) error {
	return uc.RedisRepository.Set(ctx, draftKey(draftID), steps, uc.TTL)
}

func draftKey(draftID string) string {
	return fmt.Sprintf(constvars.RedisKeyDraftFormat, draftID)
}

func toDraftResponse(draftID string, steps models.PartialStepDict) *responses.Draft {
	return &responses.Draft{
		DraftID:  draftID,
		Steps:    steps,
		Complete: supplyRequests.IsComplete(steps),
	}
}

package supplyRequests

import (
	"context"
	"errors"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/dto/requests"
	"necessitous-service/internal/pkg/dto/responses"
	"necessitous-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type supplyRequestUsecase struct {
	RequestSender contracts.RequestSender
	Archive       contracts.SubmissionArchive
	TransportName string
	Log           *zap.Logger
}

var (
	supplyRequestUsecaseInstance contracts.SupplyRequestUsecase
	onceSupplyRequestUsecase     sync.Once
)

// NewSupplyRequestUsecase wires the builder to a transport. archive may be
// nil when archiving is disabled.
func NewSupplyRequestUsecase(
	requestSender contracts.RequestSender,
	archive contracts.SubmissionArchive,
	transportName string,
	logger *zap.Logger,
) contracts.SupplyRequestUsecase {
	onceSupplyRequestUsecase.Do(func() {
		supplyRequestUsecaseInstance = &supplyRequestUsecase{
			RequestSender: requestSender,
			Archive:       archive,
			TransportName: transportName,
			Log:           logger,
		}
	})
	return supplyRequestUsecaseInstance
}

func (uc *supplyRequestUsecase) Preview(ctx context.Context, steps models.PartialStepDict) (requests.SupplyRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("supplyRequestUsecase.Preview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStepsKey, len(steps)),
	)

	request, err := uc.build(requestID, steps)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("supplyRequestUsecase.Preview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingRequestKeysKey, presentKeys(request)),
	)
	return request, nil
}

func (uc *supplyRequestUsecase) Send(ctx context.Context, steps models.PartialStepDict) (*responses.SupplyRequestSent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("supplyRequestUsecase.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransportKey, uc.TransportName),
	)

	request, err := uc.build(requestID, steps)
	if err != nil {
		return nil, err
	}

	responseID, err := uc.RequestSender.Send(ctx, request)
	if err != nil {
		uc.Log.Error("supplyRequestUsecase.Send error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransportKey, uc.TransportName),
			zap.Error(err),
		)
		if errors.Is(err, contracts.ErrTransport) {
			return nil, err
		}
		return nil, exceptions.ErrTransport(contracts.ErrTransport, uc.TransportName)
	}

	if uc.Archive != nil {
		err = uc.Archive.Archive(ctx, responseID, request)
		if err != nil {
			uc.Log.Warn("supplyRequestUsecase.Send error archiving sent request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResponseIDKey, responseID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("supplyRequestUsecase.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
	)
	return &responses.SupplyRequestSent{ID: responseID}, nil
}

func (uc *supplyRequestUsecase) Navigate(ctx context.Context, request *requests.StepNavigation) (*responses.StepNavigation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("supplyRequestUsecase.Navigate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStepTypeKey, string(request.Type)),
	)

	if !request.Type.IsValid() {
		return nil, exceptions.ErrUnknownStepType(models.ErrUnknownStepType, string(request.Type))
	}

	var (
		path models.StepPath
		err  error
	)
	switch request.Direction {
	case constvars.NavigationDirectionNext:
		path, err = models.NextPath(request.Type)
	case constvars.NavigationDirectionPrev:
		path, err = models.PrevPath(request.Type)
	default:
		return nil, exceptions.ErrUnknownDirection(nil, request.Direction)
	}
	if err != nil {
		uc.Log.Error("supplyRequestUsecase.Navigate impossible state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImpossibleState(err, string(request.Type))
	}

	uc.Log.Info("supplyRequestUsecase.Navigate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNavigationPathKey, string(path)),
	)
	return &responses.StepNavigation{Type: request.Type, Path: path}, nil
}

func (uc *supplyRequestUsecase) build(requestID string, steps models.PartialStepDict) (requests.SupplyRequest, error) {
	request, err := Build(steps)
	if err != nil {
		uc.Log.Error("supplyRequestUsecase.build error building request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPartialRequest(err, MissingStepNames(steps))
	}
	return request, nil
}

func presentKeys(request requests.SupplyRequest) []string {
	keys := make([]string, 0, len(request))
	for _, key := range requests.SupplyRequestKeys {
		if _, ok := request[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

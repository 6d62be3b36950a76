package controllers

import (
	"context"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/app/models"
	supplyRequests "necessitous-service/internal/app/services/core/supply_requests"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/dto/requests"
	"necessitous-service/internal/pkg/exceptions"
	"necessitous-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type SupplyRequestController struct {
	Log                  *zap.Logger
	SupplyRequestUsecase contracts.SupplyRequestUsecase
}

var (
	supplyRequestControllerInstance *SupplyRequestController
	onceSupplyRequestController     sync.Once
)

func NewSupplyRequestController(logger *zap.Logger, supplyRequestUsecase contracts.SupplyRequestUsecase) *SupplyRequestController {
	onceSupplyRequestController.Do(func() {
		supplyRequestControllerInstance = &SupplyRequestController{
			Log:                  logger,
			SupplyRequestUsecase: supplyRequestUsecase,
		}
	})
	return supplyRequestControllerInstance
}

func (ctrl *SupplyRequestController) Preview(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SupplyRequestController.Preview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	steps, err := ctrl.parseSteps(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SupplyRequestUsecase.Preview(ctx, steps)
	if err != nil {
		ctrl.Log.Error("SupplyRequestController.Preview error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("SupplyRequestController.Preview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SupplyRequestPreviewSuccess, result)
}

func (ctrl *SupplyRequestController) Send(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SupplyRequestController.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	steps, err := ctrl.parseSteps(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SupplyRequestUsecase.Send(ctx, steps)
	if err != nil {
		ctrl.Log.Error("SupplyRequestController.Send error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("SupplyRequestController.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SupplyRequestSendSuccess, result)
}

func (ctrl *SupplyRequestController) Navigate(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SupplyRequestController.Navigate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.StepNavigation)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("SupplyRequestController.Navigate error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("SupplyRequestController.Navigate validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.SupplyRequestUsecase.Navigate(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("SupplyRequestController.Navigate error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SupplyRequestController.Navigate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNavigationPathKey, string(result.Path)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StepNavigationSuccess, result)
}

func (ctrl *SupplyRequestController) parseSteps(r *http.Request) (models.PartialStepDict, error) {
	requestID := utils.GetRequestID(r.Context())

	var steps models.PartialStepDict
	err := utils.ParseJSONBody(r, &steps)
	if err != nil {
		ctrl.Log.Error("SupplyRequestController error parsing steps",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Step contents are only checked once every step is present.
	_, err = supplyRequests.RequireComplete(steps)
	if err != nil {
		ctrl.Log.Error("SupplyRequestController partial request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPartialRequest(err, supplyRequests.MissingStepNames(steps))
	}

	err = validateSteps(steps)
	if err != nil {
		ctrl.Log.Error("SupplyRequestController steps validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return steps, nil
}

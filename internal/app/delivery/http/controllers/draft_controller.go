package controllers

import (
	"context"
	"errors"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/app/models"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/exceptions"
	"necessitous-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DraftController struct {
	Log          *zap.Logger
	DraftUsecase contracts.DraftUsecase
}

var (
	draftControllerInstance *DraftController
	onceDraftController     sync.Once
)

func NewDraftController(logger *zap.Logger, draftUsecase contracts.DraftUsecase) *DraftController {
	onceDraftController.Do(func() {
		draftControllerInstance = &DraftController{
			Log:          logger,
			DraftUsecase: draftUsecase,
		}
	})
	return draftControllerInstance
}

func (ctrl *DraftController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DraftController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.Create(ctx)
	if err != nil {
		ctrl.Log.Error("DraftController.Create error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("DraftController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, result.DraftID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DraftCreateSuccess, result)
}

func (ctrl *DraftController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	draftID := chi.URLParam(r, constvars.URLParamDraftID)
	ctrl.Log.Info("DraftController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.FindByID(ctx, draftID)
	if err != nil {
		ctrl.Log.Error("DraftController.FindByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("DraftController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DraftGetSuccess, result)
}

func (ctrl *DraftController) SaveStep(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	draftID := chi.URLParam(r, constvars.URLParamDraftID)
	ctrl.Log.Info("DraftController.SaveStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)

	var raw json.RawMessage
	err := utils.ParseJSONBody(r, &raw)
	if err != nil {
		ctrl.Log.Error("DraftController.SaveStep error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	step, err := models.DecodeStep(raw)
	if err != nil {
		ctrl.Log.Error("DraftController.SaveStep error decoding step",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var unknownType *models.UnknownStepTypeError
		if errors.As(err, &unknownType) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownStepType(err, string(unknownType.Type)))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = validateStep(step)
	if err != nil {
		ctrl.Log.Error("DraftController.SaveStep validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.SaveStep(ctx, draftID, step)
	if err != nil {
		ctrl.Log.Error("DraftController.SaveStep error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("DraftController.SaveStep succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStepTypeKey, string(step.Type())),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DraftSaveStepSuccess, result)
}

func (ctrl *DraftController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	draftID := chi.URLParam(r, constvars.URLParamDraftID)
	ctrl.Log.Info("DraftController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.Submit(ctx, draftID)
	if err != nil {
		ctrl.Log.Error("DraftController.Submit error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(err))
		return
	}

	ctrl.Log.Info("DraftController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DraftSubmitSuccess, result)
}

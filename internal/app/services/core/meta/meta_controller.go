package meta

import (
	"context"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type MetaController struct {
	Log         *zap.Logger
	MetaUsecase contracts.MetaUsecase
}

func NewMetaController(logger *zap.Logger, metaUsecase contracts.MetaUsecase) *MetaController {
	return &MetaController{
		Log:         logger,
		MetaUsecase: metaUsecase,
	}
}

func (ctrl *MetaController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LivenessMessage, nil)
}

func (ctrl *MetaController) Diagnostics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result := ctrl.MetaUsecase.Diagnostics(ctx)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosticsSuccessMessage, result)
}

func (ctrl *MetaController) Schemas(w http.ResponseWriter, r *http.Request) {
	result := ctrl.MetaUsecase.Schemas()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSchemaSuccessMessage, result)
}

package articles

import (
	"context"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/exceptions"
	"mediportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ArticleController struct {
	Log            *zap.Logger
	ArticleUsecase contracts.ArticleUsecase
}

func NewArticleController(logger *zap.Logger, articleUsecase contracts.ArticleUsecase) *ArticleController {
	return &ArticleController{
		Log:            logger,
		ArticleUsecase: articleUsecase,
	}
}

func (ctrl *ArticleController) ListArticles(w http.ResponseWriter, r *http.Request) {
	request, err := utils.BuildListArticlesRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ArticleUsecase.ListArticles(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArticlesSuccessMessage, result)
}

func (ctrl *ArticleController) FindArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ArticleUsecase.FindArticleBySlug(ctx, slug)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArticleSuccessMessage, result)
}

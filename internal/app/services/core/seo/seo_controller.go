package seo

import (
	"context"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type SeoController struct {
	Log        *zap.Logger
	SeoUsecase contracts.SeoUsecase
}

func NewSeoController(logger *zap.Logger, seoUsecase contracts.SeoUsecase) *SeoController {
	return &SeoController{
		Log:        logger,
		SeoUsecase: seoUsecase,
	}
}

func (ctrl *SeoController) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	utils.BuildPlainTextResponse(w, constvars.MIMEApplicationXML, ctrl.SeoUsecase.BuildSitemap(ctx))
}

func (ctrl *SeoController) Robots(w http.ResponseWriter, r *http.Request) {
	utils.BuildPlainTextResponse(w, constvars.MIMETextPlainCharsetUTF8, ctrl.SeoUsecase.BuildRobots())
}

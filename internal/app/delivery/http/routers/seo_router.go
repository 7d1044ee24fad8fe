package routers

import (
	"mediportal-service/internal/app/services/core/seo"

	"github.com/go-chi/chi/v5"
)

func attachSeoRoutes(router chi.Router, seoController *seo.SeoController) {
	router.Get("/sitemap.xml", seoController.Sitemap)
	router.Get("/robots.txt", seoController.Robots)
}

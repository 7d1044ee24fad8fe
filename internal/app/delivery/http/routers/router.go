package routers

import (
	"mediportal-service/internal/app/config"
	"mediportal-service/internal/app/delivery/http/middlewares"
	"mediportal-service/internal/app/services/core/articles"
	"mediportal-service/internal/app/services/core/doctors"
	"mediportal-service/internal/app/services/core/leads"
	"mediportal-service/internal/app/services/core/meta"
	"mediportal-service/internal/app/services/core/seo"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	metaController *meta.MetaController,
	articleController *articles.ArticleController,
	doctorController *doctors.DoctorController,
	leadController *leads.LeadController,
	seoController *seo.SeoController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	attachMetaRoutes(router, metaController)
	attachArticleRoutes(router, articleController)
	attachDoctorRoutes(router, doctorController)
	attachLeadRoutes(router, leadController)
	attachSeoRoutes(router, seoController)
}

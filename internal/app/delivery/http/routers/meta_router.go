package routers

import (
	"mediportal-service/internal/app/services/core/meta"

	"github.com/go-chi/chi/v5"
)

func attachMetaRoutes(router chi.Router, metaController *meta.MetaController) {
	router.Get("/", metaController.Liveness)
	router.Get("/test", metaController.Diagnostics)
	router.Get("/schema", metaController.Schemas)
}

package routers

import (
	"mediportal-service/internal/app/services/core/articles"

	"github.com/go-chi/chi/v5"
)

func attachArticleRoutes(router chi.Router, articleController *articles.ArticleController) {
	router.Route("/articles", func(r chi.Router) {
		r.Get("/", articleController.ListArticles)
		r.Get("/{slug}", articleController.FindArticleBySlug)
	})
}

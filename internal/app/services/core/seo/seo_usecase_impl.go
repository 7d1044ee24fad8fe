package seo

import (
	"context"
	"fmt"
	"mediportal-service/internal/app/config"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/pkg/constvars"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Pages of the frontend that always appear in the sitemap.
var sitemapStaticPaths = []string{"/", "/articles", "/about", "/press", "/contact", "/privacy", "/terms", "/lgpd"}

// Article entries are capped; the scan is a bulk read, not a paginated export.
const sitemapArticleScanLimit = 500

type seoUsecase struct {
	ArticleRepository contracts.ArticleRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	seoUsecaseInstance contracts.SeoUsecase
	onceSeoUsecase     sync.Once
)

func NewSeoUsecase(
	articleRepository contracts.ArticleRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SeoUsecase {
	onceSeoUsecase.Do(func() {
		seoUsecaseInstance = &seoUsecase{
			ArticleRepository: articleRepository,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return seoUsecaseInstance
}

func (uc *seoUsecase) BuildSitemap(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	baseURL := uc.InternalConfig.Frontend.BaseURL

	urls := make([]string, 0, len(sitemapStaticPaths))
	for _, path := range sitemapStaticPaths {
		urls = append(urls, fmt.Sprintf("  <url><loc>%s%s</loc></url>", baseURL, path))
	}

	articles, err := uc.ArticleRepository.Find(ctx, bson.M{}, sitemapArticleScanLimit)
	if err != nil {
		uc.Log.Warn("seoUsecase.BuildSitemap dropping article entries after read failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else {
		for _, article := range articles {
			if article.Slug != "" {
				urls = append(urls, fmt.Sprintf("  <url><loc>%s/articles/%s</loc></url>", baseURL, article.Slug))
			}
		}
	}

	lines := make([]string, 0, len(urls)+3)
	lines = append(lines,
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
	)
	lines = append(lines, urls...)
	lines = append(lines, `</urlset>`)
	return strings.Join(lines, "\n")
}

func (uc *seoUsecase) BuildRobots() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", uc.InternalConfig.Frontend.BaseURL)
}

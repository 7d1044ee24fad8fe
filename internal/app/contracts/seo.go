package contracts

import "context"

type SeoUsecase interface {
	// BuildSitemap never fails: when the article scan errors, the sitemap still
	// carries the static paths and drops the article entries.
	BuildSitemap(ctx context.Context) string
	BuildRobots() string
}

package articles

import (
	"context"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/dto/requests"
	"mediportal-service/internal/pkg/dto/responses"
	"mediportal-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type articleUsecase struct {
	ArticleRepository contracts.ArticleRepository
	Log               *zap.Logger
}

var (
	articleUsecaseInstance contracts.ArticleUsecase
	onceArticleUsecase     sync.Once
)

func NewArticleUsecase(articleRepository contracts.ArticleRepository, logger *zap.Logger) contracts.ArticleUsecase {
	onceArticleUsecase.Do(func() {
		articleUsecaseInstance = &articleUsecase{
			ArticleRepository: articleRepository,
			Log:               logger,
		}
	})
	return articleUsecaseInstance
}

func (uc *articleUsecase) ListArticles(ctx context.Context, request *requests.ListArticles) ([]responses.Article, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	filter := BuildListArticlesFilter(request)
	articles, err := uc.ArticleRepository.Find(ctx, filter, request.Limit)
	if err != nil {
		uc.Log.Error("articleUsecase.ListArticles error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Article, len(articles))
	for i, eachArticle := range articles {
		response[i] = eachArticle.ConvertIntoResponse()
	}

	uc.Log.Info("articleUsecase.ListArticles succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("article_count", len(response)),
	)
	return response, nil
}

func (uc *articleUsecase) FindArticleBySlug(ctx context.Context, slug string) (*responses.Article, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	article, err := uc.ArticleRepository.FindBySlug(ctx, slug)
	if err != nil {
		uc.Log.Error("articleUsecase.FindArticleBySlug error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if article == nil {
		return nil, exceptions.ErrArticleNotFound(nil)
	}

	response := article.ConvertIntoResponse()
	return &response, nil
}

package models

import (
	"mediportal-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is an editorial content document. The slug is unique by convention
// only; nothing at the data layer prevents duplicates.
type Article struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Slug         string             `bson:"slug"`
	Summary      string             `bson:"summary,omitempty"`
	Content      string             `bson:"content,omitempty"`
	Category     string             `bson:"category,omitempty"`
	Tags         []string           `bson:"tags,omitempty"`
	CoverImage   string             `bson:"cover_image,omitempty"`
	Author       string             `bson:"author,omitempty"`
	PublishedAt  *time.Time         `bson:"published_at,omitempty"`
	RelatedSlugs []string           `bson:"related_slugs,omitempty"`
}

func (a Article) ConvertIntoResponse() responses.Article {
	return responses.Article{
		ID:           a.ID.Hex(),
		Title:        a.Title,
		Slug:         a.Slug,
		Summary:      a.Summary,
		Content:      a.Content,
		Category:     a.Category,
		Tags:         a.Tags,
		CoverImage:   a.CoverImage,
		Author:       a.Author,
		PublishedAt:  a.PublishedAt,
		RelatedSlugs: a.RelatedSlugs,
	}
}

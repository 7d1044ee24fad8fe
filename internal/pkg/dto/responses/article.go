package responses

import "time"

type Article struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Summary      string     `json:"summary,omitempty"`
	Content      string     `json:"content,omitempty"`
	Category     string     `json:"category,omitempty"`
	Tags         []string   `json:"tags"`
	CoverImage   string     `json:"cover_image,omitempty"`
	Author       string     `json:"author,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	RelatedSlugs []string   `json:"related_slugs"`
}

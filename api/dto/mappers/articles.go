// ABOUTME: Mappers between domain models and API DTOs
// ABOUTME: Converts articles and favorite requests at the API boundary

package mappers

import (
	"newshub-api/api/dto/requests"
	"newshub-api/api/dto/responses"
	"newshub-api/core/domain"
)

// ToArticleResponse converts a domain article to its API representation
func ToArticleResponse(article domain.Article) responses.ArticleResponse {
	return responses.ArticleResponse{
		ID:                 article.ID,
		Title:              article.Title,
		Description:        article.Description,
		Content:            article.Content,
		Author:             article.Author,
		PublishedAt:        article.PublishedAt,
		ImageURL:           article.ImageURL,
		Category:           string(article.Category),
		Tags:               article.Tags,
		ReadingTimeMinutes: article.ReadingTime(),
	}
}

// ToArticleResponses converts a slice of domain articles
func ToArticleResponses(articles []domain.Article) []responses.ArticleResponse {
	out := make([]responses.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ToArticleResponse(a))
	}
	return out
}

// FromSaveFavoriteRequest converts a save request into a domain article
func FromSaveFavoriteRequest(req requests.SaveFavoriteRequest) domain.Article {
	return domain.Article{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Author:      req.Author,
		PublishedAt: req.PublishedAt,
		ImageURL:    req.ImageURL,
		Category:    domain.Category(req.Category),
		Tags:        req.Tags,
	}
}

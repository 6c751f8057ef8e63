// ABOUTME: RSS data source fetches articles from configured RSS/Atom feeds
// ABOUTME: Maps transport and parse failures onto the core error taxonomy

package rss

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/mmcdole/gofeed"
	gocache "github.com/patrickmn/go-cache"

	"newshub-api/core/domain"
	coreerrors "newshub-api/core/errors"
	"newshub-api/core/interfaces"
)

const (
	// pageSize is the number of articles returned per page.
	pageSize = 20

	// feedCacheTTL is how long a parsed feed is reused before the origin
	// is fetched again. This is transport-level politeness toward feed
	// origins, separate from the article service's own query cache.
	feedCacheTTL = time.Minute

	feedCacheCleanup = 5 * time.Minute
)

// Config holds the RSS source configuration
type Config struct {
	// Feeds maps each category to its feed URL
	Feeds map[domain.Category]string

	// Timeout bounds each feed request
	Timeout time.Duration

	// RetryMax is the number of transport-level retries per request
	RetryMax int
}

// Source is an ArticleDataSource backed by RSS/Atom feeds.
type Source struct {
	feeds  map[domain.Category]string
	client *http.Client
	parser *gofeed.Parser
	cache  *gocache.Cache
	logger interfaces.Logger
}

// NewSource creates an RSS source from the given configuration.
func NewSource(cfg Config, logger interfaces.Logger) *Source {
	r := retryablehttp.NewClient()
	r.RetryMax = cfg.RetryMax
	r.HTTPClient.Timeout = cfg.Timeout
	r.Logger = nil

	// Retry only transport failures; status-code handling stays with the
	// caller so server failures surface as ServerError, not as retries.
	r.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}

	return &Source{
		feeds:  cfg.Feeds,
		client: r.StandardClient(),
		parser: gofeed.NewParser(),
		cache:  gocache.New(feedCacheTTL, feedCacheCleanup),
		logger: logger,
	}
}

// FetchArticles fetches one page of articles, optionally restricted to a
// single category's feed. A nil category reads every configured feed.
func (s *Source) FetchArticles(ctx context.Context, category *domain.Category, page int) ([]domain.Article, error) {
	if page < 1 {
		return nil, &coreerrors.ValidationError{Field: "page", Message: "must be a positive integer"}
	}

	var articles []domain.Article
	var err error

	if category != nil {
		url, ok := s.feeds[*category]
		if !ok {
			return nil, &coreerrors.ValidationError{Field: "category", Message: fmt.Sprintf("no feed configured for category %q", *category)}
		}
		articles, err = s.fetchFeed(ctx, *category, url)
	} else {
		articles, err = s.fetchAllFeeds(ctx)
	}

	if err != nil {
		return nil, err
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	return paginate(articles, page), nil
}

// fetchAllFeeds reads every configured feed concurrently. Individual feed
// failures are logged and tolerated as long as at least one feed succeeds;
// if every feed fails, the first failure is returned.
func (s *Source) fetchAllFeeds(ctx context.Context) ([]domain.Article, error) {
	type feedResult struct {
		articles []domain.Article
		err      error
		category domain.Category
	}

	resultsChan := make(chan feedResult, len(s.feeds))
	var wg sync.WaitGroup

	for category, url := range s.feeds {
		wg.Add(1)
		go func(category domain.Category, url string) {
			defer wg.Done()
			articles, err := s.fetchFeed(ctx, category, url)
			resultsChan <- feedResult{articles: articles, err: err, category: category}
		}(category, url)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	articles := make([]domain.Article, 0)
	var firstErr error
	failures := 0

	for result := range resultsChan {
		if result.err != nil {
			failures++
			if firstErr == nil {
				firstErr = result.err
			}
			if s.logger != nil && !coreerrors.IsCancelled(result.err) {
				s.logger.Warn("Feed fetch failed", map[string]interface{}{
					"category": result.category.String(),
					"error":    result.err.Error(),
				})
			}
			continue
		}
		articles = append(articles, result.articles...)
	}

	if failures == len(s.feeds) && firstErr != nil {
		return nil, firstErr
	}

	return articles, nil
}

// fetchFeed returns the articles for one feed, serving repeated calls
// within feedCacheTTL from the parsed-feed cache.
func (s *Source) fetchFeed(ctx context.Context, category domain.Category, url string) ([]domain.Article, error) {
	if cached, ok := s.cache.Get(url); ok {
		return cached.([]domain.Article), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &coreerrors.UnknownError{Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &coreerrors.ServerError{StatusCode: resp.StatusCode}
	}

	feed, err := s.parser.Parse(resp.Body)
	if err != nil {
		return nil, &coreerrors.DecodingError{Err: err}
	}

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		article := convertItem(item, category)
		if article.IsValid() {
			articles = append(articles, article)
		}
	}

	s.cache.SetDefault(url, articles)

	if s.logger != nil {
		s.logger.Debug("Fetched feed", map[string]interface{}{
			"category": category.String(),
			"url":      url,
			"count":    len(articles),
		})
	}

	return articles, nil
}

// classifyTransportError maps an http client error onto the taxonomy.
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return &coreerrors.CancelledError{}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &coreerrors.ConnectivityError{Err: err}
	}

	// url.Error wraps everything the transport can fail with; treat it
	// as a connectivity problem so callers know a retry may help.
	return &coreerrors.ConnectivityError{Err: err}
}

// convertItem converts a gofeed item to a domain article
func convertItem(item *gofeed.Item, category domain.Category) domain.Article {
	article := domain.Article{
		ID:          item.GUID,
		Title:       item.Title,
		Description: htmlToText(item.Description),
		Category:    category,
		Tags:        item.Categories,
	}

	if article.ID == "" {
		article.ID = item.Link
	}

	if item.Content != "" {
		article.Content = htmlToText(item.Content)
	} else {
		article.Content = article.Description
	}

	if item.PublishedParsed != nil {
		article.PublishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		article.PublishedAt = *item.UpdatedParsed
	}

	if item.Author != nil {
		article.Author = item.Author.Name
	}

	if item.Image != nil && item.Image.URL != "" {
		article.ImageURL = item.Image.URL
	} else {
		for _, enc := range item.Enclosures {
			if strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
				article.ImageURL = enc.URL
				break
			}
		}
	}

	return article
}

// htmlToText extracts the text content from an HTML fragment
func htmlToText(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// paginate returns the 1-based page slice of articles
func paginate(articles []domain.Article, page int) []domain.Article {
	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= len(articles) {
		return []domain.Article{}
	}

	if end > len(articles) {
		end = len(articles)
	}

	return articles[start:end]
}

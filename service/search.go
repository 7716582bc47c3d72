package service

import (
	"context"
	"strings"

	"tourhub/constants"
	"tourhub/model"
	"tourhub/repository"
)

type SearchService struct {
	tours repository.Repository[model.Tour]
	posts repository.Repository[model.BlogPost]
}

const (
	searchAll   = "all"
	searchTours = "tours"
	searchBlog  = "blog"
)

// Search looks up active tours and published posts. With type all it returns a
// short preview of each, otherwise one page of the requested kind.
func (s *SearchService) Search(ctx context.Context, f model.SearchFilter) (*model.SearchResult, error) {
	q := strings.TrimSpace(f.Q)
	if q == "" {
		return nil, invalid("q", "is required")
	}
	kind := f.Type
	if kind == "" {
		kind = searchAll
	}
	if kind != searchAll && kind != searchTours && kind != searchBlog {
		return nil, invalid("type", "must be one of: all tours blog")
	}

	page, limit, offset := window(f.Page, f.Limit, constants.DEFAULT_SEARCH_LIMIT)
	if kind == searchAll {
		page, limit, offset = 1, constants.SEARCH_PREVIEW_LIMIT, 0
	}
	res := &model.SearchResult{Query: q, Tours: []model.Tour{}, Blogs: []model.BlogPost{}, Page: page, Limit: limit}

	if kind != searchBlog {
		scopes := []repository.Scope{
			equals("is_active", true),
			containsAny(q, "title", "description", "short_description", "location_city"),
		}
		total, err := s.tours.Count(ctx, scopes...)
		if err != nil {
			return nil, storeErr("search tours", entityTour, q, err)
		}
		tours, err := s.tours.Find(ctx, repository.Query{
			Scopes:   scopes,
			Order:    "is_featured DESC, " + newestFirst,
			Offset:   offset,
			Limit:    limit,
			Preloads: []string{"Category"},
		})
		if err != nil {
			return nil, storeErr("search tours", entityTour, q, err)
		}
		res.TotalTours = total
		if tours != nil {
			res.Tours = tours
		}
	}

	if kind != searchTours {
		scopes := []repository.Scope{
			equals("is_published", true),
			containsAny(q, "title", "excerpt", "content"),
		}
		total, err := s.posts.Count(ctx, scopes...)
		if err != nil {
			return nil, storeErr("search posts", entityBlogPost, q, err)
		}
		posts, err := s.posts.Find(ctx, repository.Query{
			Scopes: scopes,
			Order:  latestPublish,
			Offset: offset,
			Limit:  limit,
			Omit:   withoutContent,
		})
		if err != nil {
			return nil, storeErr("search posts", entityBlogPost, q, err)
		}
		res.TotalBlogs = total
		if posts != nil {
			res.Blogs = posts
		}
	}
	return res, nil
}

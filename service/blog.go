package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourhub/constants"
	"tourhub/helper"
	"tourhub/model"
	"tourhub/repository"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type BlogService struct {
	posts repository.Repository[model.BlogPost]
}

var withoutContent = []string{"content"}

func (s *BlogService) ListPublished(ctx context.Context, f model.BlogFilter) (model.Page[model.BlogPost], error) {
	scopes := []repository.Scope{equals("is_published", true)}
	if f.Search != "" {
		scopes = append(scopes, containsAny(f.Search, "title", "content"))
	}
	return paginate(ctx, s.posts, entityBlogPost, repository.Query{
		Scopes: scopes,
		Order:  latestPublish,
		Omit:   withoutContent,
	}, f.Pagination, constants.DEFAULT_BLOG_LIMIT)
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	p, err := s.posts.FindOne(ctx, repository.Query{
		Scopes: []repository.Scope{equals("slug", slug), equals("is_published", true)},
	})
	if err != nil {
		return nil, storeErr("get post", entityBlogPost, slug, err)
	}
	return p, nil
}

func (s *BlogService) IncrementViews(ctx context.Context, slug string) error {
	p, err := s.posts.FindOne(ctx, repository.Query{Scopes: []repository.Scope{equals("slug", slug)}})
	if err != nil {
		return storeErr("count view", entityBlogPost, slug, err)
	}
	err = s.posts.Update(ctx, p.ID, map[string]any{"views_count": gorm.Expr("views_count + ?", 1)})
	return storeErr("count view", entityBlogPost, slug, err)
}

// Related lists other published posts in the same category.
func (s *BlogService) Related(ctx context.Context, slug string, limit int) ([]model.BlogPost, error) {
	p, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	_, limit, _ = window(1, limit, constants.DEFAULT_RELATED_LIMIT)
	posts, err := s.posts.Find(ctx, repository.Query{
		Scopes: []repository.Scope{
			equals("is_published", true),
			equals("category", p.Category),
			repository.Where("id <> ?", p.ID),
		},
		Order: latestPublish,
		Limit: limit,
		Omit:  withoutContent,
	})
	if err != nil {
		return nil, storeErr("related posts", entityBlogPost, slug, err)
	}
	return posts, nil
}

func (s *BlogService) ListAdmin(ctx context.Context, f model.BlogFilter) (model.Page[model.BlogPost], error) {
	var scopes []repository.Scope
	switch f.Status {
	case "published":
		scopes = append(scopes, equals("is_published", true))
	case "draft":
		scopes = append(scopes, equals("is_published", false))
	}
	if f.Search != "" {
		scopes = append(scopes, containsAny(f.Search, "title", "content"))
	}
	return paginate(ctx, s.posts, entityBlogPost, repository.Query{
		Scopes: scopes,
		Order:  newestFirst,
		Omit:   withoutContent,
	}, f.Pagination, constants.DEFAULT_BLOG_ADMIN_LIMIT)
}

func (s *BlogService) Get(ctx context.Context, id uint) (*model.BlogPost, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get post", entityBlogPost, id, err)
	}
	return p, nil
}

func (s *BlogService) Create(ctx context.Context, in model.BlogPostInput) (*model.BlogPost, error) {
	if err := ValidateBlogPostInput(in); err != nil {
		return nil, err
	}
	source := in.Slug
	if source == "" {
		source = in.Title
	}
	slug, err := s.freeSlug(ctx, source, 0)
	if err != nil {
		return nil, err
	}

	var p model.BlogPost
	if err := copier.Copy(&p, &in); err != nil {
		return nil, fmt.Errorf("copy post input: %w", err)
	}
	p.Title = strings.TrimSpace(in.Title)
	p.Slug = slug
	if strings.TrimSpace(p.AuthorName) == "" {
		p.AuthorName = "Admin"
	}
	if in.Status == "published" {
		now := time.Now().UTC()
		p.IsPublished = true
		p.PublishedAt = &now
	}

	if err := s.posts.Insert(ctx, &p); err != nil {
		return nil, storeErr("create post", entityBlogPost, slug, err)
	}
	return &p, nil
}

// Update applies an admin patch. An explicit slug wins; otherwise the slug
// follows the title.
func (s *BlogService) Update(ctx context.Context, id uint, in model.BlogPostPatch) (*model.BlogPost, error) {
	if err := ValidateBlogPostPatch(in); err != nil {
		return nil, err
	}
	cur, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("update post", entityBlogPost, id, err)
	}

	patch := map[string]any{}
	titleChanged := in.Title != nil && strings.TrimSpace(*in.Title) != cur.Title
	if titleChanged {
		patch["title"] = strings.TrimSpace(*in.Title)
	}
	switch {
	case in.Slug != nil && *in.Slug != "" && *in.Slug != cur.Slug:
		slug, err := s.freeSlug(ctx, *in.Slug, id)
		if err != nil {
			return nil, err
		}
		patch["slug"] = slug
	case titleChanged && (in.Slug == nil || *in.Slug == ""):
		slug, err := s.freeSlug(ctx, *in.Title, id)
		if err != nil {
			return nil, err
		}
		patch["slug"] = slug
	}

	if in.Status != nil {
		switch *in.Status {
		case "published":
			patch["is_published"] = true
			if !cur.IsPublished || cur.PublishedAt == nil {
				patch["published_at"] = time.Now().UTC()
			}
		case "draft":
			patch["is_published"] = false
		}
	}
	setIf(patch, "excerpt", in.Excerpt)
	setIf(patch, "content", in.Content)
	setIf(patch, "cover_image_url", in.CoverImageURL)
	setIf(patch, "category", in.Category)
	setIf(patch, "author_name", in.AuthorName)
	setIf(patch, "featured", in.Featured)
	setIf(patch, "seo_meta_title", in.SeoMetaTitle)
	setIf(patch, "seo_meta_description", in.SeoMetaDescription)
	setIf(patch, "seo_keywords", in.SeoKeywords)

	if err := s.posts.Update(ctx, id, patch); err != nil {
		return nil, storeErr("update post", entityBlogPost, id, err)
	}
	return s.Get(ctx, id)
}

func (s *BlogService) Delete(ctx context.Context, id uint) error {
	return storeErr("delete post", entityBlogPost, id, s.posts.Delete(ctx, id))
}

func (s *BlogService) freeSlug(ctx context.Context, source string, selfID uint) (string, error) {
	slug := helper.MakeSlug(source)
	if slug == "" {
		return "", invalid("title", "must contain letters or digits")
	}
	scopes := []repository.Scope{equals("slug", slug)}
	if selfID != 0 {
		scopes = append(scopes, repository.Where("id <> ?", selfID))
	}
	taken, err := s.posts.Exists(ctx, scopes...)
	if err != nil {
		return "", storeErr("check slug", entityBlogPost, slug, err)
	}
	if taken {
		return "", &ConflictError{Field: "slug", Message: "A post with this slug already exists"}
	}
	return slug, nil
}

package service

import (
	"context"
	"strconv"
	"strings"

	"tourhub/constants"
	"tourhub/model"
	"tourhub/repository"

	"gorm.io/gorm"
)

// window clamps page and limit and returns the row offset.
// page < 1 becomes 1, limit < 1 becomes def, limit is capped at MAX_PAGE_LIMIT.
func window(page, limit, def int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = def
	}
	if limit > constants.MAX_PAGE_LIMIT {
		limit = constants.MAX_PAGE_LIMIT
	}
	return page, limit, (page - 1) * limit
}

// paginate counts the rows matching q and loads one page of them.
func paginate[T any](ctx context.Context, repo repository.Repository[T], entity string, q repository.Query, p model.Pagination, def int) (model.Page[T], error) {
	page, limit, offset := window(p.Page, p.Limit, def)

	total, err := repo.Count(ctx, q.Scopes...)
	if err != nil {
		return model.Page[T]{}, storeErr("count", entity, nil, err)
	}

	q.Offset = offset
	q.Limit = limit
	items, err := repo.Find(ctx, q)
	if err != nil {
		return model.Page[T]{}, storeErr("list", entity, nil, err)
	}
	return model.NewPage(items, total, page, limit), nil
}

func equals(column string, value any) repository.Scope {
	return repository.Where(column+" = ?", value)
}

// containsAny matches rows where any column contains term, case-insensitively.
func containsAny(term string, columns ...string) repository.Scope {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(term))) + "%"
	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		clauses[i] = "LOWER(" + c + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return repository.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func atLeast(column string, v any) repository.Scope {
	return repository.Where(column+" >= ?", v)
}

func atMost(column string, v any) repository.Scope {
	return repository.Where(column+" <= ?", v)
}

// orderBy resolves a client sort key against the allowed set, falling back to def.
func orderBy(sorts map[string]string, key, def string) string {
	if o, ok := sorts[key]; ok {
		return o
	}
	return sorts[def]
}

const (
	sortNewest    = "newest"
	sortPriceAsc  = "price-asc"
	sortPriceDesc = "price-desc"
	sortTitle     = "title"
)

var tourSorts = map[string]string{
	sortNewest:    "created_at DESC, id DESC",
	sortPriceAsc:  "base_price ASC, id ASC",
	sortPriceDesc: "base_price DESC, id DESC",
	sortTitle:     "title ASC, id ASC",
}

const (
	newestFirst    = "created_at DESC, id DESC"
	latestPublish  = "published_at DESC, id DESC"
	categoryOrder  = "display_order ASC, name ASC"
	subscribeOrder = "subscribed_at DESC, id DESC"
)

// tourScopes turns a storefront filter into query scopes.
func tourScopes(f model.TourFilter) []repository.Scope {
	var scopes []repository.Scope
	if !f.IncludeInactive {
		scopes = append(scopes, equals("is_active", true))
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		scopes = append(scopes, byCategory(c))
	}
	if f.Location != "" {
		scopes = append(scopes, containsAny(f.Location, "location_city"))
	}
	if f.Search != "" {
		scopes = append(scopes, containsAny(f.Search, "title", "description", "location_city"))
	}
	if f.OnSale {
		scopes = append(scopes, equals("is_on_sale", true))
	}
	if f.Featured {
		scopes = append(scopes, equals("is_featured", true))
	}
	if f.MinPrice != nil {
		scopes = append(scopes, atLeast("base_price", *f.MinPrice))
	}
	if f.MaxPrice != nil {
		scopes = append(scopes, atMost("base_price", *f.MaxPrice))
	}
	return scopes
}

// byCategory accepts a category id or slug.
func byCategory(ref string) repository.Scope {
	if id, ok := parseID(ref); ok {
		return equals("category_id", id)
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("category_id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Model(&model.Category{}).Select("id").Where("slug = ?", ref))
	}
}

func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

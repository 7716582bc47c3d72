package repository

import (
	"context"

	"gorm.io/gorm"
)

// Scope narrows a query. Scopes passed together are combined with AND.
type Scope func(*gorm.DB) *gorm.DB

// Query describes a read: filter scopes, ordering, window and eager loads.
type Query struct {
	Scopes   []Scope
	Order    string
	Offset   int
	Limit    int
	Preloads []string
	Omit     []string
}

// Repository is the persistence contract the services are written against.
type Repository[T any] interface {
	FindOne(ctx context.Context, q Query) (*T, error)
	FindByID(ctx context.Context, id uint, preloads ...string) (*T, error)
	Find(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, scopes ...Scope) (int64, error)
	Exists(ctx context.Context, scopes ...Scope) (bool, error)
	Insert(ctx context.Context, doc *T) error
	Update(ctx context.Context, id uint, patch map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type GormRepository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func Where(query string, args ...any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

func ByID(id uint) Scope {
	return Where("id = ?", id)
}

func (r *GormRepository[T]) apply(ctx context.Context, q Query) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(new(T))
	for _, s := range q.Scopes {
		tx = s(tx)
	}
	for _, p := range q.Preloads {
		tx = tx.Preload(p)
	}
	if len(q.Omit) > 0 {
		tx = tx.Omit(q.Omit...)
	}
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx
}

func (r *GormRepository[T]) FindOne(ctx context.Context, q Query) (*T, error) {
	var out T
	if err := r.apply(ctx, q).Take(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *GormRepository[T]) FindByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	return r.FindOne(ctx, Query{Scopes: []Scope{ByID(id)}, Preloads: preloads})
}

func (r *GormRepository[T]) Find(ctx context.Context, q Query) ([]T, error) {
	var out []T
	if err := r.apply(ctx, q).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *GormRepository[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var n int64
	if err := r.apply(ctx, Query{Scopes: scopes}).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (r *GormRepository[T]) Exists(ctx context.Context, scopes ...Scope) (bool, error) {
	n, err := r.Count(ctx, scopes...)
	return n > 0, err
}

func (r *GormRepository[T]) Insert(ctx context.Context, doc *T) error {
	return translate(r.db.WithContext(ctx).Create(doc).Error)
}

// Update applies patch (column name to value) to the row with the given id.
func (r *GormRepository[T]) Update(ctx context.Context, id uint, patch map[string]any) error {
	if len(patch) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

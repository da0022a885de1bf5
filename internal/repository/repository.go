package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository is a generic CRUD adapter over the entity store. Lookup
// conditions are plain SQL fragments with bind arguments ("email = ?").
// Absent rows come back as (nil, nil); every storage fault is returned
// to the caller, conversion to a service status happens one layer up.
type Repository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// New builds a repository for one entity type. The preload list names the
// associations eager-loaded by GetAll, GetOne and GetByID.
func New[T any](db *gorm.DB, preloads ...string) *Repository[T] {
	return &Repository[T]{db: db, preloads: preloads}
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// Create inserts the entity and returns it with the generated id.
func (r *Repository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.query(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetOne returns the first entity matching the condition, or nil.
func (r *Repository[T]) GetOne(ctx context.Context, cond string, args ...any) (*T, error) {
	var entity T
	err := r.query(ctx).Where(cond, args...).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.query(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *Repository[T]) Exists(ctx context.Context, cond string, args ...any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(new(T)).
		Where(cond, args...).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update overwrites all scalar fields of the entity with the given id.
// Associations are left to the caller. Returns nil when the id is absent.
func (r *Repository[T]) Update(ctx context.Context, id uint, entity *T) (*T, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(entity).Error; err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes the first entity matching the condition. Returns false
// when nothing matched.
func (r *Repository[T]) Delete(ctx context.Context, cond string, args ...any) (bool, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(cond, args...).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := r.db.WithContext(ctx).Delete(&entity).Error; err != nil {
		return false, err
	}
	return true, nil
}

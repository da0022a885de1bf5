package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nordkitchen/foodtruck-manager/internal/audit"
	"github.com/nordkitchen/foodtruck-manager/internal/cache"
	"github.com/nordkitchen/foodtruck-manager/internal/dto"
	"github.com/nordkitchen/foodtruck-manager/internal/models"
	"github.com/nordkitchen/foodtruck-manager/internal/repository"
)

// ProductService implements the product catalog lifecycle. Ingredients are
// always resolved by name against the store; names that resolve to nothing
// are skipped with a warning instead of entering the association set.
type ProductService struct {
	products    *repository.Repository[models.Product]
	ingredients *repository.Repository[models.Ingredient]
	db          *gorm.DB

	cache *cache.Cache
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewProductService(
	products *repository.Repository[models.Product],
	ingredients *repository.Repository[models.Ingredient],
	db *gorm.DB,
	c *cache.Cache,
	auditor *audit.Dispatcher,
	log zerolog.Logger,
) *ProductService {
	return &ProductService{
		products:    products,
		ingredients: ingredients,
		db:          db,
		cache:       c,
		audit:       auditor,
		log:         log,
	}
}

type CreateProductInput struct {
	Name        string
	Price       float64
	Ingredients []string
	CategoryID  uint
}

func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) Status {
	exists, err := s.products.Exists(ctx, "name = ?", in.Name)
	if err != nil {
		return s.fail("create product", err)
	}
	if exists {
		return StatusAlreadyExists
	}

	resolved, err := s.resolveIngredients(ctx, in.Ingredients)
	if err != nil {
		return s.fail("create product", err)
	}

	product, err := s.products.Create(ctx, &models.Product{
		Name:        in.Name,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Ingredients: resolved,
	})
	if err != nil {
		return s.fail("create product", err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "product_created",
		Entity:   "product",
		EntityID: &product.ID,
		Metadata: map[string]string{"name": product.Name},
	})
	s.cache.Invalidate(ctx, cache.KeyProducts)

	return StatusSuccess
}

// resolveIngredients maps names onto stored ingredient rows, dropping
// names the store does not know.
func (s *ProductService) resolveIngredients(ctx context.Context, names []string) ([]models.Ingredient, error) {
	resolved := make([]models.Ingredient, 0, len(names))
	for _, name := range names {
		ingredient, err := s.ingredients.GetOne(ctx, "name = ?", name)
		if err != nil {
			return nil, err
		}
		if ingredient == nil {
			s.log.Warn().Str("ingredient", name).Msg("unknown ingredient skipped")
			continue
		}
		resolved = append(resolved, *ingredient)
	}
	return resolved, nil
}

// GetAllProducts returns the flattened read model for the whole catalog,
// served from the cache when one is configured.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]dto.ProductRow, error) {
	var rows []dto.ProductRow
	if s.cache.GetList(ctx, cache.KeyProducts, &rows) {
		return rows, nil
	}

	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	rows = make([]dto.ProductRow, 0, len(products))
	for _, p := range products {
		names := make([]string, 0, len(p.Ingredients))
		for _, ing := range p.Ingredients {
			names = append(names, ing.Name)
		}
		rows = append(rows, dto.ProductRow{
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category.Name,
			Ingredients: names,
		})
	}

	s.cache.SetList(ctx, cache.KeyProducts, rows)
	return rows, nil
}

// UpdateProduct replaces the scalar fields and the whole ingredient
// association set of the product found by oldName.
func (s *ProductService) UpdateProduct(ctx context.Context, oldName, newName string, newPrice float64, newIngredients []string, newCategoryID uint) Status {
	if newName != oldName {
		taken, err := s.products.Exists(ctx, "name = ?", newName)
		if err != nil {
			return s.fail("update product", err)
		}
		if taken {
			return StatusAlreadyExists
		}
	}

	product, err := s.products.GetOne(ctx, "name = ?", oldName)
	if err != nil {
		return s.fail("update product", err)
	}
	if product == nil {
		return s.fail("update product", fmt.Errorf("no product named %q", oldName))
	}

	resolved, err := s.resolveIngredients(ctx, newIngredients)
	if err != nil {
		return s.fail("update product", err)
	}

	updated, err := s.products.Update(ctx, product.ID, &models.Product{
		Name:       newName,
		Price:      newPrice,
		CategoryID: newCategoryID,
	})
	if err != nil || updated == nil {
		return s.fail("update product", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Product{ID: product.ID}).
		Association("Ingredients").
		Replace(resolved); err != nil {
		return s.fail("update product", err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "product_updated",
		Entity:   "product",
		EntityID: &product.ID,
		Metadata: map[string]string{"old_name": oldName, "new_name": newName},
	})
	s.cache.Invalidate(ctx, cache.KeyProducts)

	return StatusUpdated
}

func (s *ProductService) DeleteProduct(ctx context.Context, name string) Status {
	product, err := s.products.GetOne(ctx, "name = ?", name)
	if err != nil {
		return s.fail("delete product", err)
	}
	if product == nil {
		return StatusNotFound
	}

	// drop the join rows first, sqlite does not cascade them for us
	if err := s.db.WithContext(ctx).
		Model(&models.Product{ID: product.ID}).
		Association("Ingredients").
		Clear(); err != nil {
		return s.fail("delete product", err)
	}

	deleted, err := s.products.Delete(ctx, "name = ?", name)
	if err != nil || !deleted {
		return s.fail("delete product", err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "product_deleted",
		Entity:   "product",
		Metadata: map[string]string{"name": name},
	})
	s.cache.Invalidate(ctx, cache.KeyProducts)

	return StatusDeleted
}

// GetAllIngredients returns every ingredient re-wrapped with only its
// name, ids stay internal to the store.
func (s *ProductService) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ingredients, err := s.ingredients.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}

	out := make([]models.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, models.Ingredient{Name: ing.Name})
	}
	return out, nil
}

func (s *ProductService) fail(op string, err error) Status {
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("product operation failed")
	} else {
		s.log.Error().Str("op", op).Msg("product operation failed")
	}
	return StatusFailed
}

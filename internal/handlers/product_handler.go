package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nordkitchen/foodtruck-manager/internal/dto"
	"github.com/nordkitchen/foodtruck-manager/internal/httperr"
	"github.com/nordkitchen/foodtruck-manager/internal/httpresp"
	"github.com/nordkitchen/foodtruck-manager/internal/service"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	CategoryID  uint     `json:"category_id" binding:"required,min=1,max=3"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	CategoryID  uint     `json:"category_id" binding:"required,min=1,max=3"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	rows, err := h.products.GetAllProducts(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_products", "could not load products")
		return
	}
	httpresp.List[dto.ProductRow](c, rows)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status := h.products.CreateProduct(c.Request.Context(), service.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Ingredients: req.Ingredients,
		CategoryID:  req.CategoryID,
	})
	writeStatus(c, status, "product")
}

func (h *ProductHandler) Update(c *gin.Context) {
	oldName := c.Param("name")

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status := h.products.UpdateProduct(
		c.Request.Context(),
		oldName,
		req.Name,
		req.Price,
		req.Ingredients,
		req.CategoryID,
	)
	writeStatus(c, status, "product")
}

func (h *ProductHandler) Delete(c *gin.Context) {
	name := c.Param("name")

	status := h.products.DeleteProduct(c.Request.Context(), name)
	writeStatus(c, status, "product")
}

func (h *ProductHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.products.GetAllIngredients(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_ingredients", "could not load ingredients")
		return
	}

	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.Name)
	}
	httpresp.List[string](c, names)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Title       string   `json:"title"      validate:"required,max=200"`
	Description string   `json:"desc"       validate:"required"`
	Image       string   `json:"img"        validate:"required"`
	Categories  []string `json:"categories" validate:"omitempty,dive,required"`
	Size        string   `json:"size"`
	Color       string   `json:"color"`
	Price       float64  `json:"price"      validate:"required,gt=0"`
	InStock     *bool    `json:"inStock"`
}

type updateProductRequest struct {
	Title       *string   `json:"title"      validate:"omitempty,min=1,max=200"`
	Description *string   `json:"desc"       validate:"omitempty,min=1"`
	Image       *string   `json:"img"        validate:"omitempty,min=1"`
	Categories  *[]string `json:"categories" validate:"omitempty,dive,required"`
	Size        *string   `json:"size"`
	Color       *string   `json:"color"`
	Price       *float64  `json:"price"      validate:"omitempty,gt=0"`
	InStock     *bool     `json:"inStock"`
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product"
// @Success      201   {object}  envelope.SuccessBody{data=domain.Product}
// @Failure      403   {object}  envelope.ErrorBody
// @Failure      422   {object}  envelope.FailBody
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	p, err := h.service.Create(c.Request().Context(), domain.Product{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Categories:  req.Categories,
		Size:        req.Size,
		Color:       req.Color,
		Price:       req.Price,
		InStock:     inStock,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "Product created", p)
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        new       query     bool    false  "Only the newest product"
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {object}  envelope.SuccessBody{data=[]domain.Product}
// @Failure      401       {object}  envelope.ErrorBody
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	newest, _ := strconv.ParseBool(c.QueryParam("new"))
	products, err := h.service.List(c.Request().Context(), ports.ListProductsInput{
		Newest:   newest,
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Products", products)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  envelope.SuccessBody{data=domain.Product}
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Product", p)
}

// Update handles PUT /api/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  envelope.SuccessBody{data=domain.Product}
// @Failure      404   {object}  envelope.ErrorBody
// @Failure      422   {object}  envelope.FailBody
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.ProductPatch{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Categories:  req.Categories,
		Size:        req.Size,
		Color:       req.Color,
		Price:       req.Price,
		InStock:     req.InStock,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Product updated", p)
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  envelope.SuccessBody
// @Failure      404  {object}  envelope.ErrorBody
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Product deleted", nil)
}

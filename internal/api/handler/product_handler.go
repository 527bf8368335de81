package handler

import (
	"Emporium/internal/api/dto"
	"Emporium/internal/pkg/response"
	"Emporium/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productSvc service.ProductService
}

func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{
		productSvc: productSvc,
	}
}

func (s *ProductHandler) ListProducts(c *gin.Context) {
	var listDTO dto.ProductListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.productSvc.ListProducts(c.Request.Context(), &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *ProductHandler) GetProduct(c *gin.Context) {
	productIDStr := c.Param("product_id")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	product, err := s.productSvc.GetProduct(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

func (s *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.productSvc.CreateProduct(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProductHandler) UpdateProduct(c *gin.Context) {
	productIDStr := c.Param("product_id")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ProductBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.productSvc.UpdateProduct(c.Request.Context(), productID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ProductHandler) DeleteProduct(c *gin.Context) {
	productIDStr := c.Param("product_id")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.productSvc.DeleteProduct(c.Request.Context(), productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

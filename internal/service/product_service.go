package service

import (
	"Emporium/internal/api/dto"
	"Emporium/internal/model"
	"Emporium/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type ProductService interface {
	CreateProduct(ctx context.Context, productDTO *dto.ProductBaseDTO) error
	GetProduct(ctx context.Context, productID uint64) (*dto.ProductDTO, error)
	ListProducts(ctx context.Context, listDTO *dto.ProductListDTO) (*dto.ProductPageDTO, error)
	UpdateProduct(ctx context.Context, productID uint64, productDTO *dto.ProductBaseDTO) error
	DeleteProduct(ctx context.Context, productID uint64) error
}

type productServiceImpl struct {
	productRepo repository.ProductRepo
}

func NewProductService(productRepo repository.ProductRepo) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
	}
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, productDTO *dto.ProductBaseDTO) error {
	product := &model.Product{
		CategoryID:  productDTO.CategoryID,
		BrandID:     productDTO.BrandID,
		Name:        productDTO.Name,
		Description: productDTO.Description,
		PriceCents:  productDTO.PriceCents,
		IsActive:    true,
	}
	if productDTO.Currency != "" {
		product.Currency = productDTO.Currency
	}
	return s.productRepo.CreateProduct(ctx, product)
}

func (s *productServiceImpl) GetProduct(ctx context.Context, productID uint64) (*dto.ProductDTO, error) {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return toProductDTO(product), nil
}

func (s *productServiceImpl) ListProducts(ctx context.Context, listDTO *dto.ProductListDTO) (*dto.ProductPageDTO, error) {
	products, total, err := s.productRepo.ListProducts(ctx, repository.ProductQuery{
		CategoryID: listDTO.CategoryID,
		MinCents:   listDTO.MinCents,
		MaxCents:   listDTO.MaxCents,
		Page:       listDTO.Page,
		PageSize:   listDTO.PageSize,
	})
	if err != nil {
		return nil, err
	}

	list := make([]*dto.ProductDTO, 0, len(products))
	for _, p := range products {
		list = append(list, toProductDTO(p))
	}
	return &dto.ProductPageDTO{
		List:  list,
		Total: total,
		Page:  listDTO.Page,
	}, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, productID uint64, productDTO *dto.ProductBaseDTO) error {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	update := &model.Product{
		ID:          productID,
		CategoryID:  productDTO.CategoryID,
		BrandID:     productDTO.BrandID,
		Name:        productDTO.Name,
		Description: productDTO.Description,
		PriceCents:  productDTO.PriceCents,
	}
	if productDTO.Currency != "" {
		update.Currency = productDTO.Currency
	}
	return s.productRepo.UpdateProduct(ctx, update)
}

// DeleteProduct 下架而非物理删除，保证推荐侧与订单侧引用安全
func (s *productServiceImpl) DeleteProduct(ctx context.Context, productID uint64) error {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.DeactivateProduct(ctx, productID)
}

func toProductDTO(product *model.Product) *dto.ProductDTO {
	var productDTO dto.ProductDTO
	_ = copier.Copy(&productDTO, product)
	productDTO.CreatedAt = product.CreatedAt.Format(time.RFC3339)
	return &productDTO
}

package producthandler

import (
	"github.com/shopspring/decimal"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/pkg/types"
	"github.com/xw1nchester/hisba-backend/pkg/utils"
)

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Image       string          `json:"image" validate:"omitempty,max=255"`
}

func (pr CreateProductRequest) ToDomain() product.Product {
	return product.Product{
		Name:        pr.Name,
		Description: pr.Description,
		Price:       pr.Price.Round(2),
		Quantity:    pr.Quantity,
		Image:       pr.Image,
	}
}

type AdminCreateProductRequest struct {
	CreateProductRequest
	StoreID    types.IntOrString `json:"storeId" validate:"required,gt=0"`
	IsApproved bool              `json:"isApproved"`
}

func (pr AdminCreateProductRequest) ToDomain() product.Product {
	p := pr.CreateProductRequest.ToDomain()
	p.StoreID = int(pr.StoreID)
	p.IsApproved = pr.IsApproved
	return p
}

type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity" validate:"omitempty,gte=0"`
	Image       *string          `json:"image" validate:"omitempty,max=255"`
}

func (ur UpdateProductRequest) ToDomain() product.Update {
	update := product.Update{
		Name:        ur.Name,
		Description: ur.Description,
		Quantity:    ur.Quantity,
		Image:       ur.Image,
	}

	if ur.Price != nil {
		price := ur.Price.Round(2)
		update.Price = &price
	}

	return update
}

type ProductResponse struct {
	Product product.Product `json:"product"`
}

func NewProductResponse(p product.Product, staticURL string) ProductResponse {
	p.Image = utils.MediaURL(staticURL, p.Image)
	return ProductResponse{Product: p}
}

type ProductsResponse struct {
	Products []product.Product `json:"products"`
}

func NewProductsResponse(products []product.Product, staticURL string) ProductsResponse {
	for i := range products {
		products[i].Image = utils.MediaURL(staticURL, products[i].Image)
	}
	return ProductsResponse{Products: products}
}

type PopularProductsResponse struct {
	Products []product.Popular `json:"products"`
}

func NewPopularProductsResponse(products []product.Popular, staticURL string) PopularProductsResponse {
	for i := range products {
		products[i].Image = utils.MediaURL(staticURL, products[i].Image)
	}
	return PopularProductsResponse{Products: products}
}

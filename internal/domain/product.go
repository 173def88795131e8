package domain

// Product 商品；Stock 是购物车/订单竞争的资源
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Stock       int     `gorm:"not null"`
	IsDeleted   bool    `gorm:"not null;default:false"`
}

func (Product) TableName() string { return "products" }

// ProductDTO 对外字段名沿用既有 API 契约
type ProductDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"productName"`
	Description string  `json:"productDescription"`
	Price       float64 `json:"productPrice"`
	Stock       int     `json:"productStock"`
	IsDeleted   bool    `json:"is_deleted_product"`
}

func (p *Product) DTO() ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		IsDeleted:   p.IsDeleted,
	}
}

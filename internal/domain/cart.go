package domain

// CartItem 购物车行：每个 (user, product) 最多一行，加购走 upsert
type CartItem struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:uniq_user_product"`
	ProductID uint `gorm:"not null;uniqueIndex:uniq_user_product"`
	Quantity  int  `gorm:"not null"`
}

func (CartItem) TableName() string { return "cart_items" }

// CartLineDTO 购物车读模型（联商品表得到名称与单价）
type CartLineDTO struct {
	ProductID  uint    `json:"productId"`
	Name       string  `json:"productName"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

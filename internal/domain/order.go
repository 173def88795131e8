package domain

import "time"

// 订单状态：固定枚举，不做状态机约束（业务策略未定）
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted:
		return true
	}
	return false
}

type Order struct {
	ID         uint    `gorm:"primaryKey"`
	UserID     uint    `gorm:"not null;index"`
	TotalPrice float64 `gorm:"not null"`
	Status     string  `gorm:"size:20;not null;default:pending"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsDeleted  bool        `gorm:"not null;default:false"`
	Items      []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 下单时的价格快照，创建后不可变
type OrderItem struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null;index"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
}

func (OrderItem) TableName() string { return "order_items" }

type OrderItemDTO struct {
	ID        uint    `json:"id"`
	OrderID   uint    `json:"orderId"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (i *OrderItem) DTO() OrderItemDTO {
	return OrderItemDTO{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
}

type OrderDTO struct {
	ID         uint           `json:"id"`
	UserID     uint           `json:"userId"`
	TotalPrice float64        `json:"totalPrice"`
	Status     string         `json:"status"`
	CreatedAt  *string        `json:"createdAt"`
	UpdatedAt  *string        `json:"updatedAt"`
	IsDeleted  bool           `json:"isDeletedOrder"`
	Items      []OrderItemDTO `json:"items"`
}

const orderTimeLayout = "2006-01-02 15:04:05"

func (o *Order) DTO() OrderDTO {
	d := OrderDTO{
		ID:         o.ID,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		Status:     o.Status,
		IsDeleted:  o.IsDeleted,
		Items:      make([]OrderItemDTO, 0, len(o.Items)),
	}
	if !o.CreatedAt.IsZero() {
		s := o.CreatedAt.Format(orderTimeLayout)
		d.CreatedAt = &s
	}
	if !o.UpdatedAt.IsZero() {
		s := o.UpdatedAt.Format(orderTimeLayout)
		d.UpdatedAt = &s
	}
	for i := range o.Items {
		d.Items = append(d.Items, o.Items[i].DTO())
	}
	return d
}

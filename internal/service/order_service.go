package service

import (
	"fmt"

	"gorm.io/gorm"

	"jade-commerce/internal/core/apperr"
	"jade-commerce/internal/domain"
	"jade-commerce/internal/repo"
	"jade-commerce/pkg/pagination"
)

// OrderService 下单工作流：先全量校验，再在同一事务里扣库存、落订单
type OrderService struct {
	db       *gorm.DB
	orders   *repo.OrderRepo
	products *repo.ProductRepo
	carts    *repo.CartRepo
}

func NewOrderService(db *gorm.DB, orders *repo.OrderRepo, products *repo.ProductRepo, carts *repo.CartRepo) *OrderService {
	return &OrderService{db: db, orders: orders, products: products, carts: carts}
}

// OrderLineInput 直购行：{productId, quantity}
type OrderLineInput struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type OrderPage struct {
	Orders      []domain.OrderDTO
	Total       int64
	Pages       int
	CurrentPage int
}

func (s *OrderService) List(page, perPage int, userID uint) (*OrderPage, error) {
	return s.list(page, perPage, userID, false)
}

// ListAdmin 后台视角：含软删订单
func (s *OrderService) ListAdmin(page, perPage int, userID uint) (*OrderPage, error) {
	return s.list(page, perPage, userID, true)
}

func (s *OrderService) list(page, perPage int, userID uint, withDeleted bool) (*OrderPage, error) {
	p := pagination.Normalize(page, perPage)
	orders, total, err := s.orders.List(p.Offset(), p.PerPage, userID, withDeleted)
	if err != nil {
		return nil, apperr.Internal("list orders failed", err)
	}
	out := &OrderPage{
		Orders:      make([]domain.OrderDTO, 0, len(orders)),
		Total:       total,
		Pages:       pagination.Pages(total, p.PerPage),
		CurrentPage: p.Page,
	}
	for i := range orders {
		out.Orders = append(out.Orders, orders[i].DTO())
	}
	return out, nil
}

// Create 两条路径二选一：items 直购，或 cartItemIds 从购物车结算。
// 校验全部通过前不产生任何写入；之后的扣减、订单与明细落库、
// 购物车行删除在同一事务内提交，任一失败整体回滚。
func (s *OrderService) Create(userID uint, items []OrderLineInput, cartItemIDs []uint) (*domain.Order, error) {
	if userID == 0 {
		return nil, apperr.BadRequest("Missing userId")
	}
	if len(items) == 0 && len(cartItemIDs) == 0 {
		return nil, apperr.BadRequest("Invalid items format")
	}

	var order *domain.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if len(items) > 0 {
			order, err = s.createFromItems(tx, userID, items)
		} else {
			order, err = s.createFromCart(tx, userID, cartItemIDs)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// createFromItems 行锁下校验每行，再统一扣减；unit_price 取校验时价格快照。
// 同一商品出现多行时共用一次加载的实例，校验按累计量算，
// 否则重复行各自对全量库存校验会放过超卖
func (s *OrderService) createFromItems(tx *gorm.DB, userID uint, items []OrderLineInput) (*domain.Order, error) {
	products := s.products.WithTx(tx)

	type pendingLine struct {
		product *domain.Product
		qty     int
	}
	var (
		total   float64
		pending []pendingLine
		loaded  = map[uint]*domain.Product{}
		wanted  = map[uint]int{}
	)
	for _, in := range items {
		product, ok := loaded[in.ProductID]
		if !ok {
			p, err := products.FindForUpdate(in.ProductID)
			if err != nil {
				return nil, apperr.Internal("db error", err)
			}
			if p == nil {
				return nil, apperr.NotFound(fmt.Sprintf("Product with ID %d not found", in.ProductID))
			}
			product = p
			loaded[in.ProductID] = p
		}
		if in.Quantity <= 0 {
			return nil, apperr.BadRequest("Quantity must be greater than 0")
		}
		wanted[in.ProductID] += in.Quantity
		if wanted[in.ProductID] > product.Stock {
			return nil, apperr.InsufficientStock(fmt.Sprintf("Insufficient stock for product ID %d", in.ProductID))
		}
		total += product.Price * float64(in.Quantity)
		pending = append(pending, pendingLine{product: product, qty: in.Quantity})
	}

	order := &domain.Order{
		UserID:     userID,
		TotalPrice: total,
		Status:     domain.OrderStatusPending,
		Items:      make([]domain.OrderItem, 0, len(pending)),
	}
	for _, l := range pending {
		l.product.Stock -= l.qty
		if err := products.Save(l.product); err != nil {
			return nil, apperr.Internal("decrement stock failed", err)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: l.product.ID,
			Quantity:  l.qty,
			UnitPrice: l.product.Price,
		})
	}
	if err := s.orders.WithTx(tx).Create(order); err != nil {
		return nil, apperr.Internal("create order failed", err)
	}
	return order, nil
}

// createFromCart 库存已在加购时预占，这里不再扣减；
// 结算消费的购物车行随订单同事务删除
func (s *OrderService) createFromCart(tx *gorm.DB, userID uint, ids []uint) (*domain.Order, error) {
	carts := s.carts.WithTx(tx)
	products := s.products.WithTx(tx)

	lines, err := carts.FindByIDs(userID, ids)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if len(lines) != len(ids) {
		return nil, apperr.NotFound("No valid items found in cart")
	}

	var total float64
	order := &domain.Order{
		UserID: userID,
		Status: domain.OrderStatusPending,
		Items:  make([]domain.OrderItem, 0, len(lines)),
	}
	for i := range lines {
		product, err := products.FindByID(lines[i].ProductID)
		if err != nil {
			return nil, apperr.Internal("db error", err)
		}
		if product == nil {
			return nil, apperr.NotFound(fmt.Sprintf("Product with ID %d not found", lines[i].ProductID))
		}
		if lines[i].Quantity <= 0 {
			return nil, apperr.BadRequest("Quantity must be greater than 0")
		}
		total += product.Price * float64(lines[i].Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: product.ID,
			Quantity:  lines[i].Quantity,
			UnitPrice: product.Price,
		})
	}
	order.TotalPrice = total
	if err := s.orders.WithTx(tx).Create(order); err != nil {
		return nil, apperr.Internal("create order failed", err)
	}
	for i := range lines {
		if err := carts.Delete(&lines[i]); err != nil {
			return nil, apperr.Internal("consume cart failed", err)
		}
	}
	return order, nil
}

func (s *OrderService) Get(id uint) (*domain.Order, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if o == nil {
		return nil, apperr.NotFound("Order not found")
	}
	return o, nil
}

// UpdateStatus 只校验枚举值，不限制跃迁方向
func (s *OrderService) UpdateStatus(id uint, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, apperr.BadRequest("Invalid status")
	}
	o, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	if err := s.orders.Save(o); err != nil {
		return nil, apperr.Internal("update order failed", err)
	}
	return o, nil
}

func (s *OrderService) Delete(id uint) (*domain.Order, error) {
	o, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	o.IsDeleted = true
	if err := s.orders.Save(o); err != nil {
		return nil, apperr.Internal("delete order failed", err)
	}
	return o, nil
}

package repo

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jade-commerce/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) WithTx(tx *gorm.DB) *OrderRepo { return &OrderRepo{db: tx} }

func (r *OrderRepo) Create(o *domain.Order) error { return r.db.Create(o).Error }

func (r *OrderRepo) FindByID(id uint) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Preload("Items").First(&o, "id = ? AND is_deleted = ?", id, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

// List userID 为 0 时不按用户过滤
func (r *OrderRepo) List(offset, limit int, userID uint, withDeleted bool) ([]domain.Order, int64, error) {
	q := r.db.Model(&domain.Order{})
	if !withDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []domain.Order
	if err := q.Preload("Items").Order("id").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Save 只写订单本身；明细创建后不可变，不随保存联动
func (r *OrderRepo) Save(o *domain.Order) error {
	return r.db.Omit(clause.Associations).Save(o).Error
}

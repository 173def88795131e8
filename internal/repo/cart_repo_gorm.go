package repo

import (
	"errors"

	"gorm.io/gorm"

	"jade-commerce/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) WithTx(tx *gorm.DB) *CartRepo { return &CartRepo{db: tx} }

func (r *CartRepo) Find(userID, productID uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *CartRepo) FindByIDs(userID uint, ids []uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.Where("id IN ? AND user_id = ?", ids, userID).Find(&items).Error
	return items, err
}

func (r *CartRepo) ListByUser(userID uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

func (r *CartRepo) Create(item *domain.CartItem) error { return r.db.Create(item).Error }

func (r *CartRepo) Save(item *domain.CartItem) error { return r.db.Save(item).Error }

// Delete 购物车行是硬删除
func (r *CartRepo) Delete(item *domain.CartItem) error {
	return r.db.Delete(item).Error
}

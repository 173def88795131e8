package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jade-commerce/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) WithTx(tx *gorm.DB) *ProductRepo { return &ProductRepo{db: tx} }

func (r *ProductRepo) Create(p *domain.Product) error { return r.db.Create(p).Error }

func (r *ProductRepo) FindByID(id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ? AND is_deleted = ?", id, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

// FindForUpdate 行锁读：库存检查-扣减的临界区必须经由这里
func (r *ProductRepo) FindForUpdate(id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ? AND is_deleted = ?", id, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepo) List(offset, limit int, search string) ([]domain.Product, int64, error) {
	q := r.db.Model(&domain.Product{}).Where("is_deleted = ?", false)
	if s := strings.TrimSpace(search); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []domain.Product
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepo) Save(p *domain.Product) error { return r.db.Save(p).Error }

package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"jade-commerce/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) WithTx(tx *gorm.DB) *UserRepo { return &UserRepo{db: tx} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

// FindByID 只返回未软删的行；查不到返回 (nil, nil)
func (r *UserRepo) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ? AND is_deleted = ?", id, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

// FindByIDAny 含软删行（逻辑删除入口需要区分“不存在”和“已删”）
func (r *UserRepo) FindByIDAny(id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ? AND is_deleted = ?", email, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) ListAll() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Where("is_deleted = ?", false).Find(&users).Error
	return users, err
}

func (r *UserRepo) List(offset, limit int, search string) ([]domain.User, int64, error) {
	q := r.db.Model(&domain.User{}).Where("is_deleted = ?", false)
	if s := strings.TrimSpace(search); s != "" {
		q = q.Where("username LIKE ?", "%"+s+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListAdmin 后台列表：可模糊搜、可带软删行
func (r *UserRepo) ListAdmin(offset, limit int, q string, withDeleted bool) ([]domain.User, int64, error) {
	tx := r.db.Model(&domain.User{})
	if !withDeleted {
		tx = tx.Where("is_deleted = ?", false)
	}
	if s := strings.TrimSpace(q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("email LIKE ? OR username LIKE ?", like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := tx.Order("id DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) Save(u *domain.User) error { return r.db.Save(u).Error }

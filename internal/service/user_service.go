package service

import (
	"fmt"
	"strings"

	"jade-commerce/internal/core/apperr"
	"jade-commerce/internal/domain"
	"jade-commerce/internal/repo"
	"jade-commerce/pkg/pagination"
	"jade-commerce/pkg/utils"
)

type UserService struct {
	users *repo.UserRepo
}

func NewUserService(users *repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// UserPatch 部分更新：nil 字段保持原值
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
}

type UserPage struct {
	Users       []domain.UserDTO
	Total       int64
	Pages       int
	CurrentPage int
}

func (s *UserService) ListAll() ([]domain.UserDTO, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, apperr.Internal("list users failed", err)
	}
	out := make([]domain.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, users[i].DTO())
	}
	return out, nil
}

func (s *UserService) List(page, perPage int, search string) (*UserPage, error) {
	p := pagination.Normalize(page, perPage)
	users, total, err := s.users.List(p.Offset(), p.PerPage, search)
	if err != nil {
		return nil, apperr.Internal("list users failed", err)
	}
	out := &UserPage{
		Users:       make([]domain.UserDTO, 0, len(users)),
		Total:       total,
		Pages:       pagination.Pages(total, p.PerPage),
		CurrentPage: p.Page,
	}
	for i := range users {
		out.Users = append(out.Users, users[i].DTO())
	}
	return out, nil
}

// Authenticate 登录校验；未知邮箱与错口令同文案，避免账号探测
func (s *UserService) Authenticate(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if u == nil || !utils.CheckPassword(password, u.Password) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	return u, nil
}

// ListAdmin 后台列表：offset/limit 直给，可含软删行
func (s *UserService) ListAdmin(offset, limit int, q string, withDeleted bool) ([]domain.UserDTO, int64, error) {
	if limit <= 0 || limit > pagination.MaxPerPage {
		limit = 20
	}
	users, total, err := s.users.ListAdmin(offset, limit, q, withDeleted)
	if err != nil {
		return nil, 0, apperr.Internal("list users failed", err)
	}
	out := make([]domain.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, users[i].DTO())
	}
	return out, total, nil
}

func (s *UserService) Get(id uint) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

func (s *UserService) Create(username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperr.BadRequest("Missing username, email, or password")
	}
	u := &domain.User{
		Username: username,
		Email:    email,
		Password: utils.HashPassword(password),
		Role:     "user",
	}
	if err := s.users.Create(u); err != nil {
		if isDupKey(err) {
			return nil, apperr.Conflict("Username or email already exists")
		}
		return nil, apperr.Internal("create user failed", err)
	}
	return u, nil
}

// Update 只改提交了的字段；新口令重新走 bcrypt
func (s *UserService) Update(id uint, patch UserPatch) (*domain.User, error) {
	u, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		u.Password = utils.HashPassword(*patch.Password)
	}
	if err := s.users.Save(u); err != nil {
		if isDupKey(err) {
			return nil, apperr.Conflict("Username or email already exists")
		}
		return nil, apperr.Internal("update user failed", err)
	}
	return u, nil
}

// Delete 逻辑删除；重复删除视为 NotFound
func (s *UserService) Delete(id uint) (string, error) {
	u, err := s.users.FindByIDAny(id)
	if err != nil {
		return "", apperr.Internal("db error", err)
	}
	if u == nil || u.IsDeleted {
		return "", apperr.NotFound("User not found or already deleted")
	}
	u.IsDeleted = true
	if err := s.users.Save(u); err != nil {
		return "", apperr.Internal("delete user failed", err)
	}
	return fmt.Sprintf("User with id %d has been logically deleted.", id), nil
}

// isDupKey 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique")
}

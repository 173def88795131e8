package domain

// User 账号实体；Password 存 bcrypt 摘要，永不进响应
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:50;not null"`
	Email     string `gorm:"uniqueIndex;size:100;not null"`
	Password  string `gorm:"size:200;not null"`
	Role      string `gorm:"size:16;not null;default:user"` // "user"/"admin"
	IsDeleted bool   `gorm:"not null;default:false"`
}

func (User) TableName() string { return "users" }

// UserDTO 对外序列化（不含口令）
type UserDTO struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsDeleted bool   `json:"is_deleted"`
}

func (u *User) DTO() UserDTO {
	return UserDTO{ID: u.ID, Username: u.Username, Email: u.Email, IsDeleted: u.IsDeleted}
}

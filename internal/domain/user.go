package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleOfficer  Role = "officer"
	RoleAdmin    Role = "admin"
)

// ParseRole 在这里对角色字符串做一次大小写归一化，
// 其余地方一律用枚举值直接比较，不再各自做 ToLower
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, true
	case RoleEmployer:
		return RoleEmployer, true
	case RoleOfficer:
		return RoleOfficer, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized 返回去掉口令字段的副本，所有接口响应都只能返回这个副本
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	copied := *u
	copied.Password = ""
	return &copied
}

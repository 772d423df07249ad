package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/session"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/utils"
)

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取管理面板成功", map[string]any{
		"users": h.sanitizedUsers(),
	})
}

func (h *Handler) sanitizedUsers() []*domain.User {
	all := h.sessions.All()
	users := make([]*domain.User, 0, len(all))
	for _, user := range all {
		users = append(users, user.Sanitized())
	}
	return users
}

func (h *Handler) GetAllUserInfo(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取用户列表成功", h.sanitizedUsers())
}

// CreateUser 管理员添加用户，初始口令随机生成并随响应返回一次
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required"`
		Role  string `json:"role" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		h.badRequest(w, r, errors.New("无效的角色"))
		return
	}

	password := utils.GenerateRandomPassword(h.config.NewUser.PasswordLength)

	user := &domain.User{
		Email:    req.Email,
		Password: password,
		Name:     req.Name,
		Role:     role,
	}
	if err := h.sessions.CreateUser(user); err != nil {
		switch {
		case errors.Is(err, session.ErrEmailTaken):
			h.badRequest(w, r, errors.New("该邮箱已被注册"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "用户创建成功", map[string]any{
		"user":            user.Sanitized(),
		"initialPassword": password,
	})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.sessions.DeleteByID(userID); err != nil {
		switch {
		case errors.Is(err, session.ErrUserNotFound):
			h.errorResponse(w, r, "用户不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除用户成功", nil)
}

package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
)

type ContextKey string

var (
	CurrentUserCtx ContextKey = "currentUser"
)

// currentUser 只能在经过路由守卫的 handler 中调用
func (h *Handler) currentUser(r *http.Request) *domain.User {
	return r.Context().Value(CurrentUserCtx).(*domain.User)
}

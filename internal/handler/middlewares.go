package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/guard"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		// 与 metrics 中间件保持一致：handler 不显式 WriteHeader 时按 200 记
		rw := &ResponseWriter{ResponseWriter: w, StatusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// identity 从 cookie 中的 JWT 解析出当前用户，
// cookie 缺失、令牌无效或用户已被删除都视为未登录，不报错
func (h *Handler) identity(r *http.Request) *domain.User {
	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		return nil
	}

	claims := &AuthClaims{}
	if _, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.config.JWT.Secret), nil
	}); err != nil {
		return nil
	}

	user, err := h.sessions.FindByID(claims.Subject)
	if err != nil {
		return nil
	}

	return user
}

// guardView 把路由守卫的裁决落到 HTTP 层：
// 未登录跳转登录页，角色不符跳转首页，放行时把当前用户附在 context 中。
// 每次请求都重新求值，不做任何缓存
func (h *Handler) guardView(path string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := h.identity(r)

			switch h.registry.DecidePath(user, path) {
			case guard.RedirectLogin:
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			case guard.RedirectHome:
				http.Redirect(w, r, "/", http.StatusSeeOther)
			default:
				ctx := context.WithValue(r.Context(), CurrentUserCtx, user)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

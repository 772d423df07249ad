package handler

import "net/http"

// 公共视图只返回渲染所需的数据，不做任何权限判断

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "欢迎来到校园招聘平台", map[string]any{
		"companies": h.store.Companies(),
		"drives":    h.store.Drives(),
	})
}

func (h *Handler) LoginView(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "请登录", nil)
}

func (h *Handler) SignupView(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "请注册", nil)
}

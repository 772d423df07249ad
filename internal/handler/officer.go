package handler

import (
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
)

func (h *Handler) OfficerDashboard(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取就业指导面板成功", map[string]any{
		"companies": h.store.Companies(),
		"drives":    h.store.Drives(),
	})
}

func (h *Handler) OfficerDrives(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取宣讲会列表成功", h.store.Drives())
}

func (h *Handler) CreateDrive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Company  string    `json:"company" validate:"required"`
		Position string    `json:"position" validate:"required"`
		Location string    `json:"location" validate:"required"`
		Date     time.Time `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	drive := h.store.AddDrive(&domain.Drive{
		Company:  req.Company,
		Position: req.Position,
		Location: req.Location,
		Date:     req.Date,
	})

	h.successResponse(w, r, "宣讲会创建成功", drive)
}

// StudentMessages 列出学生通过提问入口发来的站内消息
func (h *Handler) StudentMessages(w http.ResponseWriter, r *http.Request) {
	messages := make([]*domain.Notification, 0)
	for _, notif := range h.store.Notifications() {
		if notif.Type == domain.NotificationMessage {
			messages = append(messages, notif)
		}
	}

	h.successResponse(w, r, "获取消息列表成功", messages)
}

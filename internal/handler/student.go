package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/store"
)

func (h *Handler) StudentDashboard(w http.ResponseWriter, r *http.Request) {
	me := h.currentUser(r)

	h.successResponse(w, r, "获取学生面板成功", map[string]any{
		"jobs":          h.store.Jobs(store.JobFilter{}),
		"drives":        h.store.Drives(),
		"applications":  h.store.ApplicationsByApplicant(me.ID),
		"notifications": h.store.Notifications(),
	})
}

func (h *Handler) StudentJobs(w http.ResponseWriter, r *http.Request) {
	filter := store.JobFilter{
		Location: r.URL.Query().Get("location"),
		Salary:   r.URL.Query().Get("salary"),
		Skill:    r.URL.Query().Get("skill"),
	}

	h.successResponse(w, r, "获取职位列表成功", h.store.Jobs(filter))
}

func (h *Handler) JobDetails(w http.ResponseWriter, r *http.Request) {
	jobIDParam := chi.URLParam(r, "id")
	jobID, err := strconv.ParseInt(jobIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "职位ID无效")
		return
	}

	job, err := h.store.JobByID(jobID)
	if err != nil {
		h.storeError(w, r, err, "职位不存在")
		return
	}

	h.successResponse(w, r, "获取职位详情成功", job)
}

func (h *Handler) ApplyToJob(w http.ResponseWriter, r *http.Request) {
	jobIDParam := chi.URLParam(r, "id")
	jobID, err := strconv.ParseInt(jobIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "职位ID无效")
		return
	}

	app, err := h.store.ApplyToJob(jobID, h.currentUser(r))
	if err != nil {
		h.storeError(w, r, err, "职位不存在")
		return
	}

	h.successResponse(w, r, "申请提交成功", app)
}

// SubmitApplication 处理完整的报名表单，既用于职位投递也用于宣讲会报名。
// 必填字段缺失时整个操作中止，不会产生半成品记录
func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AppliedFor  string `json:"appliedFor" validate:"required"`
		Company     string `json:"company"`
		JobID       int64  `json:"jobId"`
		FullName    string `json:"fullName" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Phone       string `json:"phone" validate:"required"`
		Resume      string `json:"resume"`
		CoverLetter string `json:"coverLetter"`
		Experience  string `json:"experience"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	app := h.store.AddApplication(&domain.Application{
		JobID:       req.JobID,
		AppliedFor:  req.AppliedFor,
		Company:     req.Company,
		ApplicantID: h.currentUser(r).ID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
		Experience:  req.Experience,
	})

	h.successResponse(w, r, "申请提交成功", app)
}

func (h *Handler) MyApplications(w http.ResponseWriter, r *http.Request) {
	me := h.currentUser(r)
	h.successResponse(w, r, "获取投递记录成功", h.store.ApplicationsByApplicant(me.ID))
}

func (h *Handler) StudentDrives(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取宣讲会列表成功", h.store.Drives())
}

func (h *Handler) StudentNotifications(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取通知列表成功", h.store.Notifications())
}

// OpenNotification 将通知标记为已读，
// 打开 celebration 类型的通知时额外点亮全屏庆祝页
func (h *Handler) OpenNotification(w http.ResponseWriter, r *http.Request) {
	notifIDParam := chi.URLParam(r, "id")
	notifID, err := strconv.ParseInt(notifIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "通知ID无效")
		return
	}

	notif, err := h.store.MarkNotificationAsRead(notifID)
	if err != nil {
		h.storeError(w, r, err, "通知不存在")
		return
	}

	if notif.Type == domain.NotificationCelebration {
		h.store.SetSelectedNotification(notif)
		h.store.SetShowCelebration(true)
	}

	h.successResponse(w, r, "通知已读", notif)
}

func (h *Handler) CelebrationState(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取庆祝页状态成功", map[string]any{
		"show":         h.store.ShowCelebration(),
		"notification": h.store.SelectedNotification(),
	})
}

func (h *Handler) DismissCelebration(w http.ResponseWriter, r *http.Request) {
	h.store.SetShowCelebration(false)
	h.store.SetSelectedNotification(nil)

	h.successResponse(w, r, "庆祝页已关闭", nil)
}

// AskGuidance 学生向老师或企业联系人提问，问题会作为一条 message 类型的通知投递
func (h *Handler) AskGuidance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Recipient     string `json:"recipient" validate:"required"`
		RecipientType string `json:"recipientType" validate:"required,oneof=officer employer"`
		Question      string `json:"question" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	me := h.currentUser(r)
	notif := h.store.AddNotification(&domain.Notification{
		Title:     fmt.Sprintf("来自学生 %s 的提问", me.Name),
		Message:   req.Question,
		Type:      domain.NotificationMessage,
		From:      me.Name,
		Recipient: req.Recipient,
	})

	h.successResponse(w, r, "问题发送成功", notif)
}

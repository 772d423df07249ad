package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
)

func (h *Handler) EmployerDashboard(w http.ResponseWriter, r *http.Request) {
	me := h.currentUser(r)

	h.successResponse(w, r, "获取企业面板成功", map[string]any{
		"jobs":       h.store.JobsByCompany(me.Name),
		"applicants": h.applicantsForCompany(me.Name),
	})
}

// PostJob 发布新职位，公司名取当前登录企业账号的名称
func (h *Handler) PostJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description" validate:"required"`
		Location    string   `json:"location" validate:"required"`
		Salary      string   `json:"salary" validate:"required"`
		Skills      []string `json:"skills"`
		JobType     string   `json:"jobType"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	job := h.store.AddJob(&domain.JobPosting{
		Title:       req.Title,
		Company:     h.currentUser(r).Name,
		Location:    req.Location,
		Salary:      req.Salary,
		Description: req.Description,
		Skills:      req.Skills,
		JobType:     req.JobType,
	})

	h.successResponse(w, r, "职位发布成功", job)
}

func (h *Handler) EmployerJobs(w http.ResponseWriter, r *http.Request) {
	me := h.currentUser(r)
	h.successResponse(w, r, "获取职位列表成功", h.store.JobsByCompany(me.Name))
}

func (h *Handler) applicantsForCompany(company string) []*domain.Application {
	apps := make([]*domain.Application, 0)
	for _, app := range h.store.Applications() {
		if strings.EqualFold(app.Company, company) {
			apps = append(apps, app)
		}
	}
	return apps
}

func (h *Handler) Applicants(w http.ResponseWriter, r *http.Request) {
	me := h.currentUser(r)
	h.successResponse(w, r, "获取申请人列表成功", h.applicantsForCompany(me.Name))
}

// requireOwnApplication 把 applicantsForCompany 的按公司过滤同样施加在写操作上，
// 企业账号只能改动投给自己公司的记录。检查不通过时已写好响应，调用方直接返回即可
func (h *Handler) requireOwnApplication(w http.ResponseWriter, r *http.Request, appID int64) bool {
	app, err := h.store.ApplicationByID(appID)
	if err != nil {
		h.storeError(w, r, err, "投递记录不存在")
		return false
	}

	if !strings.EqualFold(app.Company, h.currentUser(r).Name) {
		h.errorResponse(w, r, "无权操作其他企业的投递记录")
		return false
	}

	return true
}

// UpdateApplicationStatus 只改动状态字段。
// 状态变为 Selected 时会给申请人追加一条 celebration 类型的通知，
// 学生打开它就会触发庆祝页
func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	appIDParam := chi.URLParam(r, "id")
	appID, err := strconv.ParseInt(appIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "投递记录ID无效")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof='Applied' 'Reviewing' 'Shortlisted' 'Interview Scheduled' 'Selected' 'Rejected'"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if ok := h.requireOwnApplication(w, r, appID); !ok {
		return
	}

	app, err := h.store.UpdateApplicationStatus(appID, domain.ApplicationStatus(req.Status))
	if err != nil {
		h.storeError(w, r, err, "投递记录不存在")
		return
	}

	if app.Status == domain.StatusSelected {
		h.store.AddNotification(&domain.Notification{
			Title:       fmt.Sprintf("You are selected at %s", app.Company),
			Message:     fmt.Sprintf("Congratulations! %s has selected you", app.Company),
			Type:        domain.NotificationCelebration,
			CompanyName: app.Company,
			Recipient:   app.FullName,
		})
	}

	h.successResponse(w, r, "状态更新成功", app)
}

func (h *Handler) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	appIDParam := chi.URLParam(r, "id")
	appID, err := strconv.ParseInt(appIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "投递记录ID无效")
		return
	}

	if ok := h.requireOwnApplication(w, r, appID); !ok {
		return
	}

	app, err := h.store.UpdateApplicationStatus(appID, domain.StatusInterviewScheduled)
	if err != nil {
		h.storeError(w, r, err, "投递记录不存在")
		return
	}

	h.successResponse(w, r, "面试已安排", app)
}

// MessageApplicant 给申请人发站内消息，消息同样走通知集合
func (h *Handler) MessageApplicant(w http.ResponseWriter, r *http.Request) {
	appIDParam := chi.URLParam(r, "id")
	appID, err := strconv.ParseInt(appIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "投递记录ID无效")
		return
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	app, err := h.store.ApplicationByID(appID)
	if err != nil {
		h.storeError(w, r, err, "投递记录不存在")
		return
	}

	me := h.currentUser(r)
	if !strings.EqualFold(app.Company, me.Name) {
		h.errorResponse(w, r, "无权操作其他企业的投递记录")
		return
	}

	notif := h.store.AddNotification(&domain.Notification{
		Title:     fmt.Sprintf("来自 %s 的消息", me.Name),
		Message:   req.Content,
		Type:      domain.NotificationMessage,
		From:      me.Name,
		Recipient: app.Email,
	})

	h.successResponse(w, r, "消息已发送", notif)
}

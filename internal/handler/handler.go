package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/config"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/guard"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/session"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/store"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	sessions   *session.Store
	store      *store.Store
	registry   *guard.Registry
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, sessions *session.Store, dataStore *store.Store) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// 路由守卫能识别的全部视图路径，未注册的路径一律跳转首页
	registry := guard.NewRegistry(
		guard.Public("/"),
		guard.Public("/login"),
		guard.Public("/signup"),
		guard.ProtectedView("/student/dashboard", "student"),
		guard.ProtectedView("/employer/dashboard", "employer"),
		guard.ProtectedView("/officer/dashboard", "officer"),
		guard.ProtectedView("/admin/dashboard", "admin"),
	)

	return &Handler{
		validate:   validate,
		config:     cfg,
		sessions:   sessions,
		store:      dataStore,
		registry:   registry,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.metrics)

	h.Mux.Handle("/metrics", promhttp.Handler())

	// 公共视图
	h.Mux.Get("/", h.Landing)
	h.Mux.Get("/login", h.LoginView)
	h.Mux.Get("/signup", h.SignupView)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// 学生面板
	h.Mux.Route("/student/dashboard", func(r chi.Router) {
		r.Use(h.guardView("/student/dashboard"))
		r.Get("/", h.StudentDashboard)
		r.Get("/jobs", h.StudentJobs)
		r.Get("/jobs/{id}", h.JobDetails)
		r.Post("/jobs/{id}/apply", h.ApplyToJob)
		r.Get("/applications", h.MyApplications)
		r.Post("/applications", h.SubmitApplication)
		r.Get("/drives", h.StudentDrives)
		r.Get("/notifications", h.StudentNotifications)
		r.Post("/notifications/{id}/open", h.OpenNotification)
		r.Get("/celebration", h.CelebrationState)
		r.Post("/celebration/dismiss", h.DismissCelebration)
		r.Post("/guidance", h.AskGuidance)
	})

	// 企业面板
	h.Mux.Route("/employer/dashboard", func(r chi.Router) {
		r.Use(h.guardView("/employer/dashboard"))
		r.Get("/", h.EmployerDashboard)
		r.Post("/jobs", h.PostJob)
		r.Get("/jobs", h.EmployerJobs)
		r.Get("/applicants", h.Applicants)
		r.Patch("/applications/{id}/status", h.UpdateApplicationStatus)
		r.Post("/applications/{id}/interview", h.ScheduleInterview)
		r.Post("/applications/{id}/message", h.MessageApplicant)
	})

	// 就业指导中心面板
	h.Mux.Route("/officer/dashboard", func(r chi.Router) {
		r.Use(h.guardView("/officer/dashboard"))
		r.Get("/", h.OfficerDashboard)
		r.Get("/drives", h.OfficerDrives)
		r.Post("/drives", h.CreateDrive)
		r.Get("/messages", h.StudentMessages)
	})

	// 管理员面板
	h.Mux.Route("/admin/dashboard", func(r chi.Router) {
		r.Use(h.guardView("/admin/dashboard"))
		r.Get("/", h.AdminDashboard)
		r.Get("/users", h.GetAllUserInfo)
		r.Post("/users", h.CreateUser)
		r.Delete("/users/{id}", h.DeleteUser)
	})

	// 未知路径一律跳转首页
	h.Mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/config"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/session"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 3600
	cfg.Redis.OperationExpiration = 1
	cfg.NewUser.PasswordLength = 12

	sessions, err := session.NewStore(cfg, rdb)
	require.NoError(t, err)

	h, err := NewHandler(cfg, sessions, store.NewStore())
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

func doRequest(h *Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	for _, cookie := range cookies {
		r.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	h.Mux.ServeHTTP(w, r)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()

	resp := Response{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// signupAs 注册一个用户并返回携带 JWT 的 cookie
func signupAs(t *testing.T, h *Handler, email, name, role string) *http.Cookie {
	t.Helper()

	w := doRequest(h, http.MethodPost, "/auth/signup", map[string]string{
		"email":    email,
		"password": "p1",
		"name":     name,
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	require.True(t, resp.Success, resp.Message)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == tokenCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("响应中没有携带令牌的 cookie")
	return nil
}

func TestRouteGuard(t *testing.T) {
	h := newTestHandler(t)
	studentCookie := signupAs(t, h, "zhangwei@mail2.sysu.edu.cn", "张伟", "student")

	tests := []struct {
		name         string
		path         string
		cookie       *http.Cookie
		wantStatus   int
		wantLocation string
	}{
		{name: "未登录访问公共视图", path: "/", wantStatus: http.StatusOK},
		{name: "未登录访问登录页", path: "/login", wantStatus: http.StatusOK},
		{name: "未登录访问受保护视图", path: "/student/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "角色匹配", path: "/student/dashboard", cookie: studentCookie, wantStatus: http.StatusOK},
		{name: "角色不匹配", path: "/employer/dashboard", cookie: studentCookie, wantStatus: http.StatusSeeOther, wantLocation: "/"},
		{name: "角色不匹配2", path: "/admin/dashboard", cookie: studentCookie, wantStatus: http.StatusSeeOther, wantLocation: "/"},
		{name: "未知路径", path: "/no-such-view", cookie: studentCookie, wantStatus: http.StatusSeeOther, wantLocation: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w *httptest.ResponseRecorder
			if tt.cookie != nil {
				w = doRequest(h, http.MethodGet, tt.path, nil, tt.cookie)
			} else {
				w = doRequest(h, http.MethodGet, tt.path, nil)
			}

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
		})
	}
}

func TestSignupRoleCaseInsensitive(t *testing.T) {
	h := newTestHandler(t)

	// 注册时角色大小写混用，归一化后照常能进自己的面板
	cookie := signupAs(t, h, "lijing@mail2.sysu.edu.cn", "李静", "Employer")

	w := doRequest(h, http.MethodGet, "/employer/dashboard", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	h := newTestHandler(t)
	signupAs(t, h, "zhangwei@mail2.sysu.edu.cn", "张伟", "student")

	w := doRequest(h, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "zhangwei@mail2.sysu.edu.cn",
		"password": "p2",
		"name":     "张伟二号",
		"role":     "student",
	})
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "该邮箱已被注册", resp.Message)
}

func TestLogin(t *testing.T) {
	h := newTestHandler(t)
	signupAs(t, h, "zhangwei@mail2.sysu.edu.cn", "张伟", "student")

	w := doRequest(h, http.MethodPost, "/auth/login", map[string]string{
		"email":    "zhangwei@mail2.sysu.edu.cn",
		"password": "wrong",
	})
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "邮箱不存在或密码错误", resp.Message)

	w = doRequest(h, http.MethodPost, "/auth/login", map[string]string{
		"email":    "zhangwei@mail2.sysu.edu.cn",
		"password": "p1",
	})
	resp = decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestLogoutThenProtectedView(t *testing.T) {
	h := newTestHandler(t)
	cookie := signupAs(t, h, "zhangwei@mail2.sysu.edu.cn", "张伟", "student")

	w := doRequest(h, http.MethodPost, "/auth/logout", nil, cookie)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success)

	// 登出响应让浏览器作废 cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == tokenCookieName {
			assert.Empty(t, c.Value)
		}
	}

	// 登出后再访问受保护视图必须回到登录页，而不是之前的面板
	w = doRequest(h, http.MethodGet, "/student/dashboard", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestApplyAndSelectionFlow(t *testing.T) {
	h := newTestHandler(t)
	studentCookie := signupAs(t, h, "zhangwei@mail2.sysu.edu.cn", "张伟", "student")
	// 企业账号的名称即公司名，示例职位 1 属于 Google
	employerCookie := signupAs(t, h, "hr@google.com", "Google", "employer")

	// 学生投递职位 1
	w := doRequest(h, http.MethodPost, "/student/dashboard/jobs/1/apply", nil, studentCookie)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, resp.Message)

	// 企业能在申请人列表中看到这条投递
	w = doRequest(h, http.MethodGet, "/employer/dashboard/applicants", nil, employerCookie)
	resp = decodeResponse(t, w)
	require.True(t, resp.Success)
	apps := resp.Data.([]any)
	require.Len(t, apps, 1)

	// 企业把状态改成 Selected
	w = doRequest(h, http.MethodPatch, "/employer/dashboard/applications/1/status", map[string]string{
		"status": "Selected",
	}, employerCookie)
	resp = decodeResponse(t, w)
	require.True(t, resp.Success, resp.Message)

	// 随之追加了一条 celebration 类型的通知
	notifs := h.store.Notifications()
	require.Len(t, notifs, 3)
	celebration := notifs[2]
	assert.Equal(t, domain.NotificationCelebration, celebration.Type)
	assert.Equal(t, "Google", celebration.CompanyName)

	// 学生打开这条通知后点亮庆祝页
	w = doRequest(h, http.MethodPost, "/student/dashboard/notifications/3/open", nil, studentCookie)
	resp = decodeResponse(t, w)
	require.True(t, resp.Success)

	assert.True(t, h.store.ShowCelebration())
	require.NotNil(t, h.store.SelectedNotification())
	assert.Equal(t, celebration.ID, h.store.SelectedNotification().ID)

	// 关闭庆祝页
	w = doRequest(h, http.MethodPost, "/student/dashboard/celebration/dismiss", nil, studentCookie)
	resp = decodeResponse(t, w)
	require.True(t, resp.Success)
	assert.False(t, h.store.ShowCelebration())
}

func TestUpdateStatusOnMissingApplication(t *testing.T) {
	h := newTestHandler(t)
	employerCookie := signupAs(t, h, "hr@google.com", "Google", "employer")

	w := doRequest(h, http.MethodPatch, "/employer/dashboard/applications/999/status", map[string]string{
		"status": "Reviewing",
	}, employerCookie)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "投递记录不存在", resp.Message)
}

func TestEmployerCannotTouchOtherCompanyApplication(t *testing.T) {
	h := newTestHandler(t)
	studentCookie := signupAs(t, h, "zhangwei@mail2.sysu.edu.cn", "张伟", "student")
	otherCookie := signupAs(t, h, "hr@microsoft.com", "Microsoft", "employer")

	// 投递给 Google 的记录，Microsoft 的账号不能改动
	w := doRequest(h, http.MethodPost, "/student/dashboard/jobs/1/apply", nil, studentCookie)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, resp.Message)

	w = doRequest(h, http.MethodPatch, "/employer/dashboard/applications/1/status", map[string]string{
		"status": "Rejected",
	}, otherCookie)
	resp = decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "无权操作其他企业的投递记录", resp.Message)

	w = doRequest(h, http.MethodPost, "/employer/dashboard/applications/1/interview", nil, otherCookie)
	resp = decodeResponse(t, w)
	assert.False(t, resp.Success)

	w = doRequest(h, http.MethodPost, "/employer/dashboard/applications/1/message", map[string]string{
		"content": "请查收面试安排",
	}, otherCookie)
	resp = decodeResponse(t, w)
	assert.False(t, resp.Success)

	// 记录本身保持原状，也没有产生新通知
	app, err := h.store.ApplicationByID(1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApplied, app.Status)
	assert.Len(t, h.store.Notifications(), 2)
}

func TestSubmitApplicationValidation(t *testing.T) {
	h := newTestHandler(t)
	studentCookie := signupAs(t, h, "zhangwei@mail2.sysu.edu.cn", "张伟", "student")

	// 缺少必填的电话字段，操作中止且不产生记录
	w := doRequest(h, http.MethodPost, "/student/dashboard/applications", map[string]any{
		"appliedFor": "Google",
		"company":    "Google",
		"fullName":   "张伟",
		"email":      "zhangwei@mail2.sysu.edu.cn",
	}, studentCookie)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Empty(t, h.store.Applications())

	// 补全后成功
	w = doRequest(h, http.MethodPost, "/student/dashboard/applications", map[string]any{
		"appliedFor": "Google",
		"company":    "Google",
		"fullName":   "张伟",
		"email":      "zhangwei@mail2.sysu.edu.cn",
		"phone":      "13800000000",
	}, studentCookie)
	resp = decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Len(t, h.store.Applications(), 1)
}

func TestPostJob(t *testing.T) {
	h := newTestHandler(t)
	employerCookie := signupAs(t, h, "hr@bytedance.com", "字节跳动", "employer")

	w := doRequest(h, http.MethodPost, "/employer/dashboard/jobs", map[string]any{
		"title":       "Go 后端工程师",
		"description": "负责校园招聘平台的后端开发",
		"location":    "广州",
		"salary":      "25k - 40k",
		"skills":      []string{"Go", "Redis"},
		"jobType":     "Full-time",
	}, employerCookie)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, resp.Message)

	jobs := h.store.JobsByCompany("字节跳动")
	require.Len(t, jobs, 1)
	assert.Equal(t, "Go 后端工程师", jobs[0].Title)

	// 缺少必填字段时不产生记录
	w = doRequest(h, http.MethodPost, "/employer/dashboard/jobs", map[string]any{
		"title": "只有标题",
	}, employerCookie)
	resp = decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Len(t, h.store.JobsByCompany("字节跳动"), 1)
}

func TestAskGuidance(t *testing.T) {
	h := newTestHandler(t)
	studentCookie := signupAs(t, h, "zhangwei@mail2.sysu.edu.cn", "张伟", "student")
	officerCookie := signupAs(t, h, "teacher@sysu.edu.cn", "王老师", "officer")

	w := doRequest(h, http.MethodPost, "/student/dashboard/guidance", map[string]string{
		"recipient":     "王老师",
		"recipientType": "officer",
		"question":      "请问秋招一般什么时候开始？",
	}, studentCookie)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, resp.Message)

	// 老师那边能在消息列表里看到这条提问
	w = doRequest(h, http.MethodGet, "/officer/dashboard/messages", nil, officerCookie)
	resp = decodeResponse(t, w)
	require.True(t, resp.Success)
	messages := resp.Data.([]any)
	require.Len(t, messages, 1)
}

func TestCreateDrive(t *testing.T) {
	h := newTestHandler(t)
	officerCookie := signupAs(t, h, "teacher@sysu.edu.cn", "王老师", "officer")

	w := doRequest(h, http.MethodPost, "/officer/dashboard/drives", map[string]any{
		"company":  "字节跳动",
		"position": "后端工程师",
		"location": "就业指导中心",
		"date":     "2026-10-15T10:00:00+08:00",
	}, officerCookie)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, resp.Message)
	assert.Len(t, h.store.Drives(), 4)
}

func TestAdminManageUsers(t *testing.T) {
	h := newTestHandler(t)
	adminCookie := signupAs(t, h, "admin@sysu.edu.cn", "系统管理员", "admin")

	// 创建用户时随机生成初始口令并随响应返回
	w := doRequest(h, http.MethodPost, "/admin/dashboard/users", map[string]string{
		"email": "lijing@mail2.sysu.edu.cn",
		"name":  "李静",
		"role":  "Officer",
	}, adminCookie)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, resp.Message)

	data := resp.Data.(map[string]any)
	initialPassword := data["initialPassword"].(string)
	assert.Len(t, initialPassword, 12)
	created := data["user"].(map[string]any)
	// 响应中的用户不携带口令字段
	assert.NotContains(t, created, "password")
	assert.Equal(t, "officer", created["role"])

	// 新用户能用初始口令登录
	w = doRequest(h, http.MethodPost, "/auth/login", map[string]string{
		"email":    "lijing@mail2.sysu.edu.cn",
		"password": initialPassword,
	})
	resp = decodeResponse(t, w)
	assert.True(t, resp.Success)

	// 删除用户
	w = doRequest(h, http.MethodDelete, "/admin/dashboard/users/"+created["id"].(string), nil, adminCookie)
	resp = decodeResponse(t, w)
	assert.True(t, resp.Success)

	w = doRequest(h, http.MethodDelete, "/admin/dashboard/users/no-such-id", nil, adminCookie)
	resp = decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "用户不存在", resp.Message)
}

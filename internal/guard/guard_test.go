package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
)

func TestDecide(t *testing.T) {
	student := &domain.User{ID: "u-1", Role: domain.RoleStudent}

	tests := []struct {
		name string
		user *domain.User
		view View
		want Decision
	}{
		{
			name: "未登录访问公共视图",
			user: nil,
			view: Public("/"),
			want: Render,
		},
		{
			name: "未登录访问受保护视图",
			user: nil,
			view: ProtectedView("/student/dashboard", "student"),
			want: RedirectLogin,
		},
		{
			name: "角色匹配",
			user: student,
			view: ProtectedView("/student/dashboard", "student"),
			want: Render,
		},
		{
			name: "角色不匹配",
			user: student,
			view: ProtectedView("/employer/dashboard", "Employer"),
			want: RedirectHome,
		},
		{
			name: "视图要求的角色大小写不同但实际匹配",
			user: student,
			view: ProtectedView("/student/dashboard", "Student"),
			want: Render,
		},
		{
			name: "会话中的角色大小写不同但实际匹配",
			user: &domain.User{ID: "u-2", Role: domain.Role("STUDENT")},
			view: ProtectedView("/student/dashboard", "student"),
			want: Render,
		},
		{
			name: "受保护但不限定角色的视图",
			user: student,
			view: View{Path: "/any", Protected: true},
			want: Render,
		},
		{
			name: "会话中的角色无法识别",
			user: &domain.User{ID: "u-3", Role: domain.Role("guest")},
			view: ProtectedView("/student/dashboard", "student"),
			want: RedirectHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.user, tt.view))
		})
	}
}

func TestRegistryDecidePath(t *testing.T) {
	registry := NewRegistry(
		Public("/"),
		Public("/login"),
		ProtectedView("/student/dashboard", "student"),
	)

	student := &domain.User{ID: "u-1", Role: domain.RoleStudent}

	assert.Equal(t, Render, registry.DecidePath(nil, "/"))
	assert.Equal(t, RedirectLogin, registry.DecidePath(nil, "/student/dashboard"))
	assert.Equal(t, Render, registry.DecidePath(student, "/student/dashboard"))
	// 未注册的路径一律跳转首页，无论是否登录
	assert.Equal(t, RedirectHome, registry.DecidePath(nil, "/no-such-view"))
	assert.Equal(t, RedirectHome, registry.DecidePath(student, "/no-such-view"))
}

// Package guard 决定一次导航请求应该渲染目标视图、跳转登录页还是跳转首页。
// 它自身不持有任何状态，每次导航都重新求值，
// 角色比较只在这里做一次，比较的是归一化之后的枚举值
package guard

import (
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
)

type Decision int

const (
	Render Decision = iota
	RedirectLogin
	RedirectHome
)

type View struct {
	Path         string
	Protected    bool
	RequiredRole domain.Role
}

// Public 构造一个无需登录即可访问的视图
func Public(path string) View {
	return View{Path: path}
}

// ProtectedView 构造一个受保护视图，角色要求在注册时就归一化，
// 传入 "Employer" 和 "employer" 是等价的；
// 无法识别的角色字符串视为只要求登录、不限定角色
func ProtectedView(path string, role string) View {
	view := View{Path: path, Protected: true}
	if parsed, ok := domain.ParseRole(role); ok {
		view.RequiredRole = parsed
	}
	return view
}

// Decide 是 (会话身份, 目标视图) 的纯函数：
//   - 未登录访问受保护视图 → 跳转登录页
//   - 已登录但角色不符 → 跳转首页
//   - 其余情况 → 渲染目标视图
func Decide(user *domain.User, view View) Decision {
	if !view.Protected {
		return Render
	}
	if user == nil {
		return RedirectLogin
	}
	if view.RequiredRole != "" {
		role, ok := domain.ParseRole(string(user.Role))
		if !ok || role != view.RequiredRole {
			return RedirectHome
		}
	}
	return Render
}

// Registry 持有全部已注册的视图路径，未注册的路径一律跳转首页
type Registry struct {
	views map[string]View
}

func NewRegistry(views ...View) *Registry {
	r := &Registry{views: make(map[string]View, len(views))}
	for _, view := range views {
		r.views[view.Path] = view
	}
	return r
}

func (r *Registry) Lookup(path string) (View, bool) {
	view, ok := r.views[path]
	return view, ok
}

// DecidePath 在 Decide 的基础上处理未知路径
func (r *Registry) DecidePath(user *domain.User, path string) Decision {
	view, ok := r.Lookup(path)
	if !ok {
		return RedirectHome
	}
	return Decide(user, view)
}

package router

import (
	"strings"

	"VenuePOS/internal/model"
)

// Decision — исход проверки навигации.
type Decision int

const (
	// Allow — переход разрешён.
	Allow Decision = iota
	// RedirectLogin — нет активной сессии, перенаправление на /login.
	RedirectLogin
	// Forbidden — сессия есть, но роль не входит в допустимый набор маршрута.
	Forbidden
	// NotFound — путь не соответствует ни одному маршруту (catch-all).
	NotFound
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not-found"
	}
	return "unknown"
}

// Session — срез session store, нужный guard'у.
type Session interface {
	IsAuthenticated() bool
	Role() model.Role
}

// Resolution — маршрут (nil для catch-all) плюс решение.
type Resolution struct {
	Route    *Route
	Decision Decision
}

// Guard выполняет предварительную проверку навигации: присутствие сессии для
// защищённых маршрутов и принадлежность роли допустимому набору.
type Guard struct {
	session Session
	routes  []Route
}

// NewGuard создаёт guard над стандартной таблицей маршрутов.
func NewGuard(s Session) *Guard {
	return &Guard{session: s, routes: Routes()}
}

// Resolve принимает путь и возвращает решение по правилам перехода:
// публичные маршруты минуют проверки; защищённые требуют сессию, а при
// объявленном наборе ролей — членство роли; непарные пути падают в catch-all.
func (g *Guard) Resolve(path string) Resolution {
	route := g.match(path)
	if route == nil {
		return Resolution{Decision: NotFound}
	}
	if route.Public || !route.RequiresAuth {
		return Resolution{Route: route, Decision: Allow}
	}
	if !g.session.IsAuthenticated() {
		return Resolution{Route: route, Decision: RedirectLogin}
	}
	if len(route.Roles) > 0 && !roleAllowed(g.session.Role(), route.Roles) {
		return Resolution{Route: route, Decision: Forbidden}
	}
	return Resolution{Route: route, Decision: Allow}
}

// deviceRoute — параметрический маршрут единичной записи /{deviceId}:
// публичная страница заказа для конкретного устройства.
var deviceRoute = Route{Path: "/:deviceId", Name: "SinglePageOrder", Public: true}

func (g *Guard) match(path string) *Route {
	if path == "" {
		path = "/"
	}
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	for i := range g.routes {
		if g.routes[i].Path == path {
			return &g.routes[i]
		}
	}
	// один непустой сегмент, не занятый статичными маршрутами, — /:deviceId
	if seg := strings.TrimPrefix(path, "/"); seg != "" && !strings.Contains(seg, "/") {
		r := deviceRoute
		return &r
	}
	return nil
}

func roleAllowed(role model.Role, allowed []model.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

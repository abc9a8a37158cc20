package router

import "VenuePOS/internal/model"

// Route — запись таблицы навигации. Roles пуст — достаточно любой активной
// сессии; Public — проверки пропускаются целиком.
type Route struct {
	Path         string
	Name         string
	Public       bool
	RequiresAuth bool
	Roles        []model.Role
}

// Routes возвращает статичную таблицу маршрутов админки.
// Параметрический маршрут единичной записи и catch-all задаются отдельно
// (см. Guard.Resolve).
func Routes() []Route {
	return []Route{
		{Path: "/", Name: "home", RequiresAuth: true},
		{Path: "/admin", Name: "dashboard", RequiresAuth: true},
		{Path: "/login", Name: "login", Public: true},
		{Path: "/item/create", Name: "ItemCreate", RequiresAuth: true},
		{Path: "/item/show", Name: "ItemShow", RequiresAuth: true},
		{Path: "/category/show", Name: "categoryShow", RequiresAuth: true},
		{Path: "/room/show", Name: "roomShow", RequiresAuth: true},
		{Path: "/printer/show", Name: "printerShow", RequiresAuth: true},
		{Path: "/order/show", Name: "orderShow", RequiresAuth: true},
		{Path: "/lapangan/show", Name: "LapanganShow", RequiresAuth: true,
			Roles: []model.Role{model.RoleCustomerService, model.RoleManager}},
		{Path: "/booking/show", Name: "BookingShow", RequiresAuth: true},
		{Path: "/user-management", Name: "showUser", RequiresAuth: true,
			Roles: []model.Role{model.RoleManager}},
	}
}

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"VenuePOS/internal/model"
)

type fakeSession struct {
	authed bool
	role   model.Role
}

func (f fakeSession) IsAuthenticated() bool { return f.authed }
func (f fakeSession) Role() model.Role      { return f.role }

func TestResolve_ProtectedRouteWithoutSessionRedirectsToLogin(t *testing.T) {
	g := NewGuard(fakeSession{})
	res := g.Resolve("/admin")
	assert.Equal(t, RedirectLogin, res.Decision)
	assert.Equal(t, "dashboard", res.Route.Name)
}

func TestResolve_PublicRouteBypassesChecks(t *testing.T) {
	g := NewGuard(fakeSession{})
	res := g.Resolve("/login")
	assert.Equal(t, Allow, res.Decision)
}

func TestResolve_RoleGatedRouteDeniesWrongRole(t *testing.T) {
	// user-management требует Manager; Customer Service не проходит
	g := NewGuard(fakeSession{authed: true, role: model.RoleCustomerService})
	res := g.Resolve("/user-management")
	assert.Equal(t, Forbidden, res.Decision)
}

func TestResolve_RoleGatedRouteAllowsMember(t *testing.T) {
	g := NewGuard(fakeSession{authed: true, role: model.RoleManager})
	assert.Equal(t, Allow, g.Resolve("/user-management").Decision)

	// lapangan открыт обеим ролям из набора
	cs := NewGuard(fakeSession{authed: true, role: model.RoleCustomerService})
	assert.Equal(t, Allow, cs.Resolve("/lapangan/show").Decision)
}

func TestResolve_RoleGatedRouteDeniesStaff(t *testing.T) {
	g := NewGuard(fakeSession{authed: true, role: model.RoleStaff})
	assert.Equal(t, Forbidden, g.Resolve("/lapangan/show").Decision)
}

func TestResolve_ProtectedRouteAllowsAnyAuthenticatedRole(t *testing.T) {
	// без объявленного набора ролей достаточно активной сессии
	g := NewGuard(fakeSession{authed: true, role: model.RoleUser})
	assert.Equal(t, Allow, g.Resolve("/order/show").Decision)
}

func TestResolve_DeviceParamRouteIsPublic(t *testing.T) {
	g := NewGuard(fakeSession{})
	res := g.Resolve("/table-12")
	assert.Equal(t, Allow, res.Decision)
	assert.Equal(t, "SinglePageOrder", res.Route.Name)
}

func TestResolve_UnmatchedPathFallsThroughToNotFound(t *testing.T) {
	g := NewGuard(fakeSession{authed: true, role: model.RoleAdmin})
	res := g.Resolve("/no/such/view")
	assert.Equal(t, NotFound, res.Decision)
	assert.Nil(t, res.Route)
}

func TestResolve_TrailingSlashNormalized(t *testing.T) {
	g := NewGuard(fakeSession{authed: true, role: model.RoleAdmin})
	assert.Equal(t, Allow, g.Resolve("/room/show/").Decision)
	assert.Equal(t, RedirectLogin, NewGuard(fakeSession{}).Resolve("/").Decision)
}

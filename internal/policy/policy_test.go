package policy

import (
	"testing"

	"go-inventory-api/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	t.Run("admin may perform every action", func(t *testing.T) {
		for _, action := range allActions {
			assert.True(t, Allowed(model.RoleAdmin, action), action)
		}
	})

	t.Run("staff records transactions and consults", func(t *testing.T) {
		assert.True(t, Allowed(model.RoleStaff, TransactionCreate))
		assert.True(t, Allowed(model.RoleStaff, TransactionView))
		assert.True(t, Allowed(model.RoleStaff, ProductView))
		assert.True(t, Allowed(model.RoleStaff, SupplierView))
		assert.True(t, Allowed(model.RoleStaff, DashboardView))
	})

	t.Run("staff cannot manage", func(t *testing.T) {
		assert.False(t, Allowed(model.RoleStaff, ProductManage))
		assert.False(t, Allowed(model.RoleStaff, SupplierManage))
		assert.False(t, Allowed(model.RoleStaff, UserView))
		assert.False(t, Allowed(model.RoleStaff, UserManage))
		assert.False(t, Allowed(model.RoleStaff, RoleManage))
	})

	t.Run("unknown role is denied everything", func(t *testing.T) {
		assert.False(t, Allowed("INTERN", ProductView))
		assert.False(t, Allowed("", TransactionCreate))
	})

	t.Run("unknown action is denied", func(t *testing.T) {
		assert.False(t, Allowed(model.RoleAdmin, "product:destroy"))
	})
}

func TestActionsFor(t *testing.T) {
	adminActions := ActionsFor(model.RoleAdmin)
	assert.Len(t, adminActions, len(allActions))

	staffActions := ActionsFor(model.RoleStaff)
	assert.Contains(t, staffActions, TransactionCreate)
	assert.NotContains(t, staffActions, UserManage)

	assert.Empty(t, ActionsFor("INTERN"))
}

// Package policy holds the static permission table. Every guarded
// endpoint names an action; the table maps role codes to the actions
// they may perform. The table is evaluated in middleware before the
// handler runs, so services never re-check permissions.
package policy

import "go-inventory-api/internal/model"

// Action names, grouped per resource.
const (
	RoleView   = "role:view"
	RoleManage = "role:manage"

	UserView   = "user:view"
	UserManage = "user:manage"

	ProductView   = "product:view"
	ProductManage = "product:manage"

	SupplierView   = "supplier:view"
	SupplierManage = "supplier:manage"

	TransactionView   = "transaction:view"
	TransactionCreate = "transaction:create"

	DashboardView = "dashboard:view"
)

var allActions = []string{
	RoleView, RoleManage,
	UserView, UserManage,
	ProductView, ProductManage,
	SupplierView, SupplierManage,
	TransactionView, TransactionCreate,
	DashboardView,
}

// table maps role code to its allowed action set.
var table = map[string]map[string]bool{
	model.RoleAdmin: allow(allActions...),
	model.RoleStaff: allow(
		RoleView,
		ProductView,
		SupplierView,
		TransactionView,
		TransactionCreate,
		DashboardView,
	),
}

func allow(actions ...string) map[string]bool {
	set := make(map[string]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return set
}

// Allowed reports whether the role may perform the action. Unknown roles
// and unknown actions are denied.
func Allowed(roleCode, action string) bool {
	return table[roleCode][action]
}

// ActionsFor returns the allowed actions of a role, for introspection
// endpoints. The result is a copy.
func ActionsFor(roleCode string) []string {
	set := table[roleCode]
	actions := make([]string, 0, len(set))
	for _, a := range allActions {
		if set[a] {
			actions = append(actions, a)
		}
	}
	return actions
}

// Package access define qué vistas puede abrir cada rol y decide, para una
// sesión dada, si se permite el acceso o a dónde redirigir.
package access

import (
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

// Capability permiso atómico asignado a roles.
type Capability string

const (
	CapManageSettings  Capability = "manage_settings"
	CapManageUsers     Capability = "manage_users"
	CapManageCustomers Capability = "manage_customers"
	CapManageProducts  Capability = "manage_products"
	CapViewDashboard   Capability = "view_dashboard"
	CapUseBilling      Capability = "use_billing"
	CapManageInvoices  Capability = "manage_invoices"
	CapViewReports     Capability = "view_reports"
)

// View pantalla de la aplicación identificada por su ruta.
type View string

const (
	ViewLogin        View = "/"
	ViewUnauthorized View = "/unauthorized"
	ViewDashboard    View = "/dashboard"
	ViewBillingMain  View = "/billingMain"
	ViewInvoices     View = "/invoices"
	ViewReports      View = "/reports"
	ViewCustomers    View = "/customers"
	ViewCustomerForm View = "/customerForm"
	ViewProducts     View = "/products"
	ViewProductForm  View = "/productForm"
	ViewSettings     View = "/settings"
	ViewUsers        View = "/users"
)

// Decision resultado de Authorize. Si Allowed es false, Redirect indica el destino.
type Decision struct {
	Allowed  bool
	Redirect View
}

var roleCapabilities = map[entity.Role][]Capability{
	entity.RoleAdmin: {
		CapManageSettings, CapManageUsers, CapManageCustomers, CapManageProducts,
		CapViewDashboard, CapUseBilling, CapManageInvoices, CapViewReports,
	},
	entity.RoleManager: {
		CapManageCustomers, CapManageProducts,
		CapViewDashboard, CapUseBilling, CapManageInvoices, CapViewReports,
	},
	entity.RoleViewer: {
		CapViewDashboard, CapUseBilling, CapManageInvoices, CapViewReports,
	},
}

// viewCapability vista protegida -> capacidad requerida. Las vistas públicas no figuran.
var viewCapability = map[View]Capability{
	ViewSettings:     CapManageSettings,
	ViewUsers:        CapManageUsers,
	ViewCustomers:    CapManageCustomers,
	ViewCustomerForm: CapManageCustomers,
	ViewProducts:     CapManageProducts,
	ViewProductForm:  CapManageProducts,
	ViewDashboard:    CapViewDashboard,
	ViewBillingMain:  CapUseBilling,
	ViewInvoices:     CapManageInvoices,
	ViewReports:      CapViewReports,
}

// menuOrder orden de las vistas protegidas en el menú lateral.
var menuOrder = []View{
	ViewDashboard, ViewBillingMain, ViewInvoices, ViewCustomers, ViewCustomerForm,
	ViewProducts, ViewProductForm, ViewReports, ViewSettings, ViewUsers,
}

// IsPublic informa si la vista no exige sesión.
func IsPublic(v View) bool {
	return v == ViewLogin || v == ViewUnauthorized
}

// Known informa si la vista existe.
func Known(v View) bool {
	if IsPublic(v) {
		return true
	}
	_, ok := viewCapability[v]
	return ok
}

// Can informa si el rol tiene la capacidad.
func Can(role entity.Role, c Capability) bool {
	for _, rc := range roleCapabilities[role] {
		if rc == c {
			return true
		}
	}
	return false
}

// Capabilities devuelve una copia de las capacidades del rol.
func Capabilities(role entity.Role) []Capability {
	caps := roleCapabilities[role]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// Authorize decide el acceso de una sesión a una vista protegida.
// Sin sesión (o sin rol) redirige al login; rol sin la capacidad, a /unauthorized.
func Authorize(s *entity.Session, v View) Decision {
	if IsPublic(v) {
		return Decision{Allowed: true}
	}
	if s == nil || s.Token == "" || s.Role == "" {
		return Decision{Redirect: ViewLogin}
	}
	required, ok := viewCapability[v]
	if !ok || !Can(s.Role, required) {
		return Decision{Redirect: ViewUnauthorized}
	}
	return Decision{Allowed: true}
}

// AllowedRoles roles que pueden abrir la vista, en orden de privilegio.
// Para vistas públicas o desconocidas devuelve nil.
func AllowedRoles(v View) []entity.Role {
	required, ok := viewCapability[v]
	if !ok {
		return nil
	}
	var roles []entity.Role
	for _, r := range entity.Roles() {
		if Can(r, required) {
			roles = append(roles, r)
		}
	}
	return roles
}

// Views vistas protegidas que el rol puede abrir, en orden de menú.
func Views(role entity.Role) []View {
	var views []View
	for _, v := range menuOrder {
		if Can(role, viewCapability[v]) {
			views = append(views, v)
		}
	}
	return views
}

var viewLabels = map[View]string{
	ViewDashboard:    "Dashboard",
	ViewBillingMain:  "Billing / POS",
	ViewInvoices:     "Invoices",
	ViewCustomers:    "Customers",
	ViewCustomerForm: "New Customer",
	ViewProducts:     "Products",
	ViewProductForm:  "New Product",
	ViewReports:      "Reports",
	ViewSettings:     "Settings",
	ViewUsers:        "Users",
}

// Label texto del menú para la vista.
func Label(v View) string {
	if l, ok := viewLabels[v]; ok {
		return l
	}
	return string(v)
}

// CanView informa si el rol puede abrir la vista protegida.
func CanView(role entity.Role, v View) bool {
	required, ok := viewCapability[v]
	return ok && Can(role, required)
}

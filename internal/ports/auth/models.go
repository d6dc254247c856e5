package auth

// Role define qué puede hacer el portador de un token.
type Role string

const (
	// RoleFormUser: quien recibió el link de registro y edita su clínica.
	RoleFormUser Role = "form_user"
	// RoleContentManagement: links de verificación/borrado enviados a los administradores.
	RoleContentManagement Role = "content_management"
	// RoleSystem: token estático de visibilidad (sitio web, admin).
	RoleSystem Role = "system"
)

// Claims representa la información extraída del token.
type Claims struct {
	Subject    string
	Role       Role
	Visibility string
}

package identity

// ===============================
// Caller Identity
// ===============================

const (
	RoleAdmin  = "admin"
	RoleBarber = "barber"
	RoleClient = "client"
)

// Identity é quem chama a operação. Autenticação já aconteceu
// (middleware JWT); aqui só carregamos o resultado dela.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool  { return i.Role == RoleAdmin }
func (i Identity) IsBarber() bool { return i.Role == RoleBarber }
func (i Identity) IsClient() bool { return i.Role == RoleClient }

// ActsFor diz se o caller pode operar sobre recursos do dono informado:
// o próprio dono ou um admin.
func (i Identity) ActsFor(ownerID string) bool {
	return i.IsAdmin() || i.UserID == ownerID
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleBarber, RoleClient:
		return true
	}
	return false
}

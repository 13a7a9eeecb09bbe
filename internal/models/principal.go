package models

const (
	PrincipalKindCustomer = "CUSTOMER"
	PrincipalKindAdmin    = "ADMIN"
)

// Principal is the authenticated identity produced by a completed login,
// customer and administrator flows alike. The capability kind decides which
// operations the session may invoke.
type Principal struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Name    string `json:"name"`
}

// PrincipalForAccount builds a customer principal from an authenticated account
func PrincipalForAccount(account *Account) *Principal {
	return &Principal{
		Kind:    PrincipalKindCustomer,
		Subject: account.AccountNumber,
		Name:    account.HolderName,
	}
}

// PrincipalForAdmin builds an admin principal from an authenticated administrator
func PrincipalForAdmin(admin *Administrator) *Principal {
	return &Principal{
		Kind:    PrincipalKindAdmin,
		Subject: admin.AdminID,
		Name:    admin.Username,
	}
}

// IsAdmin returns true for administrator principals
func (p *Principal) IsAdmin() bool {
	return p.Kind == PrincipalKindAdmin
}

// IsCustomer returns true for customer principals
func (p *Principal) IsCustomer() bool {
	return p.Kind == PrincipalKindCustomer
}

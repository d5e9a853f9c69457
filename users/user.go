package users

type User struct {
	ID         int    `json:"id"`
	ProviderID string `json:"providerID"`
	Email      string `json:"email"`

	// CredentialHash is the digest of the user's current session token. It
	// is replaced on every login and never leaves the service.
	CredentialHash string `json:"-"`
}

type UserRepository interface {
	Get(int) (User, error)
	GetByProviderID(string) (User, error)
	GetByCredentialHash(string) (User, error)
	Upsert(*User) error

	List() ([]User, error)
}

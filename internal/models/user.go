package models

// User est la vue "session-safe" d'un compte : jamais de mot de passe dedans
type User struct {
	ID       string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// UserRecord est l'enregistrement stocké dans le registre : le hash Argon2id
// voyage dans le blob JSON mais jamais vers le client
type UserRecord struct {
	User
	PasswordHash string `json:"password_hash"`
}

package models

// Roles carried in the JWT role claim.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User is an account that can authenticate against the API.
// PasswordHash holds a bcrypt hash, never the raw password.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:User" json:"role"`
}

func (u *User) TableName() string {
	return "users"
}

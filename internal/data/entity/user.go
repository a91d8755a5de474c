package entity

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleUser      UserRole = "user"
)

// ValidRole reports whether value is one of the allowed roles.
func ValidRole(value string) bool {
	switch UserRole(value) {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

type User struct {
	Base
	Username  string   `db:"username"`
	Email     string   `db:"email"`
	FirstName *string  `db:"first_name"`
	LastName  *string  `db:"last_name"`
	Bio       string   `db:"bio"`
	Role      UserRole `db:"role"`
	// ConfirmationCode holds the bcrypt hash of the mailed code.
	// nil means no verification is pending.
	ConfirmationCode *string `db:"confirmation_code"`
	EmailVerified    bool    `db:"email_verified"`
	IsSuperuser      bool    `db:"is_superuser"`
	IsActive         bool    `db:"is_active"`
}

// CanModerate reports whether the user may edit or delete content
// authored by someone else. Superusers moderate regardless of role.
func (u *User) CanModerate() bool {
	return u.Role == RoleAdmin || u.Role == RoleModerator || u.IsSuperuser
}

package domain

import "time"

type User struct {
	Name      string
	Email     string
	CreatedAt time.Time
}

// Complete reports whether every field of the user is populated.
func (u User) Complete() bool {
	return u.MissingField() == ""
}

// MissingField names the first unpopulated field, or "" for a complete user.
func (u User) MissingField() string {
	switch {
	case u.Name == "":
		return "name"
	case u.Email == "":
		return "email"
	case u.CreatedAt.IsZero():
		return "createdAt"
	default:
		return ""
	}
}

// UserUpdate carries a partial user; nil fields are left untouched.
type UserUpdate struct {
	Name      *string
	Email     *string
	CreatedAt *time.Time
}

func (u User) Apply(update UserUpdate) User {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.CreatedAt != nil {
		u.CreatedAt = *update.CreatedAt
	}

	return u
}

package types

// User is one entry of the static user directory. The directory is fixed
// configuration, never persisted and never user-manageable.
type User struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// Directory is the immutable set of valid users. It is built once from
// configuration at startup and injected into services.
type Directory struct {
	users  []User
	byName map[string]User
}

func NewDirectory(users []User) *Directory {
	byName := make(map[string]User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &Directory{users: users, byName: byName}
}

// Contains reports whether username is a directory member.
func (d *Directory) Contains(username string) bool {
	_, ok := d.byName[username]
	return ok
}

// Users returns a copy of the directory entries.
func (d *Directory) Users() []User {
	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}

package security

import "github.com/google/uuid"

// IsValidUUID reports whether id is a canonical (36 char, hyphenated) version 4 UUID.
// Hex digits may be upper or lower case.
func IsValidUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}

func NewID() string {
	return uuid.NewString()
}

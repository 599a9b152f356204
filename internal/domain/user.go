package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common user validation errors
var (
	ErrEmptyUserName = errors.New("name cannot be empty")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// User represents a registered user of the ordering service.
// Name and Email are unique across the collection; Email doubles as the
// login key. The password is stored only as a bcrypt hash and is never
// serialized on any code path.
type User struct {
	ID             primitive.ObjectID `json:"id"                  bson:"_id,omitempty"`
	Name           string             `json:"name"                bson:"name"`
	Email          string             `json:"email"               bson:"email"`
	Password       string             `json:"-"                   bson:"-"` // Plaintext, held only between request decode and hashing
	HashedPassword string             `json:"-"                   bson:"password"`
	Bio            string             `json:"bio,omitempty"       bson:"bio,omitempty"`
	Image          *AssetRef          `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"           bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// NewUser creates a User with the given name, email and plaintext password.
// The caller is responsible for hashing the password before persistence.
func NewUser(name, email, password string) (*User, error) {
	user := &User{
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Touch stamps the update timestamp.
func (u *User) Touch() {
	u.UpdatedAt = time.Now().UTC()
}

// Validate checks that the User carries valid data.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyUserName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	// Either a plaintext password awaiting hashing or an existing hash
	// must be present.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	if !u.Image.Valid() {
		return NewValidationError("profileImage", "must carry both URL and key", ErrValidation)
	}

	return nil
}

// validEmailFormat performs a minimal structural check: a non-edge '@'
// followed by a dotted domain part.
func validEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}

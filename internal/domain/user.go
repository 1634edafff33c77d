package domain

import (
	"errors"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// User-specific validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrNameLength          = errors.New("name must be between 2 and 30 characters")
	ErrAboutLength         = errors.New("about must be between 2 and 30 characters")
	ErrInvalidAvatarURL    = errors.New("avatar must be a valid URL")
)

// Profile defaults applied when signup omits the optional display fields.
const (
	DefaultUserName   = "Жак-Ив Кусто"
	DefaultUserAbout  = "Исследователь"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User represents a registered user of the photo-card service.
// The plaintext password only exists transiently during signup; it is hashed
// before the user is persisted and neither the password nor its hash is ever
// serialized in API responses.
type User struct {
	ID             uuid.UUID `json:"_id"`
	Name           string    `json:"name"`
	About          string    `json:"about"`
	Avatar         string    `json:"avatar"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // plaintext, transient
	HashedPassword string    `json:"-"` // never expose the hash
	CreatedAt      time.Time `json:"createdAt"`
}

// NewUser creates a User with the given credentials and optional display
// fields, applying the profile defaults for any display field left empty.
// The caller is responsible for hashing the password before storage.
func NewUser(email, password, name, about, avatar string) (*User, error) {
	if name == "" {
		name = DefaultUserName
	}
	if about == "" {
		about = DefaultUserAbout
	}
	if avatar == "" {
		avatar = DefaultUserAvatar
	}

	user := &User{
		ID:        uuid.New(),
		Name:      name,
		About:     about,
		Avatar:    avatar,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	if !lengthBetween(u.Name, 2, 30) {
		return ErrNameLength
	}
	if !lengthBetween(u.About, 2, 30) {
		return ErrAboutLength
	}
	if !ValidURL(u.Avatar) {
		return ErrInvalidAvatarURL
	}

	// A user must carry either the transient plaintext password (pre-hash)
	// or an already-computed hash (loaded from the store).
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// lengthBetween reports whether s is between min and max runes inclusive.
func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

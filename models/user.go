package models

import "time"

// User represents an account entity used for authentication and profile
// rendering. Sensitive fields must never be exposed outside trusted boundaries;
// use [User.Profile] to obtain the public projection.
type User struct {
	// ID is the opaque unique identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Username is unique across all users and is used to log in.
	Username string `json:"username"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	// Avatar is the public URL of the user's avatar on the external image host.
	Avatar string `json:"avatar"`

	// AvatarID is the external-reference id of the avatar on the image host.
	// It is needed to delete the image and is never serialized.
	AvatarID string `json:"-"`

	Title     string `json:"title"`
	Bio       string `json:"bio"`
	Firstname string `json:"firstname"`
	Surname   string `json:"surname"`
	Othername string `json:"othername"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of the user.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Title:     u.Title,
		Bio:       u.Bio,
		Firstname: u.Firstname,
		Surname:   u.Surname,
		Othername: u.Othername,
		CreatedAt: u.CreatedAt,
	}
}

// Profile is the user representation returned to clients. It carries no
// credential material and no image host references.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Firstname string    `json:"firstname"`
	Surname   string    `json:"surname"`
	Othername string    `json:"othername"`
	CreatedAt time.Time `json:"createdAt"`
}

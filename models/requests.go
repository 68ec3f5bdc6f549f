package models

// SignupRequest is the payload of POST /auth/signup.
type SignupRequest struct {
	Username  string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=100"`
	Firstname string `json:"firstname" validate:"required,min=2,max=50"`
	Surname   string `json:"surname" validate:"required,min=2,max=50"`
	Othername string `json:"othername" validate:"omitempty,max=50"`
	Title     string `json:"title" validate:"omitempty,max=100"`
	Bio       string `json:"bio" validate:"omitempty,max=500"`
	Avatar    string `json:"avatar" validate:"omitempty,uri"`
	AvatarID  string `json:"avatarId"`
}

// User converts the signup payload into a new account. The password is
// copied as-is and must be hashed by the caller before persisting.
func (r SignupRequest) User() User {
	return User{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		Avatar:    r.Avatar,
		AvatarID:  r.AvatarID,
		Title:     r.Title,
		Bio:       r.Bio,
		Firstname: r.Firstname,
		Surname:   r.Surname,
		Othername: r.Othername,
	}
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateDetailsRequest is a partial profile update.
// Only non-nil fields are written.
type UpdateDetailsRequest struct {
	// UserID is the owner of the profile. It is taken from the session,
	// never from the request body.
	UserID string `json:"-"`

	Username  *string `json:"username,omitempty" validate:"omitempty,alphanum,min=3,max=30"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Firstname *string `json:"firstname,omitempty" validate:"omitempty,min=2,max=50"`
	Surname   *string `json:"surname,omitempty" validate:"omitempty,min=2,max=50"`
	Othername *string `json:"othername,omitempty" validate:"omitempty,max=50"`
	Title     *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// IsEmpty reports whether the request carries no field to update.
func (r UpdateDetailsRequest) IsEmpty() bool {
	return r.Username == nil && r.Email == nil && r.Firstname == nil &&
		r.Surname == nil && r.Othername == nil && r.Title == nil && r.Bio == nil
}

// AvatarUpdate is the payload of PATCH /user/avatar. Avatar is the public URL
// of an image already uploaded to the image host; AvatarID is the host's
// reference for it and may be empty.
type AvatarUpdate struct {
	Avatar   string `json:"avatar" validate:"required,uri"`
	AvatarID string `json:"avatarId"`
}

// ResetPasswordRequest is the payload of POST /user/reset-password.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=100"`
}

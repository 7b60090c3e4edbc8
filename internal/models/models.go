package models

import (
	"time"
)

// User is the identity provider's record. PasswordHash never leaves the store.
type User struct {
	UserID        string    `json:"uid" db:"user_id"`
	Email         string    `json:"email" db:"email"`
	DisplayName   string    `json:"displayName" db:"display_name"`
	EmailVerified bool      `json:"emailVerified" db:"email_verified"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	CreatedAt     time.Time `json:"-" db:"created_at"`
}

type CreateUserRequest struct {
	Email       string
	Password    string
	DisplayName string
}

type Post struct {
	PostID      string     `json:"id" db:"post_id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Author      string     `json:"author" db:"author"`
	AuthorEmail string     `json:"authorEmail,omitempty" db:"author_email"`
	AuthorID    string     `json:"authorId" db:"author_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}

// PostFields is a partial post update; nil fields are left untouched.
type PostFields struct {
	Title   *string
	Content *string
}

func (f PostFields) Empty() bool {
	return f.Title == nil && f.Content == nil
}

// Claims is the identity carried inside a session token.
type Claims struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

func ClaimsFromUser(user *User) Claims {
	return Claims{
		UserID:      user.UserID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
}

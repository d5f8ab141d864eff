package models

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"email" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	Phone        string `json:"phone" db:"phone"`
	Role         Role   `json:"role" db:"role"`
	ImageID      *int64 `json:"imageId" db:"image_id"`
}

type Ad struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Price       int    `json:"price" db:"price"`
	ImageID     *int64 `json:"imageId" db:"image_id"`
	AuthorID    int64  `json:"authorId" db:"author_id"`
}

// AdDetails is an ad joined with the contact fields of its owner.
type AdDetails struct {
	Ad
	AuthorFirstName string `db:"author_first_name"`
	AuthorLastName  string `db:"author_last_name"`
	AuthorUsername  string `db:"author_username"`
	AuthorPhone     string `db:"author_phone"`
}

type Comment struct {
	ID        int64     `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	AdID      int64     `json:"adId" db:"ad_id"`
}

// CommentWithAuthor carries the author fields shown next to a comment.
type CommentWithAuthor struct {
	Comment
	AuthorFirstName string `db:"author_first_name"`
	AuthorImageID   *int64 `db:"author_image_id"`
}

type Image struct {
	ID          int64  `json:"id" db:"id"`
	Path        string `json:"-" db:"path"`
	Size        int64  `json:"size" db:"size"`
	ContentType string `json:"contentType" db:"content_type"`
}

// Principal is the authenticated caller resolved from request credentials.
type Principal struct {
	ID       int64
	Username string
	Role     Role
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// Package dto maps domain models to the JSON shapes served over HTTP.
// Every function here is pure.
package dto

import (
	"fmt"

	"adboard/internal/models"
)

type Ad struct {
	Author int64   `json:"author"`
	Image  *string `json:"image"`
	Pk     int64   `json:"pk"`
	Price  int     `json:"price"`
	Title  string  `json:"title"`
}

type Ads struct {
	Count   int  `json:"count"`
	Results []Ad `json:"results"`
}

type ExtendedAd struct {
	Pk              int64   `json:"pk"`
	AuthorFirstName string  `json:"authorFirstName"`
	AuthorLastName  string  `json:"authorLastName"`
	Description     string  `json:"description"`
	Email           string  `json:"email"`
	Image           *string `json:"image"`
	Phone           string  `json:"phone"`
	Price           int     `json:"price"`
	Title           string  `json:"title"`
}

type Comment struct {
	Author          int64   `json:"author"`
	AuthorImage     *string `json:"authorImage"`
	AuthorFirstName string  `json:"authorFirstName"`
	// CreatedAt is in milliseconds since the Unix epoch.
	CreatedAt int64  `json:"createdAt"`
	Pk        int64  `json:"pk"`
	Text      string `json:"text"`
}

type Comments struct {
	Count   int       `json:"count"`
	Results []Comment `json:"results"`
}

type User struct {
	ID        int64       `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Phone     string      `json:"phone"`
	Role      models.Role `json:"role"`
	Image     *string     `json:"image"`
}

type UpdateUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

func AdImageURL(adID int64) string {
	return fmt.Sprintf("/ads/%d/image", adID)
}

func UserImageURL(userID int64) string {
	return fmt.Sprintf("/users/%d/image", userID)
}

func imageURL(imageID *int64, url func(int64) string, ownerID int64) *string {
	if imageID == nil {
		return nil
	}
	link := url(ownerID)
	return &link
}

func FromAd(ad models.Ad) Ad {
	return Ad{
		Author: ad.AuthorID,
		Image:  imageURL(ad.ImageID, AdImageURL, ad.ID),
		Pk:     ad.ID,
		Price:  ad.Price,
		Title:  ad.Title,
	}
}

func FromAds(ads []models.Ad) Ads {
	results := make([]Ad, 0, len(ads))
	for _, ad := range ads {
		results = append(results, FromAd(ad))
	}
	return Ads{Count: len(results), Results: results}
}

func FromAdDetails(ad models.AdDetails) ExtendedAd {
	return ExtendedAd{
		Pk:              ad.ID,
		AuthorFirstName: ad.AuthorFirstName,
		AuthorLastName:  ad.AuthorLastName,
		Description:     ad.Description,
		Email:           ad.AuthorUsername,
		Image:           imageURL(ad.ImageID, AdImageURL, ad.ID),
		Phone:           ad.AuthorPhone,
		Price:           ad.Price,
		Title:           ad.Title,
	}
}

func FromComment(comment models.CommentWithAuthor) Comment {
	return Comment{
		Author:          comment.AuthorID,
		AuthorImage:     imageURL(comment.AuthorImageID, UserImageURL, comment.AuthorID),
		AuthorFirstName: comment.AuthorFirstName,
		CreatedAt:       comment.CreatedAt.UnixMilli(),
		Pk:              comment.ID,
		Text:            comment.Text,
	}
}

func FromComments(comments []models.CommentWithAuthor) Comments {
	results := make([]Comment, 0, len(comments))
	for _, comment := range comments {
		results = append(results, FromComment(comment))
	}
	return Comments{Count: len(results), Results: results}
}

func FromUser(user models.User) User {
	return User{
		ID:        user.ID,
		Email:     user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
		Image:     imageURL(user.ImageID, UserImageURL, user.ID),
	}
}

func UpdateUserFromUser(user models.User) UpdateUser {
	return UpdateUser{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
	}
}

package domain

import (
	"strings"
	"time"
)

// PlaceholderImageURL is shown for projects stored without an image.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b"

// Project is a portfolio entry curated by the admin.
// It is storage-agnostic and shared by the store, service and HTTP layers.
type Project struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	GithubURL   string    `json:"githubUrl"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	Tags        Tags      `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DisplayImageURL returns the image to render, falling back to the placeholder.
func (p Project) DisplayImageURL() string {
	if strings.TrimSpace(p.ImageURL) == "" {
		return PlaceholderImageURL
	}
	return p.ImageURL
}

// ProjectInput carries the mutable fields of a project, used for create and full update.
type ProjectInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl"`
	GithubURL   string `json:"githubUrl" validate:"required"`
	LiveURL     string `json:"liveUrl"`
	Tags        Tags   `json:"tags"`
}

// Normalize trims every text field and cleans the tag list.
func (in ProjectInput) Normalize() ProjectInput {
	return ProjectInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		GithubURL:   strings.TrimSpace(in.GithubURL),
		LiveURL:     strings.TrimSpace(in.LiveURL),
		Tags:        NormalizeTags(in.Tags),
	}
}

// Apply copies the input fields onto p, leaving ID and CreatedAt untouched.
func (in ProjectInput) Apply(p *Project) {
	p.Title = in.Title
	p.Description = in.Description
	p.ImageURL = in.ImageURL
	p.GithubURL = in.GithubURL
	p.LiveURL = in.LiveURL
	p.Tags = in.Tags
}

// TitleKey is the form of a title used for uniqueness checks.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Remark is a visitor testimonial. Only approved remarks are shown publicly.
type Remark struct {
	ID          string    `json:"_id"`
	ClientName  string    `json:"clientName"`
	CompanyName string    `json:"companyName,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	IsApproved  bool      `json:"isApproved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RemarkInput is what a visitor may submit. There is deliberately no approval field.
type RemarkInput struct {
	ClientName  string `json:"clientName" validate:"required"`
	CompanyName string `json:"companyName"`
	Rating      int    `json:"rating" validate:"min=1,max=5"`
	Comment     string `json:"comment" validate:"required"`
}

func (in RemarkInput) Normalize() RemarkInput {
	return RemarkInput{
		ClientName:  strings.TrimSpace(in.ClientName),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Rating:      in.Rating,
		Comment:     strings.TrimSpace(in.Comment),
	}
}

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

func (in ContactInput) Normalize() ContactInput {
	return ContactInput{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
	}
}

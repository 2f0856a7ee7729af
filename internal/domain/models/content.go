package models

import "time"

// HomePageContent is one editable block of the public homepage.
type HomePageContent struct {
	ID        int64     `json:"id"`
	Section   string    `json:"section"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Content   string    `json:"content,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactInfo is the company contact record. Read-mostly, single row.
type ContactInfo struct {
	ID        int64     `json:"id"`
	Address   string    `json:"address"`
	Phone1    string    `json:"phone1"`
	Phone2    string    `json:"phone2,omitempty"`
	Email     string    `json:"email"`
	AboutText string    `json:"aboutText,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ContactInfoUpdate struct {
	Address   *string `json:"address"`
	Phone1    *string `json:"phone1"`
	Phone2    *string `json:"phone2"`
	Email     *string `json:"email"`
	AboutText *string `json:"aboutText"`
}

// SocialMediaLink is one footer social entry.
type SocialMediaLink struct {
	ID       int64  `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
}

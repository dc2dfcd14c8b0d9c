package models

import "time"

type Commit struct {
	SHA             string    `json:"sha"`
	Message         string    `json:"message"`
	AuthorName      string    `json:"author_name"`
	AuthorLogin     string    `json:"author_login"`
	AuthorAvatarURL string    `json:"author_avatar_url"`
	AuthorDate      time.Time `json:"author_date"`
	CommitURL       string    `json:"html_url"`
}

type Branch struct {
	Name      string `json:"name"`
	SHA       string `json:"sha"`
	Protected bool   `json:"protected"`
}

type Contributor struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
}

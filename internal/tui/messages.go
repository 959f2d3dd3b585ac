package tui

import (
	"github.com/MKhiriev/go-blog/models"
)

type postsLoadedMsg struct {
	posts []models.Post
	err   error
}

type authorLoadedMsg struct {
	user models.User
	err  error
}

type authorsLoadedMsg struct {
	users []models.User
	err   error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}

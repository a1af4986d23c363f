package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/realverse/internal/common"
)

// BlogPost is a published long-form post. Posts never change once created.
type BlogPost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Created int64  `json:"created"`
}

// BlogInput trims title and body and requires both.
func BlogInput(title, body string) (string, string, error) {
	title, body = strings.TrimSpace(title), strings.TrimSpace(body)
	if title == "" || body == "" {
		return "", "", fmt.Errorf("%w: blog title and body required", common.ErrValidation)
	}
	return title, body, nil
}

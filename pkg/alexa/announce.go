package alexa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type announcementBody struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// SendAnnouncement broadcasts a spoken announcement to every audio device on
// the account. The URL is per-account; accountID comes from CustomerID.
// Length limits and the night gate are enforced by the dispatcher, not here.
func (c *Client) SendAnnouncement(ctx context.Context, accountID, sender, message string) error {
	if accountID == "" {
		return fmt.Errorf("send announcement: empty account id")
	}
	path := "/api/users/" + url.PathEscape(accountID) + "/announcements"
	return c.do(ctx, http.MethodPost, path, announcementBody{
		Sender:  sender,
		Message: message,
	}, nil)
}

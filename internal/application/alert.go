package application

import (
	"errors"
	"fmt"
	"net/http"

	"stocksinfo/internal/domain"
)

// Alert is a user-facing error classification.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Describe maps an error to the text shown to the user. When the host is
// offline, transport and status failures are reported as a connectivity
// problem instead of the raw status.
func Describe(err error, conn domain.Connection, token string) Alert {
	var httpErr *domain.HTTPError
	switch {
	case err == nil:
		return Alert{}
	case errors.Is(err, domain.ErrAuth):
		if token == "" {
			return Alert{Title: "To work with this app you need to input token"}
		}
		return Alert{Title: "This may be incorrect token:", Message: "Check it and press OK"}
	case errors.Is(err, domain.ErrEmptyList):
		return Alert{Title: "Something went wrong", Message: "Check url of request"}
	case errors.Is(err, domain.ErrNothingListed):
		return Alert{Title: "Nothing to select", Message: "Choose a company list first"}
	case errors.Is(err, ErrBadRequest):
		return Alert{Title: "Invalid symbol", Message: "Pick a company from the list"}
	case errors.Is(err, domain.ErrInvalidResponse):
		return Alert{Title: "Invalid JSON!", Message: "Check connection"}
	case !conn.Connected:
		return Alert{Title: "You are not connected to the Internet", Message: "Check connection"}
	case errors.As(err, &httpErr):
		title := http.StatusText(httpErr.StatusCode)
		if title == "" {
			title = "Failed to get data!"
		}
		return Alert{Title: title, Message: fmt.Sprintf("Status code: %d", httpErr.StatusCode)}
	}
	msg := "Unknown error"
	if conn.Type != "" && conn.Type != domain.ConnectionUnknown {
		msg = fmt.Sprintf("Unknown error (connection: %s)", conn.Type)
	}
	return Alert{Title: "Failed to get data!", Message: msg}
}

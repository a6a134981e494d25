package client

import (
	"context"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/models"
)

// Client is the remote authentication API. Both calls return the issued
// session token on success.
type Client interface {
	Signup(ctx context.Context, creds models.Credentials) (string, error)
	Login(ctx context.Context, creds models.Credentials) (string, error)
}

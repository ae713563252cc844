package supabase

import (
	"arqzoy-backend/internal/config"

	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

// SignIn authenticates the operator against GoTrue and returns the issued
// session. There is no server-side session state: the access token's
// lifetime is governed by GoTrue.
func (c *Client) SignIn(email, password string) (types.Session, error) {
	return c.Supabase.SignInWithEmailPassword(email, password)
}

// Package cmd wires the CLI onto the data layer: auth, catalog browsing and
// the admin listing operations.
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mahannajafi/moslemi-group-project/internal/api"
	"github.com/mahannajafi/moslemi-group-project/internal/auth"
	"github.com/mahannajafi/moslemi-group-project/internal/cache"
	"github.com/mahannajafi/moslemi-group-project/internal/config"
	"github.com/mahannajafi/moslemi-group-project/internal/estate"
	"github.com/mahannajafi/moslemi-group-project/internal/session"
)

// app carries the shared collaborators. Everything hangs off one session
// store and one request client, built on first use so commands that never
// touch the backend (version) run without configuration.
type app struct {
	cfg      config.Config
	sessions *session.Store
	auth     *auth.Service
	estate   *estate.Service
	queries  *cache.Cache
}

func (a *app) init(*cobra.Command, []string) error {
	if a.sessions != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.sessions = session.NewStore(cfg.SessionDir)
	client := api.NewClient(cfg.BaseURL, cfg.APIKey, a.sessions)
	a.auth = auth.NewService(client, a.sessions)
	a.estate = estate.NewService(client)
	a.queries = cache.New(5 * time.Minute)
	return nil
}

func NewRootCmd(version, buildDate string) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "amlak",
		Short:         "Moslemi Group real-estate listings CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newVersionCmd(version, buildDate))
	root.AddCommand(newAuthCmd(a))
	root.AddCommand(newPropertiesCmd(a))
	root.AddCommand(newAdminCmd(a))
	return root
}

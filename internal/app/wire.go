package app

import (
	"bog/internal/services/identity"
	"bog/internal/store"
	"bog/internal/util/logging"
)

// Wire bundles the opened tome, the identity service and the logger for the CLI.
type Wire struct {
	Tome     *store.Tome
	Identity *identity.Service
	Log      *logging.Logger
}

// NewWire constructs the dependency graph from cfg. It opens the tome, which
// also initializes the signature primitive.
func NewWire(cfg Config) (*Wire, error) {
	log, err := logging.NewLogger(cfg.Logger)
	if err != nil {
		return nil, err
	}

	tome, err := store.Open(cfg.Home, store.WithLogger(log.Named("store")))
	if err != nil {
		return nil, err
	}

	return &Wire{
		Tome:     tome,
		Identity: identity.New(tome),
		Log:      log,
	}, nil
}

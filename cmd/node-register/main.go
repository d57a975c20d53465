// node-register adds an autonomous node to the fleet registry, optionally
// storing its secret and minting a signed credential token.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/config"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/logging"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/nodes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		id           string
		nodeType     string
		location     string
		sensors      []string
		role         string
		secret       string
		registryPath string
		secretPath   string
		mint         bool
		tokenTTL     time.Duration
	)

	flags := pflag.NewFlagSet("node-register", pflag.ContinueOnError)
	flags.StringVar(&id, "id", "", "unique identifier for the node (required)")
	flags.StringVar(&nodeType, "type", "generic", "platform type (e.g. quadcopter, rover)")
	flags.StringVar(&location, "location", "unspecified", "location string (lat,long or descriptive)")
	flags.StringSliceVar(&sensors, "sensors", []string{"camera"}, "sensors equipped on the node")
	flags.StringVar(&role, "role", "observer", "role or capability tier (e.g. observer, commander)")
	flags.StringVar(&secret, "secret", "", "secret token to associate with this node")
	flags.StringVar(&registryPath, "registry", filepath.Join("nodes", "registered_nodes.yaml"), "path to the node registry")
	flags.StringVar(&secretPath, "secret-file", "", "path to the secret store (default: NODE_SECRET_FILE or node_management/secrets.json)")
	flags.BoolVar(&mint, "mint", false, "mint a signed credential token for the node")
	flags.DurationVar(&tokenTTL, "token-ttl", 0, "credential token lifetime, 0 for no expiry")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("--id is required")
	}

	logger := logging.New("node-register")

	node := nodes.Node{
		ID:       id,
		Type:     nodeType,
		Location: location,
		Sensors:  sensors,
		Role:     role,
	}
	total, err := nodes.Register(registryPath, node)
	if err != nil {
		return err
	}

	if mint {
		signingSecret := config.GetenvDefault("NODE_SIGNING_SECRET", "")
		if signingSecret == "" {
			return fmt.Errorf("--mint requires NODE_SIGNING_SECRET")
		}
		token, err := nodes.MintToken([]byte(signingSecret), id, role, tokenTTL)
		if err != nil {
			return err
		}
		secret = token
	}

	if secret != "" {
		store, err := nodes.NewSecretStore(secretPath, filepath.Join("node_management", "secrets.json"))
		if err != nil {
			return err
		}
		if err := store.Store(id, secret); err != nil {
			return err
		}
		logger.Printf("stored secret for node %s", id)
	}

	logger.Printf("registered node %s (%s) with role %s and sensors %s, total nodes: %d",
		id, nodeType, role, strings.Join(sensors, ","), total)
	return nil
}

package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const verifyTimeout = 5 * time.Second

// Client owns the Neo4j driver shared by the graph repositories
type Client struct {
	driver   neo4j.DriverWithContext
	database string
}

type Config struct {
	URI      string
	Username string
	Password string
	// Database is empty for the server default.
	Database string
}

// NewClient connects and verifies connectivity before returning
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("neo4j: uri is required")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j: create driver: %w", err)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j: verify connectivity: %w", err)
	}

	return &Client{driver: driver, database: cfg.Database}, nil
}

// ExecuteWrite runs work in a managed write transaction
func (c *Client) ExecuteWrite(ctx context.Context, work neo4j.ManagedTransactionWork) (any, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.database,
	})
	defer func() {
		_ = session.Close(ctx)
	}()

	return session.ExecuteWrite(ctx, work)
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.driver == nil {
		return nil
	}
	return c.driver.Close(ctx)
}

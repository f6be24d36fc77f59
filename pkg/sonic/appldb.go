// Package sonic provides the minimal SONiC database access this tool
// needs: deciding whether the switch has finished initializing its ports.
// APPL_DB (Redis DB 0) is read directly; sonic-db-cli is only a fallback
// for environments where the redis port is not reachable.
package sonic

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// portInitDoneKey is written to APPL_DB by portsyncd once all ports have
// been initialized.
const portInitDoneKey = "PORT_TABLE:PortInitDone"

// DefaultRedisAddr is the SONiC redis instance on the switch itself.
const DefaultRedisAddr = "localhost:6379"

// AppDBClient wraps a Redis client for APPL_DB access (DB 0).
type AppDBClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewAppDBClient creates a new APPL_DB client.
func NewAppDBClient(addr string) *AppDBClient {
	return &AppDBClient{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   0, // APPL_DB
		}),
		ctx: context.Background(),
	}
}

// Connect tests the connection.
func (c *AppDBClient) Connect() error {
	return c.client.Ping(c.ctx).Err()
}

// Close closes the connection.
func (c *AppDBClient) Close() error {
	return c.client.Close()
}

// PortInitDone reports whether portsyncd has marked port init complete.
func (c *AppDBClient) PortInitDone() (bool, error) {
	n, err := c.client.Exists(c.ctx, portInitDoneKey).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

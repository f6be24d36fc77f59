package sonic

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

// Checker answers whether the switch has finished initializing.
type Checker interface {
	Ready() (bool, error)
}

// RedisChecker checks readiness by querying APPL_DB over redis.
type RedisChecker struct {
	Client *AppDBClient
}

func (c *RedisChecker) Ready() (bool, error) {
	return c.Client.PortInitDone()
}

// DBCliChecker shells out to sonic-db-cli. The CLI prints the EXISTS
// result as a bare integer; anything other than the literal "1" means
// not ready.
type DBCliChecker struct{}

func (DBCliChecker) Ready() (bool, error) {
	out, err := exec.Command("sonic-db-cli", "APPL_DB", "EXISTS", portInitDoneKey).Output()
	if err != nil {
		return false, fmt.Errorf("sonic-db-cli: %w", err)
	}
	return strings.TrimSpace(string(out)) == "1", nil
}

// FallbackChecker prefers the primary checker and falls back to the
// secondary when the primary errors (e.g. redis not reachable).
type FallbackChecker struct {
	Primary  Checker
	Fallback Checker
}

func (c *FallbackChecker) Ready() (bool, error) {
	ready, err := c.Primary.Ready()
	if err == nil {
		return ready, nil
	}
	util.Debugf("primary readiness check failed, falling back: %v", err)
	return c.Fallback.Ready()
}

// NewDefaultChecker returns the standard readiness checker for a switch:
// direct APPL_DB access with a sonic-db-cli fallback.
func NewDefaultChecker(redisAddr string) Checker {
	return &FallbackChecker{
		Primary:  &RedisChecker{Client: NewAppDBClient(redisAddr)},
		Fallback: DBCliChecker{},
	}
}

// WaitForInit polls the checker until the switch reports ready, up to
// attempts polls with the given delay between them. Check errors count as
// not ready. Exhausting the attempts returns ErrNotReady and the run must
// abort: configuring loopback on an uninitialized switch is undefined.
func WaitForInit(checker Checker, attempts int, delay time.Duration, sleep func(time.Duration)) error {
	for i := 0; i < attempts; i++ {
		ready, err := checker.Ready()
		if err != nil {
			util.Warnf("readiness check failed: %v", err)
		}
		if ready {
			return nil
		}
		util.Info("Switch not ready, waiting..")
		if sleep != nil {
			sleep(delay)
		}
	}
	return util.ErrNotReady
}

package mloop

import (
	"time"

	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

// RetryPolicy bounds the TX-signal retry loop. Sleep is injectable so
// tests run without real delays.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Sleep       func(time.Duration)
}

// DefaultRetryPolicy matches hardware behavior: TX signal comes up only
// after link negotiation completes, which can take tens of seconds.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 10,
		Delay:       10 * time.Second,
		Sleep:       time.Sleep,
	}
}

func (p RetryPolicy) sleep() {
	if p.Sleep != nil {
		p.Sleep(p.Delay)
	}
}

// Outcome reports the result of configuring one port. Attempts counts
// TX-signal invocations only; it is zero when loopback is being cleared.
type Outcome struct {
	Configured bool
	Attempts   int
}

// Configurator applies loopback mode to individual logical ports.
type Configurator struct {
	Runner ToolRunner
	Retry  RetryPolicy
}

// ConfigurePort makes a best-effort attempt to place a logical port into
// the requested loopback mode. The loopback-set call itself is assumed
// reliable; only the TX-signal-up step is retried, because it depends on
// link negotiation having completed. Failures are logged, never returned:
// the caller must keep configuring the remaining ports.
func (c *Configurator) ConfigurePort(logical string, loopbackType int) Outcome {
	if err := c.Runner.SetPhysLoopback(logical, loopbackType); err != nil {
		util.WithLogicalPort(logical).Warnf("loopback set failed: %v", err)
	}

	// Clearing loopback needs no TX signal; the port is done.
	if loopbackType == 0 {
		return Outcome{Configured: true}
	}

	out := Outcome{}
	for out.Attempts < c.Retry.MaxAttempts {
		out.Attempts++
		if err := c.Runner.SetTxSignalUp(logical); err == nil {
			out.Configured = true
			return out
		}
		if out.Attempts < c.Retry.MaxAttempts {
			util.Infof("Retrying to config %s", logical)
		} else {
			util.Errorf("Failed to config %s", logical)
		}
		c.Retry.sleep()
	}
	return out
}

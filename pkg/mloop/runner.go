package mloop

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

// SDK tool binaries. These ship with the Mellanox SDK on the switch and
// are invoked as subprocesses.
const (
	dumpTool         = "saisdkdump"
	physLoopbackTool = "sx_api_port_phys_loopback.py"
	txSignalTool     = "sx_api_port_tx_signal_set.py"
)

// ToolRunner abstracts the SDK tool invocations so the configuration flow
// can be tested without switch hardware.
type ToolRunner interface {
	// GenerateDump writes a fresh SDK dump snapshot to path.
	GenerateDump(path string) error
	// SetPhysLoopback places a logical port into the given loopback mode,
	// forcing the change.
	SetPhysLoopback(logical string, loopbackType int) error
	// SetTxSignalUp brings the transmit signal up on a logical port.
	SetTxSignalUp(logical string) error
}

// ExecRunner invokes the real SDK tools via subprocesses.
type ExecRunner struct{}

func (ExecRunner) GenerateDump(path string) error {
	out, err := exec.Command(dumpTool, "-f", path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w\n%s", dumpTool, err, out)
	}
	return nil
}

func (ExecRunner) SetPhysLoopback(logical string, loopbackType int) error {
	cmd := exec.Command(physLoopbackTool,
		"--cmd", "0",
		"--log_port", logical,
		"--loopback_type", strconv.Itoa(loopbackType),
		"--force")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s on %s: %w\n%s", physLoopbackTool, logical, err, out)
	}
	util.WithLogicalPort(logical).Debugf("%s", out)
	return nil
}

// SetTxSignalUp runs the TX-signal tool with a piped "y" confirmation,
// matching an interactive invocation.
func (ExecRunner) SetTxSignalUp(logical string) error {
	cmd := exec.Command(txSignalTool, "--log_port", logical, "--state", "up")
	cmd.Stdin = strings.NewReader("y\n")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s on %s: %w\n%s", txSignalTool, logical, err, out)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mellanox-sonic/mloopctl/pkg/mloop"
	"github.com/mellanox-sonic/mloopctl/pkg/sonic"
	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

var (
	portList     []string
	portRange    []string
	loopbackType int
)

func init() {
	rootCmd.Flags().StringSliceVar(&portList, "ports", nil,
		"Ports to configure to mloop: port1,port2,...")
	rootCmd.Flags().StringSliceVar(&portRange, "port-range", nil,
		"Port range to configure to mloop: <start_port>,<end_port>")
	rootCmd.Flags().IntVar(&loopbackType, "loopback-type", 2,
		"Loopback type (0 clears loopback)")
}

// runConfigure is the main configuration pass. Every failure path prints a
// diagnostic and returns nil: the supervisor restarts the service on
// nonzero exits, and a switch with nothing to configure must not flap.
func runConfigure(cmd *cobra.Command, args []string) error {
	fmt.Println("Starting persistent MLOOP configuration")

	opts := mloop.Options{
		Ports:        normalizePorts(portList),
		PortRange:    normalizePorts(portRange),
		LoopbackType: loopbackType,
	}
	if err := opts.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}

	checker := sonic.NewDefaultChecker(cfg.RedisAddr)
	if err := sonic.WaitForInit(checker, cfg.InitWait.Attempts, cfg.InitWait.Delay(), time.Sleep); err != nil {
		fmt.Println("Error: switch not initialized")
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}
	if err := mloop.EnsureServiceFile(cfg.ServiceDir, cwd); err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}

	m := mloop.New(mloop.ExecRunner{}, mloop.NewStore(cfg.StateDir), cfg.DumpPath, cfg.RetryPolicy())
	if err := m.Run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	return nil
}

func normalizePorts(ports []string) []string {
	if len(ports) == 0 {
		return nil
	}
	out := make([]string, len(ports))
	for i, p := range ports {
		out[i] = util.NormalizePortName(p)
	}
	return out
}

// Mloopctl - persistent MLOOP configuration for Mellanox SONiC switches
//
// Places switch ports into hardware physical-loopback (MLOOP) test mode
// and persists the configuration so it is re-applied after a restart.
//
// Usage:
//
//	mloopctl --ports Ethernet0,Ethernet4 [--loopback-type N]
//	mloopctl --port-range Ethernet0,Ethernet12 [--loopback-type N]
//	mloopctl                  # replay the previously saved configuration
//	mloopctl show [--json]    # print the saved configuration
//
// --ports and --port-range are mutually exclusive. With neither given, the
// tool restores the saved configuration (this is what the supervisor
// service invokes at switch start). Failures are printed as diagnostics;
// the process exits 0 either way, so the supervisor does not flap the
// service on a switch that simply has nothing to configure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mellanox-sonic/mloopctl/pkg/config"
	"github.com/mellanox-sonic/mloopctl/pkg/util"
	"github.com/mellanox-sonic/mloopctl/pkg/version"
)

var (
	cfgPath string
	verbose bool

	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "mloopctl",
	Short:             "Persistent MLOOP configuration for Mellanox SONiC switches",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Mloopctl places switch ports into hardware physical-loopback (MLOOP)
test mode and persists the configuration across restarts.

  mloopctl --ports Ethernet0,Ethernet4
  mloopctl --port-range Ethernet0,Ethernet12
  mloopctl            (replay saved configuration)`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("info")
		}

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return nil
	},
	RunE: runConfigure,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "Tool configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.Version == "dev" {
			fmt.Println("mloopctl dev build (use 'make build' for version info)")
		} else {
			fmt.Printf("mloopctl %s\n", version.Info())
		}
	},
}

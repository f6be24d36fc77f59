package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mellanox-sonic/mloopctl/pkg/mloop"
	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

var jsonOutput bool

func init() {
	showCmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output")
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved loopback configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := mloop.NewStore(cfg.StateDir)
		saved, err := store.Load()
		if errors.Is(err, util.ErrNoSavedConfig) {
			fmt.Println("No saved configuration")
			return nil
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			data, err := json.MarshalIndent(saved, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Loopback type: %d\n", saved.LoopbackType)
		fmt.Printf("Ports (%d): %s\n", len(saved.Ports), strings.Join(saved.Ports, ", "))
		return nil
	},
}

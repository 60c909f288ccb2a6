package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/servline/menuscan/internal/config"
	"github.com/servline/menuscan/internal/home"
	"github.com/servline/menuscan/internal/output"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage menuscan configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		return output.Write(mgr.Get())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the menuscan home directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		hd, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := hd.EnsureExists(); err != nil {
			return err
		}

		if hd.ConfigExists() && !forceInit {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", hd.ConfigPath())
		}

		if err := config.WriteDefault(hd.ConfigPath()); err != nil {
			return err
		}
		fmt.Printf("wrote default config to %s\n", hd.ConfigPath())
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

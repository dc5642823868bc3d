package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samsaffron/mdtidy/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FileName
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the config file that would be loaded",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig != "" {
			abs, err := filepath.Abs(flagConfig)
			if err != nil {
				return err
			}
			fmt.Println(abs)
			return nil
		}
		for _, dir := range configSearchDirs() {
			candidate := filepath.Join(dir, config.FileName)
			if _, err := os.Stat(candidate); err == nil {
				fmt.Println(candidate)
				return nil
			}
		}
		fmt.Println("(no config file found, using built-in defaults)")
		return nil
	},
}

func configSearchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

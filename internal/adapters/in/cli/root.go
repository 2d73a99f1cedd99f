// Package cli implements the CLI adapter for jukebox-backup.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tsijukebox/jukebox-backup/internal/app"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// kernelLoader builds the application kernel for a config path.
type kernelLoader func(configPath string) (*app.Kernel, error)

func defaultLoader(configPath string) (*app.Kernel, error) {
	return app.NewKernel(configPath, Version)
}

// session holds the persistent flags shared by every command.
type session struct {
	configPath string
	load       kernelLoader
}

// run loads the kernel, hands it to fn and closes it on every exit path.
func (s *session) run(fn func(k *app.Kernel) error) error {
	k, err := s.load(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = k.Close() }()
	return fn(k)
}

// NewRootCmd creates the root command for the jukebox-backup CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultLoader)
}

func newRootCmd(load kernelLoader) *cobra.Command {
	s := &session{load: load}

	rootCmd := &cobra.Command{
		Use:   "jukebox-backup",
		Short: "Backup and restore for the TSiJUKEBOX appliance",
		Long: `jukebox-backup snapshots the TSiJUKEBOX configuration directory and,
optionally, the Docker volumes of the appliance into timestamped slots under a
local backup root, and restores them on demand.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&s.configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newCreateCmd(s))
	rootCmd.AddCommand(newRestoreCmd(s))
	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newCleanupCmd(s))
	rootCmd.AddCommand(newDeleteCmd(s))
	rootCmd.AddCommand(newVerifyCmd(s))
	rootCmd.AddCommand(newVolumesCmd(s))
	rootCmd.AddCommand(newScheduleCmd(s))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("jukebox-backup %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}

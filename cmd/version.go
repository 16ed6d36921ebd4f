package cmd

import (
	cmdutil "github.com/MaTriXy/just-bash/cmd/util"
	"github.com/spf13/cobra"
)

// version is set by the build's linker flags.
var version = "unknown"

func versionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
	}
	versionCmd.RunE = toRunE(func(cmd *cobra.Command, args []string) exitCode {
		cmdutil.Println(version)
		return exitCode{0}
	})
	return versionCmd
}

package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/MaTriXy/just-bash/internal/config"
	"github.com/MaTriXy/just-bash/cmd/internal/find"
	cmdutil "github.com/MaTriXy/just-bash/cmd/util"
	"github.com/MaTriXy/just-bash/shell"
)

func findCommand() *cobra.Command {
	findCmd := &cobra.Command{
		Use:   "find [path] [expression]",
		Short: "Searches the directory tree for entries matching an expression",
	}

	// This tells Cobra to hand us the raw arguments. We need it so that
	// Cobra does not interpret our predicates (e.g. like -name) as
	// single-dash flags, and because the search path may be omitted.
	findCmd.DisableFlagParsing = true

	findCmd.RunE = toRunE(findMain)

	return findCmd
}

func findMain(cmd *cobra.Command, args []string) exitCode {
	wd, err := os.Getwd()
	if err != nil {
		cmdutil.ErrPrintf("find: %v\n", err)
		return exitCode{1}
	}

	sctx := &shell.Context{
		Dir: wd,
		Fs:  afero.NewOsFs(),
	}
	if !config.ExecDisabled() {
		sctx.Exec = shell.SystemExec
	}

	result := find.New(config.FindIgnore()).Run(cmd.Context(), sctx, args)
	cmdutil.Print(result.Stdout)
	if result.Stderr != "" {
		cmdutil.ErrPrintf("%v", result.Stderr)
	}
	return exitCode{result.ExitCode}
}

package cmd

import (
	"github.com/spf13/cobra"
)

const AppName = "carvex"

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - forensic file-carving engine",
	}

	rootCmd.AddCommand(DefineCarveCommand())
	rootCmd.AddCommand(DefineFormatsCommand())
	rootCmd.AddCommand(DefineMergeCommand())
	rootCmd.AddCommand(DefineRecoverCommand())

	return rootCmd.Execute()
}

package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docguard",
	Short: "DocGuard - Validador de Conformidade de Documentação",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

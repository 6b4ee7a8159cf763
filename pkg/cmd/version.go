package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukimsanov/Crypto-List/pkg/version"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "show version",

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func init() {
	RootCmd.AddCommand(VersionCmd)
}

package netconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/constant"
)

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, argv []string) {
		fmt.Println(constant.GetVersion())
	},
}

func init() {
	mainCommand.AddCommand(versionCommand)
}

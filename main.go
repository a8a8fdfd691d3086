package main

import (
	"fmt"
	"os"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/cmd/netconfig"
)

func main() {
	if err := netconfig.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

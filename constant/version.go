package constant

import "fmt"

const Version = "v1.2.0"

var Commit = ""

func GetVersion() string {
	if Commit != "" {
		return fmt.Sprintf("netconfig version %s, commit: %s", Version, Commit)
	}
	return fmt.Sprintf("netconfig version %s", Version)
}

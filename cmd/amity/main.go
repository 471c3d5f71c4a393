// Command amity allocates offices and living spaces to staff and fellows.
package main

import (
	"os"

	"github.com/amity-space/amity/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

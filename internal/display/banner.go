package display

import (
	"fmt"
	"os"

	"github.com/backmassage/dirshift/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, logging.Magenta)
	}
	fmt.Fprint(os.Stdout, `     _ _          _     _  __ _
  __| (_)_ __ ___| |__ (_)/ _| |_
 / _`+"`"+` | | '__/ __| '_ \| | |_| __|
| (_| | | |  \__ \ | | | |  _| |_
 \__,_|_|_|  |___/_| |_|_|_|  \__|
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}

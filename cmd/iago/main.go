// Command iago speaks the game manager protocol on stdin and stdout: it
// reads its colour and search configuration, then answers each board with
// the move it picks. Diagnostics go to stderr, where the manager ignores
// them.
package main

import (
	"log"
	"os"

	"github.com/reversai/iago/gmp"
)

func main() {
	eng := gmp.New("iago")
	if err := eng.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%+v", err)
	}
}

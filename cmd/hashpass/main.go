// Command hashpass prints the bcrypt hash of a password, for provisioning
// the ADMIN_PASS_HASH environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpass <password>")
		os.Exit(2)
	}
	h, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(h)
}

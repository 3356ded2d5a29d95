// Command hashkey prints the bcrypt hash of a collector API key, for use as
// the COLLECTOR_API_KEY_HASH environment value.
package main

import (
	"fmt"
	"os"

	"github.com/chargewatch/pricetrack/internal/utils"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "usage: hashkey <api-key>")
		os.Exit(2)
	}

	hash, err := utils.HashAPIKey(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}

// Command notes reads and writes the encrypted note on a notesd server and
// derives the public key notesd is configured with.
//
//	notes pubkey https://notes.example.com --qr
//	notes get --server https://notes.example.com
//	notes put draft.txt --server https://notes.example.com
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorText.Sprint("Error:"), err)
		os.Exit(1)
	}
}

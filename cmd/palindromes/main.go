// Command palindromes prints the palindrome numbers among its input.
package main

import (
	"os"

	"palindromes/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

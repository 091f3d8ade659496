package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"bakery-orders/internal/pkg/password"
)

// Prints the bcrypt hash for OWNER_PASSWORD_HASH. The password is read from the
// first argument or, when absent, from stdin.
func main() {
	var plain string
	if len(os.Args) > 1 {
		plain = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "no password given")
			os.Exit(1)
		}
		plain = strings.TrimRight(line, "\r\n")
	}

	hash, err := password.HashPassword(plain)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

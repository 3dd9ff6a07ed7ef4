// Command hash-password prints bcrypt hashes for seeding users.hashed_password,
// using the same hasher the repositories apply on write.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/podcast-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if err := run(os.Stdout, os.Stdin, flag.Args(), *cost); err != nil {
		fmt.Fprintln(os.Stderr, "hash-password:", err)
		os.Exit(1)
	}
}

// run hashes each argument, or each stdin line when there are none.
func run(out io.Writer, in io.Reader, args []string, cost int) error {
	hasher := auth.NewBcryptVerifier(cost)

	passwords := args
	if len(passwords) == 0 {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				passwords = append(passwords, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read passwords: %w", err)
		}
	}

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return nil
}

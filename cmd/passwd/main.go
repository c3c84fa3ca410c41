// Command passwd prints the bcrypt hash to put into auth.admin_password_hash.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Dermofet/MephiApp-sub000/internal/pkg/auth"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/logger"
)

func main() {
	password := flag.String("password", "", "Password to hash, read from stdin when empty")
	flag.Parse()

	value := *password
	if value == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logger.Error().Err(err).Msg("Failed to read password from stdin")
			os.Exit(1)
		}
		value = strings.TrimRight(line, "\r\n")
	}
	if value == "" {
		logger.Error().Msg("Password must not be empty")
		os.Exit(2)
	}

	hash, err := auth.HashPassword(value)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		os.Exit(1)
	}
	fmt.Println(hash)
}

package configs

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
)

// GenerateAndPrintSessionKey prints a fresh cookie-session key for the .env
// file. Regenerating invalidates every existing guest cart session.
func GenerateAndPrintSessionKey() error {
	key := securecookie.GenerateRandomKey(64)
	if key == nil {
		return fmt.Errorf("error: could not generate session key")
	}

	fmt.Println("\n================================================")
	fmt.Printf("SESSION_KEY=%s\n", base64.URLEncoding.EncodeToString(key))
	fmt.Println("================================================")
	fmt.Println("Copy this line into your .env file.")

	return nil
}

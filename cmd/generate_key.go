package main

import (
	"crypto/rand"
	"fmt"
	"log"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

// Prints a random SESSION_SECRET. Run with: go run cmd/generate_key.go
func main() {
	secret := make([]byte, 48)
	randomBytes := make([]byte, 48)

	if _, err := rand.Read(randomBytes); err != nil {
		log.Fatal("Failed to generate random secret:", err)
	}

	for i := range secret {
		secret[i] = charset[int(randomBytes[i])%len(charset)]
	}

	fmt.Println("Generated session secret:")
	fmt.Println("================================================")
	fmt.Println("\nAdd this to your .env file:")
	fmt.Printf("SESSION_SECRET=%s\n", string(secret))
	fmt.Println("\nThe PASETO key is derived from it with HKDF, any length works.")
}

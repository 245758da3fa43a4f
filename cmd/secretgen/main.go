// Command secretgen prints a fresh base64-encoded HMAC key suitable for the
// jwt.secret config entry.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
)

func main() {
	key := make([]byte, 64)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate key: %v", err)
	}
	fmt.Println(base64.StdEncoding.EncodeToString(key))
}

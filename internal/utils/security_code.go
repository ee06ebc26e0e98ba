package utils

import "crypto/subtle"

// CheckSecurityCode compares a submitted security code against the configured
// one in constant time. An empty configured code rejects everything.
func CheckSecurityCode(submitted, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(configured)) == 1
}

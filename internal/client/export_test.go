package client

// This file is only for test purpose and is only loaded by test framework.

// Seal encrypts payload with the passphrase.
func Seal(payload, passphrase []byte) ([]byte, error) {
	return seal(payload, passphrase)
}

// Unseal decrypts ciphertext with the passphrase.
func Unseal(ciphertext, passphrase []byte) ([]byte, error) {
	return unseal(ciphertext, passphrase)
}

// Parse returns the configuration given by the file and the environment.
func Parse(filename string) (Config, error) {
	return parse(filename)
}

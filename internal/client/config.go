package client

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	sargon2 "github.com/mdouchement/simple-argon2"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	saltKeyLength   = 16
	credentialsfile = ".bigbluebutton"
	envPrefix       = "BBB_"
	defaultTimeout  = 30 * time.Second
)

// A Config holds client's configuration.
type Config struct {
	Endpoint  string               `json:"endpoint"`
	Secret    string               `json:"secret"`
	Algorithm libbbb.HashAlgorithm `json:"algorithm"`
	Timeout   time.Duration        `json:"timeout"`
}

// Validate checks the configuration.
func (cfg *Config) Validate() error {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	alg, err := libbbb.ParseHashAlgorithm(string(cfg.Algorithm))
	if err != nil {
		return err
	}
	cfg.Algorithm = alg

	return libbbb.Config{BaseURL: cfg.Endpoint, Secret: cfg.Secret}.Validate()
}

// Setup returns the configuration given by the optional configuration file and the BBB_ environment variables.
// The credentials file is loaded when the endpoint or the secret are still missing.
func Setup(filename string) (Config, error) {
	cfg, err := parse(filename)
	if err != nil {
		return cfg, err
	}

	if cfg.Endpoint == "" || cfg.Secret == "" {
		credentials, err := Load()
		if err != nil {
			return cfg, errors.Wrap(err, "no server configured, use `bbbc login' or BBB_ environment variables")
		}

		if cfg.Endpoint == "" {
			cfg.Endpoint = credentials.Endpoint
		}
		if cfg.Secret == "" {
			cfg.Secret = credentials.Secret
		}
		if cfg.Algorithm == "" {
			cfg.Algorithm = credentials.Algorithm
		}
		if cfg.Timeout == 0 {
			cfg.Timeout = credentials.Timeout
		}
	}

	return cfg, cfg.Validate()
}

func parse(filename string) (Config, error) {
	var cfg Config

	konf := koanf.New(".")
	if filename != "" {
		if err := konf.Load(file.Provider(filename), yaml.Parser()); err != nil {
			return cfg, errors.Wrapf(err, "could not load %s", filename)
		}
	}

	err := konf.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return cfg, errors.Wrap(err, "could not load environment")
	}

	cfg.Endpoint = konf.String("server_base_url")
	cfg.Secret = konf.String("security_salt")
	cfg.Algorithm = libbbb.HashAlgorithm(konf.String("checksum_algorithm"))
	if konf.Exists("timeout") {
		cfg.Timeout = konf.Duration("timeout")
	}

	return cfg, nil
}

// Remove removes the credential files from the current directory.
func Remove() error {
	return os.Remove(credentialsfile)
}

// Load gets the configuration from the current folder according to `credentialsfile` const.
func Load() (Config, error) {
	fmt.Println("Loading credentials from " + credentialsfile)
	cfg := Config{}

	ciphertext, err := os.ReadFile(credentialsfile)
	if err != nil {
		return cfg, errors.Wrap(err, "could not read credentials file")
	}

	passphrase, err := readline.Password("passphrase: ")
	if err != nil {
		return cfg, errors.Wrap(err, "could not read passphrase from stdin")
	}

	payload, err := unseal(ciphertext, passphrase)
	if err != nil {
		return cfg, err
	}

	err = json.Unmarshal(payload, &cfg)
	return cfg, errors.Wrap(err, "could not parse config")
}

// Save stores the configuration in the current folder according to `credentialsfile` const.
func Save(cfg Config) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "could not serialize config")
	}

	fmt.Println("Storing credentials in current directory as " + credentialsfile)
	passphrase, err := readline.Password("passphrase: ")
	if err != nil {
		return errors.Wrap(err, "could not read passphrase from stdin")
	}

	ciphertext, err := seal(payload, passphrase)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(credentialsfile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", credentialsfile)
	}
	defer f.Close()

	_, err = f.Write(ciphertext)
	if err != nil {
		return errors.Wrap(err, "could not store credentials")
	}

	return errors.Wrap(f.Sync(), "could not store credentials")
}

// seal encrypts the payload with a key derived from the passphrase.
// The result is salt || nonce || ciphertext.
func seal(payload, passphrase []byte) ([]byte, error) {
	//
	// Key derivation of passphrase

	salt, err := sargon2.GenerateRandomBytes(saltKeyLength)
	if err != nil {
		return nil, errors.Wrap(err, "could not generate salt for credentials")
	}
	hash := argon2.IDKey(passphrase, salt, 3, 64<<10, 2, 32)

	//
	// Seal config

	aead, err := chacha20poly1305.NewX(hash)
	if err != nil {
		return nil, errors.Wrap(err, "could not create AEAD")
	}
	nonce, err := sargon2.GenerateRandomBytes(uint32(aead.NonceSize()))
	if err != nil {
		return nil, errors.Wrap(err, "could not generate nonce for credentials")
	}

	ciphertext := aead.Seal(nil, nonce, payload, nil)
	ciphertext = append(nonce, ciphertext...)
	return append(salt, ciphertext...), nil
}

// unseal decrypts a payload encrypted by seal.
func unseal(ciphertext, passphrase []byte) ([]byte, error) {
	if len(ciphertext) < saltKeyLength+chacha20poly1305.NonceSizeX {
		return nil, errors.New("credentials file is too short")
	}

	//
	// Key derivation of passphrase

	salt := ciphertext[:saltKeyLength]
	ciphertext = ciphertext[saltKeyLength:]
	hash := argon2.IDKey(passphrase, salt, 3, 64<<10, 2, 32)

	//
	// Unseal config

	aead, err := chacha20poly1305.NewX(hash)
	if err != nil {
		return nil, errors.Wrap(err, "could not create AEAD")
	}

	nonce := ciphertext[:aead.NonceSize()]
	ciphertext = ciphertext[aead.NonceSize():]

	payload, err := aead.Open(nil, nonce, ciphertext, nil)
	return payload, errors.Wrap(err, "could not decrypt credentials file")
}

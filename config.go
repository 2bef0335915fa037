package wmgo

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/hupe1980/wmgo/hashing"
)

// Config holds the watermark parameters. Generation and detection must use
// identical values; the configuration is the only state the two sides share.
//
// Every field is required. There are no implicit defaults: a zero SaltKey,
// Ngram or MaxSeqLen is rejected by Validate.
type Config struct {
	// Payload is the auxiliary message encoded alongside the watermark by
	// rotating the pseudorandom vector. 0 means no payload.
	Payload int `toml:"payload"`

	// SaltKey is the secret hashing key.
	SaltKey uint64 `toml:"salt_key"`

	// Ngram is the length of the context window a seed is derived from.
	Ngram int `toml:"ngram"`

	// Seed is the base seed folded into every context hash.
	Seed uint64 `toml:"seed"`

	// Seeding selects the context-to-seed strategy.
	Seeding hashing.Strategy `toml:"seeding"`

	// MaxSeqLen caps the total sequence length (prompt plus generation).
	MaxSeqLen int `toml:"max_seq_len"`
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.SaltKey == 0 {
		return &ErrInvalidConfig{Field: "salt_key", Reason: "must be set"}
	}
	if c.Ngram <= 0 {
		return &ErrInvalidConfig{Field: "ngram", Reason: "must be positive"}
	}
	if c.MaxSeqLen <= 0 {
		return &ErrInvalidConfig{Field: "max_seq_len", Reason: "must be positive"}
	}
	if c.Payload < 0 {
		return &ErrInvalidConfig{Field: "payload", Reason: "must not be negative"}
	}
	if _, err := hashing.ParseStrategy(string(c.Seeding)); err != nil {
		return &ErrInvalidConfig{Field: "seeding", Reason: "must be one of hash, additive, skip, min", cause: err}
	}
	return nil
}

// LoadConfig reads a Config from a TOML file and validates it.
//
// Example file:
//
//	payload     = 0
//	salt_key    = 15485863
//	ngram       = 4
//	seed        = 42
//	seeding     = "hash"
//	max_seq_len = 1024
func LoadConfig(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

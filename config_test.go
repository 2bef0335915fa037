package wmgo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wmgo/hashing"
)

func TestConfig_Validate(t *testing.T) {
	valid := testConfig()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing salt_key", func(c *Config) { c.SaltKey = 0 }, "salt_key"},
		{"zero ngram", func(c *Config) { c.Ngram = 0 }, "ngram"},
		{"negative ngram", func(c *Config) { c.Ngram = -1 }, "ngram"},
		{"zero max_seq_len", func(c *Config) { c.MaxSeqLen = 0 }, "max_seq_len"},
		{"negative payload", func(c *Config) { c.Payload = -1 }, "payload"},
		{"bad seeding", func(c *Config) { c.Seeding = "fnv" }, "seeding"},
		{"empty seeding", func(c *Config) { c.Seeding = "" }, "seeding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			var cerr *ErrInvalidConfig
			require.ErrorAs(t, cfg.Validate(), &cerr)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wm.toml")
	data := `
payload     = 2
salt_key    = 15485863
ngram       = 4
seed        = 42
seeding     = "min"
max_seq_len = 512
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Payload)
	assert.Equal(t, uint64(15485863), cfg.SaltKey)
	assert.Equal(t, 4, cfg.Ngram)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, hashing.StrategyMin, cfg.Seeding)
	assert.Equal(t, 512, cfg.MaxSeqLen)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("ngram = {"), 0o600))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	incomplete := filepath.Join(dir, "incomplete.toml")
	require.NoError(t, os.WriteFile(incomplete, []byte(`seeding = "hash"`), 0o600))
	_, err = LoadConfig(incomplete)
	var cerr *ErrInvalidConfig
	assert.ErrorAs(t, err, &cerr)
}

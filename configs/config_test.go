package configs

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/overlaynet/overlayd/pkg/test/assert"
)

func TestDefaultTemplate(t *testing.T) {
	cfg := Config{}
	assert.NilErr(t, Decode(DefaultTemplate, &cfg))
	assert.Equal(t, "etcd", cfg.MetaType)
	assert.Equal(t, "/overlayd/v1", cfg.EtcdPrefix)
	assert.Equal(t, time.Minute, cfg.MetaTimeout.Duration())
	assert.Equal(t, 5, cfg.ApplyMaxRetries)
}

func TestOverride(t *testing.T) {
	ss := `
log_level = "debug"
etcd_prefix = "/overlayd/test"
apply_retry_interval = "2s"
`
	cfg := Config{}
	_, err := toml.Decode(ss, &cfg)
	assert.NilErr(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/overlayd/test", cfg.EtcdPrefix)
	assert.Equal(t, 2*time.Second, cfg.ApplyRetryInterval.Duration())
}

func TestDump(t *testing.T) {
	cfg := Conf
	out, err := cfg.Dump()
	assert.NilErr(t, err)
	assert.True(t, len(out) > 0)
}

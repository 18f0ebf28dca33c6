package configs

import (
	"crypto/tls"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/pkg/v3/transport"

	"github.com/cockroachdb/errors"
)

// DefaultTemplate .
const DefaultTemplate = `
env = "dev"
bind_metrics_addr = "0.0.0.0:9617"
graceful_timeout = "20s"

meta_timeout = "1m"
meta_type = "etcd"

log_level = "info"

etcd_prefix = "/overlayd/v1"
etcd_endpoints = ["http://127.0.0.1:2379"]

apply_max_retries = 5
apply_retry_interval = "100ms"
`

// Conf .
var Conf = newDefault()

// Config .
type Config struct {
	Env             string `toml:"env"`
	BindMetricsAddr string `toml:"bind_metrics_addr"`

	GracefulTimeout Duration `toml:"graceful_timeout"`

	MetaTimeout Duration `toml:"meta_timeout"`
	MetaType    string   `toml:"meta_type"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	EtcdPrefix    string   `toml:"etcd_prefix"`
	EtcdEndpoints []string `toml:"etcd_endpoints"`
	EtcdUsername  string   `toml:"etcd_username"`
	EtcdPassword  string   `toml:"etcd_password"`
	EtcdCA        string   `toml:"etcd_ca"`
	EtcdKey       string   `toml:"etcd_key"`
	EtcdCert      string   `toml:"etcd_cert"`

	ApplyMaxRetries    int      `toml:"apply_max_retries"`
	ApplyRetryInterval Duration `toml:"apply_retry_interval"`
}

func newDefault() Config {
	var conf Config
	if err := Decode(DefaultTemplate, &conf); err != nil {
		panic(err)
	}
	return conf
}

// Dump .
func (c *Config) Dump() (string, error) {
	return Encode(c)
}

// Load .
func (c *Config) Load(files []string) error {
	for _, path := range files {
		if err := DecodeFile(path, c); err != nil {
			return errors.Wrapf(err, "load config %s failed", path)
		}
	}
	return nil
}

// MetaCtxTimeout .
func (c *Config) MetaCtxTimeout() time.Duration {
	return c.MetaTimeout.Duration()
}

// NewEtcdConfig .
func (c *Config) NewEtcdConfig() (etcdcnf clientv3.Config, err error) {
	etcdcnf.Endpoints = c.EtcdEndpoints
	etcdcnf.Username = c.EtcdUsername
	etcdcnf.Password = c.EtcdPassword
	etcdcnf.TLS, err = c.newEtcdTLSConfig()
	return
}

func (c *Config) newEtcdTLSConfig() (*tls.Config, error) {
	if len(c.EtcdCA) < 1 || len(c.EtcdKey) < 1 || len(c.EtcdCert) < 1 {
		return nil, nil //nolint:nilnil
	}

	return transport.TLSInfo{
		TrustedCAFile: c.EtcdCA,
		KeyFile:       c.EtcdKey,
		CertFile:      c.EtcdCert,
	}.ClientConfig()
}

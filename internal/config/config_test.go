package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "DB_DRIVER", "MYSQL_HOST", "REDIS_DB", "IDEMPOTENCY_TTL_SECONDS", "JWT_TTL_MINUTES", "DB_DEBUG"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.DBDriver != DriverMySQL {
		t.Fatalf("DBDriver = %q, want mysql", c.DBDriver)
	}
	if c.IdempotencyTTL() != 300*time.Second {
		t.Fatalf("IdempotencyTTL = %v", c.IdempotencyTTL())
	}
	if c.JWTTTL() != 24*time.Hour {
		t.Fatalf("JWTTTL = %v", c.JWTTTL())
	}
	if c.DBDebug {
		t.Fatal("DBDebug should default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")
	t.Setenv("DB_DEBUG", "true")

	c := Load()
	if c.DBDriver != DriverSQLite {
		t.Fatalf("DBDriver = %q, want sqlite", c.DBDriver)
	}
	if c.RedisDB != 3 || c.IdempTTLSecs != 60 || !c.DBDebug {
		t.Fatalf("unexpected overrides: %+v", c)
	}
	if !strings.HasPrefix(c.SQLiteDSN(), "file:/tmp/x.db?") || !strings.Contains(c.SQLiteDSN(), "_foreign_keys=on") {
		t.Fatalf("SQLiteDSN = %q", c.SQLiteDSN())
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			AppPort: "8080", DBDriver: DriverMySQL,
			MySQLHost: "db", MySQLPort: "3306", MySQLDB: "p", MySQLUser: "u",
			RedisAddr: "redis:6379", JWTSecret: testSecret, JWTTTLMinutes: 10,
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing port", func(c *Config) { c.AppPort = "" }},
		{"missing mysql host", func(c *Config) { c.MySQLHost = "" }},
		{"bad mysql port", func(c *Config) { c.MySQLPort = "not-a-port" }},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }},
		{"sqlite without path", func(c *Config) { c.DBDriver = DriverSQLite; c.SQLitePath = "" }},
		{"missing redis", func(c *Config) { c.RedisAddr = "" }},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }},
		{"zero ttl", func(c *Config) { c.JWTTTLMinutes = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{MySQLUser: "u", MySQLPass: "p", MySQLHost: "h", MySQLPort: "3307", MySQLDB: "d"}
	got := c.MySQLDSN()
	if !strings.HasPrefix(got, "u:p@tcp(h:3307)/d?") {
		t.Fatalf("MySQLDSN = %q", got)
	}
	if !strings.Contains(got, "parseTime=true") {
		t.Fatalf("MySQLDSN missing parseTime: %q", got)
	}
}

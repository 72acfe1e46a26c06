package database

import (
	"net"
	"strconv"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
)

// Config holds configuration for the database connection rows are bound from.
type Config struct {
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password" default:""`
	Name     string `mapstructure:"name" default:"binder"`
	// TimeoutSeconds bounds connection setup, reads and writes.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxOpenConns caps the pool; 0 means the driver default.
	MaxOpenConns int `mapstructure:"max_open_conns" default:"10"`
}

// Timeout returns the configured timeout, falling back to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DSN builds the MySQL data source name with the driver's own formatter,
// so credentials containing '@', ':' or '/' survive parsing unchanged.
func (c Config) DSN() string {
	timeout := c.Timeout()

	dc := mysqldriver.NewConfig()
	dc.User = c.User
	dc.Passwd = c.Password
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	dc.DBName = c.Name
	dc.ParseTime = true
	dc.Loc = time.Local
	dc.Timeout = timeout
	dc.ReadTimeout = timeout
	dc.WriteTimeout = timeout
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc.FormatDSN()
}

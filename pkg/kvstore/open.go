package kvstore

import (
	"context"
	"fmt"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Options is the backend selection read from configuration.
type Options struct {
	Driver     string
	Dir        string
	SQLitePath string
	Redis      RedisConfig
}

// Open builds the Store named by opt.Driver.
func Open(ctx context.Context, opt Options) (Store, error) {
	switch opt.Driver {
	case DriverFile, "":
		return NewFile(opt.Dir)
	case DriverSQLite:
		return NewSQLite(ctx, opt.SQLitePath)
	case DriverRedis:
		return NewRedis(ctx, opt.Redis)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("kvstore: unknown driver %q", opt.Driver)
	}
}

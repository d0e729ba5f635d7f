package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface the repositories and the battle guard depend on.
// Single node and cluster clients both satisfy it.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by commands on missing keys
const Nil = redis.Nil

package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	keyPort               = "PORT"
	keyHttpReadTimeout    = "HTTP_READ_TIMEOUT"
	keyHttpWriteTimeout   = "HTTP_WRITE_TIMEOUT"
	keyMongoScheme        = "MONGO_SCHEME"
	keyMongoHost          = "MONGO_HOST"
	keyMongoUser          = "MONGO_USER"
	keyMongoPass          = "MONGO_PASS"
	keyMongoDB            = "MONGO_DB"
	keyRedisAddr          = "REDIS_ADDR"
	keyRedisPassword      = "REDIS_PASSWORD"
	keyCorsAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	keyPlaygroundEnabled  = "PLAYGROUND_ENABLED"
	keyLogProduction      = "LOG_PRODUCTION"
)

// mongoOptions are appended to every MongoDB connection string.
const mongoOptions = "retryWrites=true&w=majority"

var global *config

func init() {
	c := &config{
		viper: viper.New(),
	}
	// No env prefix; MONGO_USER, MONGO_PASS and MONGO_DB are shared with
	// existing deployments.
	c.viper.AutomaticEnv()
	c.loadDefaults()
	global = c
}

type config struct {
	viper *viper.Viper
}

func (c *config) loadDefaults() {
	c.viper.SetDefault(keyPort, 4000)
	c.viper.SetDefault(keyHttpReadTimeout, 10*time.Second)
	c.viper.SetDefault(keyHttpWriteTimeout, 10*time.Second)
	c.viper.SetDefault(keyMongoScheme, "mongodb")
	c.viper.SetDefault(keyMongoHost, "localhost:27017")
	c.viper.SetDefault(keyMongoUser, "")
	c.viper.SetDefault(keyMongoPass, "")
	c.viper.SetDefault(keyMongoDB, "bookshelf")
	c.viper.SetDefault(keyRedisAddr, "")
	c.viper.SetDefault(keyRedisPassword, "")
	c.viper.SetDefault(keyCorsAllowedOrigins, "*")
	c.viper.SetDefault(keyPlaygroundEnabled, true)
	c.viper.SetDefault(keyLogProduction, false)
}

func Port() int {
	return global.viper.GetInt(keyPort)
}

func HttpReadTimeout() time.Duration {
	return global.viper.GetDuration(keyHttpReadTimeout)
}

func HttpWriteTimeout() time.Duration {
	return global.viper.GetDuration(keyHttpWriteTimeout)
}

// MongoDB is the name of the database holding the books collection.
func MongoDB() string {
	return global.viper.GetString(keyMongoDB)
}

// MongoURI composes the MongoDB connection string from the MONGO_*
// configuration values. Credentials are omitted when MONGO_USER is empty.
func MongoURI() string {
	uri := url.URL{
		Scheme:   global.viper.GetString(keyMongoScheme),
		Host:     global.viper.GetString(keyMongoHost),
		Path:     "/" + MongoDB(),
		RawQuery: mongoOptions,
	}
	if user := global.viper.GetString(keyMongoUser); user != "" {
		uri.User = url.UserPassword(user, global.viper.GetString(keyMongoPass))
	}
	return uri.String()
}

func RedisAddr() string {
	return global.viper.GetString(keyRedisAddr)
}

func RedisPassword() string {
	return global.viper.GetString(keyRedisPassword)
}

// EventsEnabled indicates if book events should be written to Redis.
func EventsEnabled() bool {
	return RedisAddr() != ""
}

// CorsAllowedOrigins splits the comma separated CORS_ALLOWED_ORIGINS value.
// Blank entries are dropped.
func CorsAllowedOrigins() []string {
	raw := strings.Split(global.viper.GetString(keyCorsAllowedOrigins), ",")
	origins := make([]string, 0, len(raw))
	for _, origin := range raw {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func PlaygroundEnabled() bool {
	return global.viper.GetBool(keyPlaygroundEnabled)
}

func LogProduction() bool {
	return global.viper.GetBool(keyLogProduction)
}

package config // package config loads application configuration from environment variables

import (
    "os" // os provides access to environment variables

    "github.com/joho/godotenv" // godotenv reads an optional .env file into the environment
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The struct is built once at startup and treated
// as immutable afterwards; it is passed by value into the components that
// need it, so no global configuration state exists.
type Config struct {
    Env    string // application environment label (e.g. "development", "production")
    Port   string // HTTP port to listen on
    Branch string // branch label reported on the status page and in metadata
    Debug  bool   // whether the framework runs in debug mode (derived from Env)
}

// Load reads configuration values from environment variables and returns a
// Config.  Every variable has a sensible default, so the service starts with
// no configuration at all.  A .env file in the working directory is loaded
// first when present; a missing file is not an error.
func Load() Config {
    _ = godotenv.Load()

    env := getenv("APP_ENV", "development")
    return Config{
        Env:    env,
        Port:   getenv("PORT", "8000"),
        Branch: getenv("BRANCH_NAME", "main"),
        Debug:  env == "development",
    }
}

// getenv retrieves the value of an environment variable, falling back to the
// provided default when the variable is unset or empty.
func getenv(key, def string) string {
    if v, ok := os.LookupEnv(key); ok && v != "" {
        return v
    }
    return def
}

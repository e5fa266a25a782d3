// Package config loads the application configuration.
//
// Configuration comes from environment variables, optionally seeded by a
// .env file (godotenv). Defaults are declared as struct tags on the partial
// config structs (server, storage, log) and registered in Viper through
// reflection, so every key is overridable via its upper-cased env name
// (storage.bucket -> STORAGE_BUCKET).
package config

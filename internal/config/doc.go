// Package config loads the environment-driven configuration shared by the
// devkit tools into one explicit Config struct.
//
// A local .env file is autoloaded (best-effort) via github.com/joho/godotenv
// before the environment is read, so per-machine settings can live next to
// the tools without being exported globally. The struct is loaded once at
// startup and passed by reference into each operation — nothing reads the
// environment ad hoc afterwards.
package config

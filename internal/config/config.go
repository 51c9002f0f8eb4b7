package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrUsage is returned when the positional arguments are wrong.
var ErrUsage = errors.New("usage: retail <dbname> <port> <user>")

// Password schemes accepted in PASSWORD_SCHEME.
const (
	SchemeBcrypt    = "bcrypt"
	SchemePlaintext = "plaintext"
)

// Config holds everything the session needs to connect and run.
type Config struct {
	DBName     string
	DBPort     int
	DBUser     string
	DBHost     string
	DBPassword string
	DBSSLMode  string

	PasswordScheme string
	StoreRadius    float64
	ClearScreen    bool
}

// Load reads positional args and environment. A .env file in the working
// directory is loaded first when it exists.
func Load(args []string) (Config, error) {
	if len(args) != 3 {
		return Config{}, ErrUsage
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(args, os.Getenv)
}

// FromEnv builds a Config from args and a getenv function.
func FromEnv(args []string, getenv func(string) string) (Config, error) {
	if len(args) != 3 {
		return Config{}, ErrUsage
	}
	port, err := strconv.Atoi(args[1])
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid port %q", args[1])
	}

	cfg := Config{
		DBName:         args[0],
		DBPort:         port,
		DBUser:         args[2],
		DBHost:         valueOr(getenv("DB_HOST"), "localhost"),
		DBPassword:     getenv("DB_PASSWORD"),
		DBSSLMode:      valueOr(getenv("DB_SSLMODE"), "disable"),
		PasswordScheme: strings.ToLower(valueOr(getenv("PASSWORD_SCHEME"), SchemeBcrypt)),
		StoreRadius:    30,
		ClearScreen:    true,
	}

	switch cfg.PasswordScheme {
	case SchemeBcrypt, SchemePlaintext:
	default:
		return Config{}, fmt.Errorf("unsupported PASSWORD_SCHEME %q", cfg.PasswordScheme)
	}

	if raw := getenv("STORE_RADIUS"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius < 0 || math.IsNaN(radius) {
			return Config{}, fmt.Errorf("invalid STORE_RADIUS %q", raw)
		}
		cfg.StoreRadius = radius
	}
	if raw := getenv("CLEAR_SCREEN"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CLEAR_SCREEN %q", raw)
		}
		cfg.ClearScreen = enabled
	}
	return cfg, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

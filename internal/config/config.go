package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries environment-derived defaults. Command-line flags override
// these per invocation; the environment lets a git alias carry settings
// without flag plumbing.
type Config struct {
	Logging Logging
	UI      UI
}

type Logging struct {
	FilePath string
	Trace    bool
}

type UI struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Wrap       bool
	Fuzzy      bool
}

const (
	envWidth      = "GIT_PICK_WIDTH"
	envHeight     = "GIT_PICK_HEIGHT"
	envShowFooter = "GIT_PICK_FOOTER"
	envVerbose    = "GIT_PICK_VERBOSE"
	envWrap       = "GIT_PICK_WRAP"
	envFuzzy      = "GIT_PICK_FUZZY"
	envTrace      = "GIT_PICK_TRACE"
	envLogFile    = "GIT_PICK_LOG_FILE"
)

// Load reads defaults from the process environment.
func Load() Config {
	return FromEnviron(os.Environ())
}

// FromEnviron allows tests to supply a specific environment.
func FromEnviron(environ []string) Config {
	env := parseEnv(environ)
	return Config{
		Logging: Logging{
			FilePath: envOrDefault(env, envLogFile, ""),
			Trace:    envOrBool(env, envTrace, false),
		},
		UI: UI{
			Width:      envOrInt(env, envWidth, 0),
			Height:     envOrInt(env, envHeight, 0),
			ShowFooter: envOrBool(env, envShowFooter, false),
			Verbose:    envOrBool(env, envVerbose, false),
			Wrap:       envOrBool(env, envWrap, false),
			Fuzzy:      envOrBool(env, envFuzzy, false),
		},
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

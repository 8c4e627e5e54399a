package config

import (
	"os"
	"strconv"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile returns the rotating log file path. File logging is disabled when
// it is empty.
func LogFile() string {
	return os.Getenv("LIGHTS_LOG_FILE")
}

// Seed returns the fixed seed for the session RNG when LIGHTS_SEED is set
// to an unsigned number.
func Seed() (uint64, bool) {
	raw, ok := os.LookupEnv("LIGHTS_SEED")
	if !ok {
		return 0, false
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

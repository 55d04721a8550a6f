// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var envLoaded = false

func LoadEnvFile() {
	if envLoaded {
		return
	}
	args := os.Args[1:]
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			envFile := args[i+1]
			fmt.Printf("Loading environment variables from file: %s\n", envFile)
			if err := loadEnvFrom(envFile); err != nil {
				fmt.Printf("Failed to load env file: %s\n", err)
			}
			envLoaded = true
			return
		}
	}
	envLoaded = true
}

func loadEnvFrom(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.Trim(strings.TrimSpace(parts[1]), `"`)
		os.Setenv(key, val)
	}
	return scanner.Err()
}

// GetEnv returns the value of key, or the first fallback when it is unset or empty.
func GetEnv(key string, fallback ...string) string {
	LoadEnvFile()
	if v := os.Getenv(key); v != "" {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

func GetEnvInt(key string, fallback int) int {
	v := GetEnv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		Logger.Warnf("Ignoring non-numeric %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return i
}

package env

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given dotenv file into the process
// environment. A missing file is not an error; variables already present in
// the environment always win.
func LoadEnv(path string) {
	_ = godotenv.Load(path)
}

func GetString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

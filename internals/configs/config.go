package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"quizbowl_backend/internals/constants"
)

var (
	DBFile              string
	SeedFile            string
	SampleSize          int
	ShuffleOptions      bool
	AdminPassword       string
	AdminPasswordBcrypt string
	CourseAllowlist     []string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] no .env file found, using system ENV")
	}

	DBFile = GetEnv("DB_FILE", "quizbowl.db")
	SeedFile = GetEnv("SEED_FILE", "internals/seeds/questions/data_questions.json")
	SampleSize = GetEnvInt("QUIZ_SAMPLE_SIZE", constants.DefaultSampleSize)
	ShuffleOptions = GetEnvBool("SHUFFLE_OPTIONS", false)
	AdminPassword = GetEnv("ADMIN_PASSWORD")
	AdminPasswordBcrypt = GetEnv("ADMIN_PASSWORD_BCRYPT")
	CourseAllowlist = splitList(GetEnv("COURSE_ALLOWLIST", strings.Join(constants.DefaultCourses, ",")))

	if AdminPassword == "" && AdminPasswordBcrypt == "" {
		log.Println("[Config] no admin credential set, the admin path is disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	raw := GetEnv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("[Config] %s=%q is not a valid number, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func GetEnvBool(key string, defaultValue bool) bool {
	raw := GetEnv(key)
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[Config] %s=%q is not a valid bool, using %v", key, raw, defaultValue)
		return defaultValue
	}
	return b
}

// splitList parses a comma-separated env value, dropping empty entries. An
// empty result means "no allow-list": every discovered course is offered.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

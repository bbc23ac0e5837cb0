package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	FirebaseProject            string
	FirebaseServiceAccountJSON string
	FirebaseServiceAccountPath string
	StorageBucket              string

	ConclusionCollection string
	ManagerCollection    string
	SnapshotCollection   string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	NoticeURL string

	JWTSecret    string
	JWTExpiry    int64
	SignedURLTTL time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		StorageBucket:              getEnv("STORAGE_BUCKET", ""),

		ConclusionCollection: getEnv("CONCLUSION_COLLECTION", "Conclusion"),
		ManagerCollection:    getEnv("MANAGER_COLLECTION", "Manager"),
		SnapshotCollection:   getEnv("SNAPSHOT_COLLECTION", "Reports"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "traffic"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		NoticeURL: getEnv("NOTICE_URL", ""),

		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:    getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		SignedURLTTL: getEnvAsDuration("SIGNED_URL_TTL", 10*time.Minute),
	}

	return config, nil
}

// DSN renders the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "mysql" {
		return c.DBUser + ":" + c.DBPassword +
			"@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName +
			"?charset=utf8mb4&parseTime=True&loc=Local"
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=Asia/Seoul"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ClockTime is a minute-granularity wall-clock point (machine-local zone).
type ClockTime struct {
	Hour   int
	Minute int
}

var (
	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	AppBaseURL string

	// Shift thresholds for the attendance classifier. The defaults mirror
	// the values the platform has always shipped with; override via env
	// until stakeholders confirm the intended schedule.
	ShiftStart      = ClockTime{Hour: 20, Minute: 0}
	ShiftLateCutoff = ClockTime{Hour: 20, Minute: 30}
	ShiftEnd        = ClockTime{Hour: 21, Minute: 0}
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminEmail = GetEnv("ADMIN_EMAIL")
	AdminPassword = GetEnv("ADMIN_PASSWORD")

	SMTPHost = GetEnv("SMTP_HOST", "smtp.gmail.com")
	SMTPPort = getEnvInt("SMTP_PORT", 587)
	SMTPUser = GetEnv("EMAIL_USER")
	SMTPPass = GetEnv("EMAIL_PASS")
	MailFrom = GetEnv("MAIL_FROM", SMTPUser)

	AppBaseURL = GetEnv("APP_BASE_URL", "http://localhost:3000")

	ShiftStart = parseClock(GetEnv("SHIFT_START"), ShiftStart)
	ShiftLateCutoff = parseClock(GetEnv("SHIFT_LATE_CUTOFF"), ShiftLateCutoff)
	ShiftEnd = parseClock(GetEnv("SHIFT_END"), ShiftEnd)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	if SMTPUser == "" {
		log.Println("⚠️ EMAIL_USER is not set, outgoing mail will fail")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("⚠️ %s=%q is not a number, using %d", key, v, def)
	}
	return def
}

// parseClock reads "HH:MM"; invalid input keeps the fallback.
func parseClock(s string, fallback ClockTime) ClockTime {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		log.Printf("⚠️ invalid clock value %q, keeping %02d:%02d", s, fallback.Hour, fallback.Minute)
		return fallback
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		log.Printf("⚠️ invalid clock value %q, keeping %02d:%02d", s, fallback.Hour, fallback.Minute)
		return fallback
	}
	return ClockTime{Hour: h, Minute: m}
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

var (
	MAIN_ROUTES   string
	APP_PORT      string
	JWTSecret     string
	JWTExpiration int

	AdminUser     string
	AdminPassword string

	// Storage backend: gsheets, excel, mysql, postgres, mssql
	StoreDriver     string
	SheetID         string
	CredentialsFile string
	ExcelFile       string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SMTPHost       string
	SMTPPort       int
	SMTPSender     string
	SMTPPassword   string
	SMTPRecipients []string

	allowedOrigins map[string]bool
)

// LoadConfig đọc file .env và khởi tạo biến cấu hình
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Server Configuration
	MAIN_ROUTES = getEnv("MAIN_ROUTES", "/api/v1")
	APP_PORT = getEnv("APP_PORT", "9000")

	// JWT Configuration
	JWTSecret = getEnv("JWT_SECRET", "billxe_sheet_key_secret")
	JWTExpiration = getEnvAsInt("JWT_EXPIRATION", 86400)

	AdminUser = getEnv("ADMIN_USER", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "admin")

	// Storage Configuration
	StoreDriver = getEnv("STORE_DRIVER", "gsheets")
	SheetID = getEnv("SHEET_ID", "1SbK_vKUJV7dTzDPmxmlEM-7MXBoh6guGRKU4dWvAiw4")
	CredentialsFile = getEnv("GOOGLE_APPLICATION_CREDENTIALS", "")
	ExcelFile = getEnv("EXCEL_FILE", "billxe.xlsx")

	DBHost = getEnv("DB_HOST", "localhost")
	DBPort = getEnv("DB_PORT", "3306")
	DBUser = getEnv("DB_USER", "golang")
	DBPassword = getEnv("DB_PASSWORD", "")
	DBName = getEnv("DB_NAME", "billxe")

	// Mail Configuration
	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvAsInt("SMTP_PORT", 465)
	SMTPSender = getEnv("SMTP_SENDER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	SMTPRecipients = splitAndTrim(getEnv("SMTP_RECIPIENTS", ""))

	loadAllowedOrigins()
}

// getEnv đọc environment variable với giá trị mặc định
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt đọc environment variable như một số nguyên
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func loadAllowedOrigins() {
	allowedOrigins = make(map[string]bool)
	originsStr := getEnv("ALLOWED_ORIGINS", "")

	if originsStr == "" {
		// Default origins nếu không có trong .env
		allowedOrigins = map[string]bool{
			"http://127.0.0.1:3000": true,
		}
		return
	}

	for _, origin := range splitAndTrim(originsStr) {
		allowedOrigins[origin] = true
	}
}

func SetupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if allowedOrigins[origin] {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			c.Set("Access-Control-Allow-Credentials", "true")
		}

		// Handle preflight request
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})
}

package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// VietQR account used to build the payment QR image URL on invoices.
	VietQRBankID        string
	VietQRAccountNumber string
	VietQRAccountName   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	VietQRBankID = GetEnv("VIETQR_BANK_ID", "MB")
	VietQRAccountNumber = GetEnv("VIETQR_ACCOUNT_NUMBER")
	VietQRAccountName = GetEnv("VIETQR_ACCOUNT_NAME")

	if VietQRAccountNumber == "" {
		log.Println("⚠️ VIETQR_ACCOUNT_NUMBER not set, invoice QR links will be incomplete")
	} else {
		log.Println("✅ VietQR account loaded.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

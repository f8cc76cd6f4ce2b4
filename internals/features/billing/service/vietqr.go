// file: internals/features/billing/service/vietqr.go
package service

import (
	"fmt"
	"net/url"
	"strings"
)

// The QR is rendered by the VietQR image endpoint; this service only builds
// the URL and never fetches it.
const vietQRBase = "https://img.vietqr.io/image"

// PaymentQRURL builds the hosted QR image URL for a bank transfer.
func PaymentQRURL(bankID, accountNumber string, amount int64, memo string) string {
	// percent-encode spaces, the image endpoint does not accept '+'
	encoded := strings.ReplaceAll(url.QueryEscape(memo), "+", "%20")
	return fmt.Sprintf("%s/%s-%s-compact.png?amount=%d&addInfo=%s",
		vietQRBase, bankID, accountNumber, amount, encoded)
}

// TuitionMemo is the transfer note parents see in their banking app.
func TuitionMemo(month, studentName string) string {
	return fmt.Sprintf("HOC PHI THANG %s %s", month, strings.ToUpper(studentName))
}

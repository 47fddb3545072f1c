// file: internals/features/enrollment/payments/service/midtrans.go
package service

import (
	"crypto/sha512"
	"encoding/hex"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	enrollmentModel "helpdesku_backend/internals/features/enrollment/enrollments/model"
)

var SnapClient snap.Client

// InitMidtrans is called once at bootstrap (sandbox env).
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken builds a hosted checkout for an unpaid enrollment.
// Midtrans amounts are integral, so the fee is rounded to whole units.
func GenerateSnapToken(e *enrollmentModel.EnrollmentModel, email string) (string, string, error) {
	gross := e.EnrollmentProductPrice
	if e.EnrollmentFee != nil {
		gross = *e.EnrollmentFee
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  e.EnrollmentID.String(),
			GrossAmt: gross.Round(0).IntPart(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: e.EnrollmentCustomerName,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// VerifyNotificationSignature checks the provider's sha512 signature:
// hex(sha512(order_id + status_code + gross_amount + server_key)).
func VerifyNotificationSignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	if signature == "" {
		return false
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signature
}

package entities

import "fmt"

// Single-table key layout. These formats are query contracts (range
// scans and GSI lookups depend on them), so they never change shape.
const (
	apartmentKeyPrefix = "APARTMENT#"
	userKeyPrefix      = "USER#"
	contractKeyPrefix  = "CONTRACT#"
	paymentKeyPrefix   = "PAYMENT#"

	userProfileSortKey  = "PROFILE"
	apartmentSortKey    = "APARTMENT"
	PaymentSortKeyStart = paymentKeyPrefix
)

func ApartmentPartitionKey(unitCode string) string {
	return apartmentKeyPrefix + unitCode
}

func UserPartitionKey(phoneE164 string) string {
	return userKeyPrefix + phoneE164
}

func ContractPartitionKey(contractID string) string {
	return contractKeyPrefix + contractID
}

func paymentSortKey(createdAtMillis int64, paymentID string) string {
	return fmt.Sprintf("%s%d#%s", paymentKeyPrefix, createdAtMillis, paymentID)
}

package entity

import (
	"time"

	"github.com/lib/pq"
)

// PredictionStatus is the lifecycle status reported by the asynchronous generation provider.
type PredictionStatus string

const (
	PredictionStarting   PredictionStatus = "starting"
	PredictionProcessing PredictionStatus = "processing"
	PredictionSucceeded  PredictionStatus = "succeeded"
	PredictionFailed     PredictionStatus = "failed"
	PredictionCanceled   PredictionStatus = "canceled"
)

// Terminal reports whether no further status change will happen.
func (s PredictionStatus) Terminal() bool {
	return s == PredictionSucceeded || s == PredictionFailed || s == PredictionCanceled
}

// AudioAssetRecord is the persisted result of a completed audio job.
type AudioAssetRecord struct {
	ID        string           `json:"id" gorm:"primaryKey;type:varchar(64)" firestore:"id"`
	RequestID string           `json:"requestId" gorm:"type:varchar(32);index" firestore:"requestId"`
	AssetName string           `json:"assetName" gorm:"type:varchar(255)" firestore:"assetName"`
	AudioURL  string           `json:"audioUrl" gorm:"type:text" firestore:"audioUrl"`
	Model     string           `json:"model" gorm:"type:varchar(255)" firestore:"model"`
	Status    PredictionStatus `json:"status" gorm:"type:varchar(32)" firestore:"status"`
	Outputs   pq.StringArray   `json:"outputs" gorm:"type:text[]" firestore:"outputs"`
	CreatedAt time.Time        `json:"createdAt" firestore:"createdAt"`
}

// TableName is the gorm table of AudioAssetRecord.
func (AudioAssetRecord) TableName() string {
	return "audio_assets"
}

// PurchaseRecord is a completed checkout.
type PurchaseRecord struct {
	ID            string       `json:"id" gorm:"primaryKey;type:varchar(255)" firestore:"id"`
	CustomerEmail string       `json:"customerEmail" gorm:"type:varchar(255)" firestore:"customerEmail"`
	CustomerID    string       `json:"customerId" gorm:"type:varchar(255)" firestore:"customerId"`
	Mode          CheckoutMode `json:"mode" gorm:"type:varchar(32)" firestore:"mode"`
	AmountTotal   int64        `json:"amountTotal" firestore:"amountTotal"`
	Currency      string       `json:"currency" gorm:"type:varchar(8)" firestore:"currency"`
	PaymentStatus string       `json:"paymentStatus" gorm:"type:varchar(32)" firestore:"paymentStatus"`
	CreatedAt     time.Time    `json:"createdAt" firestore:"createdAt"`
}

// TableName is the gorm table of PurchaseRecord.
func (PurchaseRecord) TableName() string {
	return "purchases"
}

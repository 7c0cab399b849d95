package messaging

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/kvstore"
)

const recordsKey = "sentNotifications"

// Method identifies the delivery channel of a send record
type Method string

const (
	MethodEmail Method = "email"
	MethodSMS   Method = "sms"
)

// SendRecord is one accepted notification send
type SendRecord struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Method      Method    `json:"method"`
	Target      string    `json:"target"`
	Subject     string    `json:"subject"`
	SentAt      time.Time `json:"sent_at"`
}

// RecordLog persists the notification send history in the kvstore
type RecordLog struct {
	kv     kvstore.Store
	logger *zap.Logger
}

// NewRecordLog creates a new send-history log
func NewRecordLog(kv kvstore.Store, logger *zap.Logger) *RecordLog {
	return &RecordLog{
		kv:     kv,
		logger: logger,
	}
}

// Append adds a record for an accepted send, assigning it an id and
// timestamp. History corruption degrades to an empty log rather than
// failing the send.
func (l *RecordLog) Append(record SendRecord) (SendRecord, error) {
	record.ID = uuid.NewString()
	record.SentAt = time.Now().UTC()

	records := l.All()
	records = append(records, record)

	if err := l.kv.Put(recordsKey, records); err != nil {
		return SendRecord{}, err
	}
	return record, nil
}

// All returns the send history, newest last
func (l *RecordLog) All() []SendRecord {
	var records []SendRecord
	found, err := l.kv.Get(recordsKey, &records)
	if err != nil {
		l.logger.Warn("Discarding unreadable send history", zap.Error(err))
		return []SendRecord{}
	}
	if !found || records == nil {
		return []SendRecord{}
	}
	return records
}

package model

/* ===================== Model ===================== */

// Counter holds the last-issued value of a named sequence. One row per
// entity type (ticket_number, customer_number, ...). Rows are only ever
// touched through the atomic upsert in the sequence service.
type Counter struct {
	CounterName string `gorm:"column:counter_name;type:varchar(64);primaryKey" json:"counter_name"`
	CounterSeq  int64  `gorm:"column:counter_seq;not null;default:0" json:"counter_seq"`
}

func (Counter) TableName() string { return "counters" }

package models

// KVEntry is the single table behind the database-backed key-value store.
// Each key holds the full JSON-encoded list for one record type.
type KVEntry struct {
	Key   string `json:"key" gorm:"primaryKey;size:64"`
	Value []byte `json:"value" gorm:"type:json"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

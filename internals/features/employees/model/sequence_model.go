package model

// SequenceModel is a durable named counter. Employee IDs are minted from it
// inside a transaction so restarts and concurrent signups cannot reuse a
// value.
type SequenceModel struct {
	Name  string `gorm:"primaryKey;size:32" json:"name"`
	Value int64  `gorm:"not null" json:"value"`
}

func (SequenceModel) TableName() string {
	return "sequences"
}

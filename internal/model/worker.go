package model

type WorkerStatus string

const (
	WorkerPending  WorkerStatus = "Pending Login"
	WorkerActive   WorkerStatus = "Active"
	WorkerInactive WorkerStatus = "Inactive"
)

// Worker is a managed user record. The invite code is mailed to the worker
// before the row exists; creation is aborted if the mail call fails.
// swagger:model Worker
type Worker struct {
	BaseModel
	Name   string       `gorm:"size:100;not null" json:"name"`
	Email  string       `gorm:"size:100;unique;not null" json:"email"`
	Phone  string       `gorm:"size:30" json:"phone"`
	Status WorkerStatus `gorm:"size:20;default:'Pending Login'" json:"status"`
	Code   string       `gorm:"size:6;uniqueIndex;not null" json:"code"`
}

func (Worker) TableName() string {
	return "workers"
}

package model

import "time"

// SyncRun is one row of sync history.
type SyncRun struct {
	ID         int64 `gorm:"primaryKey"`
	StartedAt  time.Time
	FinishedAt time.Time
	Total      int
	Synced     int
	Downloaded int
	Status     string `gorm:"size:16"`
	Message    string
}

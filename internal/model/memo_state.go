package model

import "time"

// MemoState is the last-seen state of one remote memo and the document
// path it was mirrored to. Name is the remote's stable id.
type MemoState struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"uniqueIndex;size:128"`
	UID        string `gorm:"size:128"`
	Content    string
	Visibility string `gorm:"size:32"`
	Pinned     bool
	CreateTime string `gorm:"size:64"`
	UpdateTime string `gorm:"size:64"`
	DocPath    string
	SyncedAt   time.Time
}

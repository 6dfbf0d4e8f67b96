package dao

import (
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm/clause"

	"github.com/haierkeys/memos-mirror/internal/memos"
	"github.com/haierkeys/memos-mirror/internal/model"
)

// CreateRun opens a new history row and returns its id.
func (d *Dao) CreateRun(startedAt time.Time) (int64, error) {
	run := &model.SyncRun{StartedAt: startedAt, Status: "running"}
	if err := d.db.Create(run).Error; err != nil {
		return 0, err
	}
	return run.ID, nil
}

// FinishRun closes a history row with the final counters.
func (d *Dao) FinishRun(id int64, total, synced, downloaded int, status, message string) error {
	return d.db.Model(&model.SyncRun{}).Where("id = ?", id).Updates(map[string]interface{}{
		"finished_at": time.Now(),
		"total":       total,
		"synced":      synced,
		"downloaded":  downloaded,
		"status":      status,
		"message":     message,
	}).Error
}

// UpsertMemoState records the mirrored state of one memo, keyed by the
// remote's stable name.
func (d *Dao) UpsertMemoState(m *memos.Memo, docPath string) error {
	state := &model.MemoState{}
	if err := copier.Copy(state, m); err != nil {
		return err
	}
	state.DocPath = docPath
	state.SyncedAt = time.Now()

	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(state).Error
}

// RecentRuns returns the latest n history rows, newest first.
func (d *Dao) RecentRuns(n int) ([]model.SyncRun, error) {
	var runs []model.SyncRun
	err := d.db.Order("id DESC").Limit(n).Find(&runs).Error
	return runs, err
}

// MemoStates returns every recorded memo state.
func (d *Dao) MemoStates() ([]model.MemoState, error) {
	var states []model.MemoState
	err := d.db.Order("name").Find(&states).Error
	return states, err
}

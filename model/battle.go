package model

import (
	"time"

	"gorm.io/datatypes"
)

// BattleRecord is one finished battle in the replay archive: everything
// needed to run it again from scratch, plus the outcome it reached.
type BattleRecord struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	BattleID  string         `gorm:"uniqueIndex:idx_battle_id;size:36;not null" json:"battle_id"`
	Mode      string         `gorm:"size:8;not null" json:"mode"`
	Seed      datatypes.JSON `json:"seed"`
	Settings  datatypes.JSON `json:"settings"`
	Team1     datatypes.JSON `json:"team1"`
	Team2     datatypes.JSON `json:"team2"`
	Choices   datatypes.JSON `json:"choices"`
	Steps     int            `json:"steps"`
	Turns     int            `json:"turns"`
	Result    uint8          `json:"result"`
	Outcome   string         `gorm:"index:idx_battle_outcome;size:8;not null" json:"outcome"`
	Verified  bool           `json:"verified"`
	CreatedAt time.Time      `gorm:"index:idx_battle_created;autoCreateTime:milli" json:"created_at"`
}

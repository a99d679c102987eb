package models

import "time"

// Closed value sets for the end-of-day check-in. The client only ever
// sends values from these lists; the server rejects anything else.
var (
	CheckInPercents = []int{0, 25, 50, 75, 100}
	DifficultyTags  = []string{"odak", "stres", "konu", "erteleme", "yok"}
	CorrectionTags  = []string{"hedef_gozden_gecir", "erken_basla", "duzenli_calis", "telefon_uzak", "duzeltme_yok"}
)

// CheckIn is the end-of-day self evaluation, at most one per student
// per calendar day.
type CheckIn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"not null;uniqueIndex:idx_checkin_student_date" json:"student_id"`
	Date      time.Time `gorm:"type:date;uniqueIndex:idx_checkin_student_date" json:"date"`

	CompletionPct int    `gorm:"not null" json:"completion_pct"`
	DifficultyTag string `gorm:"size:30;not null" json:"difficulty_tag"`
	CorrectionTag string `gorm:"size:30;not null" json:"correction_tag"`

	CreatedAt time.Time `json:"created_at"`
}

func ValidCheckInPct(v int) bool {
	for _, p := range CheckInPercents {
		if v == p {
			return true
		}
	}
	return false
}

func ValidDifficultyTag(v string) bool { return containsString(DifficultyTags, v) }
func ValidCorrectionTag(v string) bool { return containsString(CorrectionTags, v) }

func containsString(set []string, v string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

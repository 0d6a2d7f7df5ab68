// file: internals/features/training/sessions/service/policy.go
package service

import (
	"time"

	"kursusku_backend/internals/configs"
)

// LifecyclePolicy memusatkan semua angka jendela waktu & panjang minimum.
// Cutoff postpone dan ganti-mode SENGAJA satu konstanta yang sama
// (ModificationCutoff), bukan dua magic number terpisah.
type LifecyclePolicy struct {
	StartEarlyWindow   time.Duration // sesi boleh dimulai sekian sebelum jadwal
	LateStartWarnAfter time.Duration // mulai telat lebih dari ini → warning (bukan error)
	ModificationCutoff time.Duration // postpone / ganti mode ditolak di dalam jendela ini
	MinReasonLength    int
	MinTopicsLength    int
}

func DefaultLifecyclePolicy() LifecyclePolicy {
	return LifecyclePolicy{
		StartEarlyWindow:   30 * time.Minute,
		LateStartWarnAfter: 15 * time.Minute,
		ModificationCutoff: 2 * time.Hour,
		MinReasonLength:    10,
		MinTopicsLength:    10,
	}
}

// LifecyclePolicyFromEnv membaca override dari ENV (opsional).
func LifecyclePolicyFromEnv() LifecyclePolicy {
	p := DefaultLifecyclePolicy()
	p.StartEarlyWindow = configs.GetEnvDuration("SESSION_START_EARLY_WINDOW", p.StartEarlyWindow)
	p.LateStartWarnAfter = configs.GetEnvDuration("SESSION_LATE_START_WARN_AFTER", p.LateStartWarnAfter)
	p.ModificationCutoff = configs.GetEnvDuration("SESSION_MODIFICATION_CUTOFF", p.ModificationCutoff)
	p.MinReasonLength = configs.GetEnvInt("SESSION_MIN_REASON_LENGTH", p.MinReasonLength)
	p.MinTopicsLength = configs.GetEnvInt("SESSION_MIN_TOPICS_LENGTH", p.MinTopicsLength)
	return p
}

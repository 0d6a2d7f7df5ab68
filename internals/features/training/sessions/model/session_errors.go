// file: internals/features/training/sessions/model/session_errors.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

/*
=========================================================

	Taksonomi error domain sesi.
	Semua failure yang "diharapkan" berupa typed error supaya
	caller bisa membedakan salah-status vs terlambat-bertindak
	vs bentrok — bukan error generik.
	=========================================================
*/

// NotFoundError: referensi rombel/pola/sesi tidak ada.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s tidak ditemukan", e.Entity, e.ID)
}

// InvalidTransitionError: operasi lifecycle dipanggil dari status yang salah.
type InvalidTransitionError struct {
	Op   string
	From SessionStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("operasi %s tidak diizinkan dari status %s", e.Op, e.From)
}

// TimingWindowError: operasi dipanggil di luar jendela waktunya.
type TimingWindowError struct {
	Op       string
	Deadline time.Time
	Now      time.Time
}

func (e *TimingWindowError) Error() string {
	return fmt.Sprintf("operasi %s di luar jendela waktu (batas %s, sekarang %s)",
		e.Op, e.Deadline.Format(time.RFC3339), e.Now.Format(time.RFC3339))
}

// ValidationError: field wajib kosong/terlalu pendek, atau rentang waktu invalid.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validasi gagal pada %s (%s): %s", e.Field, e.Rule, e.Message)
}

// ConflictError: ruangan/pengajar sudah terpakai pada rentang yang overlap.
// Membawa detail sesi yang bentrok supaya pesan ke user actionable.
type ConflictError struct {
	Resource  string // "room" | "teacher"
	SessionID uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("bentrok %s dengan sesi %s (%s - %s)",
		e.Resource, e.SessionID,
		e.StartsAt.Format(time.RFC3339), e.EndsAt.Format(time.RFC3339))
}

// Package ledger implements the jar/XP accounting rules: a running XP
// balance per jar, sealing at the target, and rollover of overflow into a
// freshly created jar. All functions are pure state transitions over the
// passed-in values; persistence is the caller's concern.
package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"taskjar/domain/models"
)

var (
	ErrTaskAlreadyCompleted = errors.New("task is already completed")
	ErrNoActiveJar          = errors.New("no active jar")
	ErrJarSealed            = errors.New("jar is already sealed")
	ErrInvalidTarget        = errors.New("jar target must be positive")
	ErrInvalidXP            = errors.New("task xp value must be positive")
)

// Config is the ledger configuration injected into each operation. TargetXP
// is the *currently configured* jar target, applied to jars created by
// rollover; already-sealed jars keep the target they sealed at.
type Config struct {
	TargetXP int
}

// Result describes the outcome of applying one completion (or retarget).
type Result struct {
	// Active is the active jar after the operation.
	Active *models.Jar
	// Sealed lists jars sealed by this operation, in seal order.
	Sealed []*models.Jar
	// Created lists jars created by rollover, in creation order. The last
	// entry equals Active when any were created.
	Created []*models.Jar
}

// Apply marks task completed at now and credits its XP to the active jar.
// When the balance reaches the jar's target the jar seals at exactly the
// target and a new jar absorbs the overflow; the seal check loops so a
// single completion whose XP exceeds the configured target cascades through
// as many seals as needed.
func Apply(active *models.Jar, task *models.Task, now time.Time, cfg Config) (*Result, error) {
	if cfg.TargetXP <= 0 {
		return nil, ErrInvalidTarget
	}
	if active == nil {
		return nil, ErrNoActiveJar
	}
	if active.Completed {
		return nil, ErrJarSealed
	}
	if task.Completed {
		return nil, ErrTaskAlreadyCompleted
	}
	if task.XPValue <= 0 {
		return nil, ErrInvalidXP
	}

	task.Completed = true
	completedAt := now
	task.CompletedAt = &completedAt

	// The task contributes to the jar that was active at completion time,
	// even when its XP overflows into later jars.
	active.TaskIDs = append(active.TaskIDs, task.ID)

	res := &Result{Active: active}
	sealLoop(res, active.CurrentXP+task.XPValue, now, cfg)
	return res, nil
}

// Retarget applies a changed jar-target setting to the active jar. Sealed
// jars are never retroactively altered. If the jar's progress already meets
// the lowered target it seals immediately, rolling the excess forward.
func Retarget(active *models.Jar, newTarget int, now time.Time) (*Result, error) {
	if newTarget <= 0 {
		return nil, ErrInvalidTarget
	}
	if active == nil {
		return nil, ErrNoActiveJar
	}
	if active.Completed {
		return nil, ErrJarSealed
	}

	active.TargetXP = newTarget
	res := &Result{Active: active}
	sealLoop(res, active.CurrentXP, now, Config{TargetXP: newTarget})
	return res, nil
}

// NewJar creates a fresh empty active jar for userID.
func NewJar(userID uuid.UUID, cfg Config, now time.Time) *models.Jar {
	return &models.Jar{
		ID:        uuid.New(),
		UserID:    userID,
		CurrentXP: 0,
		TargetXP:  cfg.TargetXP,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ActiveJar returns the single uncompleted jar from jars, or nil.
func ActiveJar(jars []*models.Jar) *models.Jar {
	for _, j := range jars {
		if !j.Completed {
			return j
		}
	}
	return nil
}

// sealLoop settles balance into the active jar of res, sealing and rolling
// over until the invariant currentXP < targetXP holds again.
func sealLoop(res *Result, balance int, now time.Time, cfg Config) {
	jar := res.Active
	for balance >= jar.TargetXP {
		overflow := balance - jar.TargetXP

		jar.CurrentXP = jar.TargetXP // seal exactly at the cap, never overshoot
		jar.Completed = true
		sealedAt := now
		jar.CompletedAt = &sealedAt
		jar.UpdatedAt = now
		res.Sealed = append(res.Sealed, jar)

		next := NewJar(jar.UserID, cfg, now)
		res.Created = append(res.Created, next)

		jar = next
		balance = overflow
	}

	jar.CurrentXP = balance
	jar.UpdatedAt = now
	res.Active = jar
}

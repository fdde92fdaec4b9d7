package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"taskjar/domain/models"
)

var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestJar(currentXP, targetXP int) *models.Jar {
	return &models.Jar{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CurrentXP: currentXP,
		TargetXP:  targetXP,
	}
}

func newTestTask(xp int) *models.Task {
	return &models.Task{
		ID:         uuid.New(),
		Name:       "test task",
		Difficulty: models.DifficultyStandard,
		Priority:   models.PriorityScheduled,
		XPValue:    xp,
	}
}

func TestApplyWithoutSeal(t *testing.T) {
	jar := newTestJar(40, 100)
	task := newTestTask(10)

	res, err := Apply(jar, task, testNow, Config{TargetXP: 100})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if !task.Completed || task.CompletedAt == nil {
		t.Fatalf("task not marked completed: %+v", task)
	}
	if res.Active != jar {
		t.Fatalf("active jar changed without a seal")
	}
	if jar.CurrentXP != 50 {
		t.Fatalf("CurrentXP=%d, want 50", jar.CurrentXP)
	}
	if len(res.Sealed) != 0 || len(res.Created) != 0 {
		t.Fatalf("unexpected seal: sealed=%d created=%d", len(res.Sealed), len(res.Created))
	}
	if len(jar.TaskIDs) != 1 || jar.TaskIDs[0] != task.ID {
		t.Fatalf("task not recorded on jar: %v", jar.TaskIDs)
	}
}

// Scenario from the rollover rules: target 100, jar at 92, task worth 15.
func TestApplySealAndRollover(t *testing.T) {
	jar := newTestJar(92, 100)
	task := newTestTask(15)

	res, err := Apply(jar, task, testNow, Config{TargetXP: 100})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if len(res.Sealed) != 1 {
		t.Fatalf("sealed=%d, want 1", len(res.Sealed))
	}
	sealed := res.Sealed[0]
	if !sealed.Completed || sealed.CompletedAt == nil {
		t.Fatalf("sealed jar not completed: %+v", sealed)
	}
	if sealed.CurrentXP != 100 {
		t.Fatalf("sealed CurrentXP=%d, want exactly 100", sealed.CurrentXP)
	}
	if len(res.Created) != 1 {
		t.Fatalf("created=%d, want 1", len(res.Created))
	}
	if res.Active != res.Created[0] {
		t.Fatalf("active jar is not the created jar")
	}
	if res.Active.CurrentXP != 7 {
		t.Fatalf("overflow=%d, want 7", res.Active.CurrentXP)
	}
	if res.Active.TargetXP != 100 {
		t.Fatalf("new jar target=%d, want 100", res.Active.TargetXP)
	}
	// Task belongs to the jar that was active when it completed.
	if len(sealed.TaskIDs) != 1 || sealed.TaskIDs[0] != task.ID {
		t.Fatalf("task not on sealed jar: %v", sealed.TaskIDs)
	}
	if len(res.Active.TaskIDs) != 0 {
		t.Fatalf("new jar should start with empty task set")
	}
}

// Overflow conservation: B.currentXP == (A.currentXP + xp) - A.targetXP.
func TestOverflowConservation(t *testing.T) {
	cases := []struct {
		before, target, xp int
	}{
		{99, 100, 1},
		{50, 100, 50},
		{92, 100, 15},
		{0, 50, 63}, // oversized task, still >= 0 after one seal of the chain
	}
	for _, tc := range cases {
		jar := newTestJar(tc.before, tc.target)
		task := newTestTask(tc.xp)

		res, err := Apply(jar, task, testNow, Config{TargetXP: tc.target})
		if err != nil {
			t.Fatalf("Apply(%+v): %v", tc, err)
		}
		if len(res.Sealed) == 0 {
			t.Fatalf("Apply(%+v): expected a seal", tc)
		}
		first := res.Created[0]
		wantOverflow := (tc.before + tc.xp) - tc.target
		// The first created jar receives the overflow; it may itself have
		// sealed in a cascade, in which case its recorded XP is its target.
		got := first.CurrentXP
		if first.Completed {
			got = first.TargetXP
		}
		if wantOverflow < got {
			t.Fatalf("Apply(%+v): created jar XP %d exceeds overflow %d", tc, got, wantOverflow)
		}
		if res.Active.CurrentXP < 0 {
			t.Fatalf("Apply(%+v): negative balance %d", tc, res.Active.CurrentXP)
		}
	}
}

// A single completion whose XP spans several targets must cascade through
// multiple seals rather than overshoot-store.
func TestApplyCascadeSeals(t *testing.T) {
	jar := newTestJar(40, 50)
	task := newTestTask(180) // 40+180=220 -> seals at 50, 50, 50, 50, leaves 20

	res, err := Apply(jar, task, testNow, Config{TargetXP: 50})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Sealed) != 4 {
		t.Fatalf("sealed=%d, want 4", len(res.Sealed))
	}
	for _, s := range res.Sealed {
		if s.CurrentXP != s.TargetXP {
			t.Fatalf("sealed jar stored %d, want exactly %d", s.CurrentXP, s.TargetXP)
		}
	}
	if res.Active.CurrentXP != 20 {
		t.Fatalf("final balance=%d, want 20", res.Active.CurrentXP)
	}
	if res.Active.Completed {
		t.Fatalf("final jar must be active")
	}
}

func TestApplyRejectsCompletedTask(t *testing.T) {
	jar := newTestJar(0, 100)
	task := newTestTask(10)
	task.Completed = true

	if _, err := Apply(jar, task, testNow, Config{TargetXP: 100}); err != ErrTaskAlreadyCompleted {
		t.Fatalf("err=%v, want ErrTaskAlreadyCompleted", err)
	}
}

func TestApplyRejectsSealedJar(t *testing.T) {
	jar := newTestJar(100, 100)
	jar.Completed = true

	if _, err := Apply(jar, newTestTask(10), testNow, Config{TargetXP: 100}); err != ErrJarSealed {
		t.Fatalf("err=%v, want ErrJarSealed", err)
	}
}

func TestApplyRejectsMissingJar(t *testing.T) {
	if _, err := Apply(nil, newTestTask(10), testNow, Config{TargetXP: 100}); err != ErrNoActiveJar {
		t.Fatalf("err=%v, want ErrNoActiveJar", err)
	}
}

func TestRetargetKeepsProgress(t *testing.T) {
	jar := newTestJar(30, 100)

	res, err := Retarget(jar, 150, testNow)
	if err != nil {
		t.Fatalf("Retarget: %v", err)
	}
	if res.Active != jar || jar.TargetXP != 150 || jar.CurrentXP != 30 {
		t.Fatalf("retarget mangled jar: %+v", jar)
	}
	if len(res.Sealed) != 0 {
		t.Fatalf("unexpected seal on raise")
	}
}

func TestRetargetBelowProgressSeals(t *testing.T) {
	jar := newTestJar(80, 100)

	res, err := Retarget(jar, 50, testNow)
	if err != nil {
		t.Fatalf("Retarget: %v", err)
	}
	if len(res.Sealed) != 1 {
		t.Fatalf("sealed=%d, want 1", len(res.Sealed))
	}
	if res.Sealed[0].CurrentXP != 50 {
		t.Fatalf("sealed at %d, want 50", res.Sealed[0].CurrentXP)
	}
	if res.Active.CurrentXP != 30 {
		t.Fatalf("overflow=%d, want 30", res.Active.CurrentXP)
	}
}

func TestRetargetRejectsSealedJar(t *testing.T) {
	jar := newTestJar(100, 100)
	jar.Completed = true

	if _, err := Retarget(jar, 50, testNow); err != ErrJarSealed {
		t.Fatalf("err=%v, want ErrJarSealed", err)
	}
}

// Cap invariant over a random-ish sequence of completions: every jar ever
// observed satisfies currentXP <= targetXP, sealed jars exactly == target,
// and exactly one jar stays active.
func TestCapAndSingleActiveInvariants(t *testing.T) {
	cfg := Config{TargetXP: 100}
	userID := uuid.New()

	active := NewJar(userID, cfg, testNow)
	all := []*models.Jar{active}

	xps := []int{5, 10, 15, 15, 10, 5, 120, 3, 99, 1, 15, 50, 10}
	for _, xp := range xps {
		res, err := Apply(active, newTestTask(xp), testNow, cfg)
		if err != nil {
			t.Fatalf("Apply(xp=%d): %v", xp, err)
		}
		all = append(all, res.Created...)
		active = res.Active

		activeCount := 0
		for _, j := range all {
			if j.CurrentXP > j.TargetXP {
				t.Fatalf("cap invariant violated: %d > %d", j.CurrentXP, j.TargetXP)
			}
			if j.Completed {
				if j.CurrentXP != j.TargetXP {
					t.Fatalf("sealed jar at %d, want %d", j.CurrentXP, j.TargetXP)
				}
			} else {
				activeCount++
			}
		}
		if activeCount != 1 {
			t.Fatalf("active jars=%d, want exactly 1", activeCount)
		}
	}

	if got := ActiveJar(all); got != active {
		t.Fatalf("ActiveJar returned %v, want the current active jar", got)
	}
}

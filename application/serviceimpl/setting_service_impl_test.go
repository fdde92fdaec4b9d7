package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/models"
	"taskjar/domain/repositories"
)

type settingServiceFixture struct {
	taskRepo    *fakeTaskRepo
	jarRepo     *fakeJarRepo
	settingRepo *fakeSettingRepo
	dailyRepo   *fakeDailyRepo
	weeklyRepo  *fakeWeeklyRepo
	publisher   *fakePublisher
	jars        *JarServiceImpl
	svc         *SettingServiceImpl
}

func newSettingServiceFixture() *settingServiceFixture {
	f := &settingServiceFixture{
		taskRepo:    newFakeTaskRepo(),
		jarRepo:     newFakeJarRepo(),
		settingRepo: newFakeSettingRepo(),
		dailyRepo:   newFakeDailyRepo(),
		weeklyRepo:  &fakeWeeklyRepo{},
		publisher:   &fakePublisher{},
	}
	locks := NewUserLocks()
	jars := NewJarService(f.jarRepo, f.settingRepo, f.publisher, locks, testDefaults)
	f.jars = jars.(*JarServiceImpl)
	svc := NewSettingService(f.settingRepo, f.taskRepo, f.jarRepo, f.dailyRepo, f.weeklyRepo, jars, nil, testDefaults)
	f.svc = svc.(*SettingServiceImpl)
	return f
}

func TestGetSettingsMaterializesDefaults(t *testing.T) {
	f := newSettingServiceFixture()
	userID := uuid.New()

	setting, err := f.svc.GetSettings(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if setting.XPStandard != 10 || setting.JarTarget != 100 {
		t.Errorf("defaults = xp %d target %d, want 10/100", setting.XPStandard, setting.JarTarget)
	}
	if f.settingRepo.settings[userID] == nil {
		t.Error("defaults not persisted")
	}
}

func TestUpdateSettingsPartialPatch(t *testing.T) {
	f := newSettingServiceFixture()
	userID := uuid.New()
	ctx := context.Background()

	target := 150
	setting, err := f.svc.UpdateSettings(ctx, userID, &dto.UpdateSettingsRequest{JarTarget: &target})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if setting.JarTarget != 150 {
		t.Errorf("jar target = %d, want 150", setting.JarTarget)
	}
	if setting.XPStandard != 10 {
		t.Errorf("untouched field changed: xp standard = %d", setting.XPStandard)
	}
}

func TestUpdateSettingsLoweredTargetSealsJar(t *testing.T) {
	f := newSettingServiceFixture()
	userID := uuid.New()
	ctx := context.Background()

	jar, err := f.jars.GetActiveJar(ctx, userID)
	if err != nil {
		t.Fatalf("GetActiveJar: %v", err)
	}
	jar.CurrentXP = 50
	f.jarRepo.jars[jar.ID] = jar

	target := 40
	if _, err := f.svc.UpdateSettings(ctx, userID, &dto.UpdateSettingsRequest{JarTarget: &target}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	sealed := f.jarRepo.jars[jar.ID]
	if !sealed.Completed || sealed.CurrentXP != 40 {
		t.Errorf("jar completed=%v xp=%d, want sealed at 40", sealed.Completed, sealed.CurrentXP)
	}

	active, _ := f.jarRepo.GetActive(ctx, userID)
	if active == nil || active.CurrentXP != 10 {
		t.Fatalf("active jar after seal = %+v, want 10 XP rolled over", active)
	}
	if len(f.publisher.sealed) != 1 {
		t.Errorf("published %d seal events, want 1", len(f.publisher.sealed))
	}
}

func TestClearDataRequiresParentLockSecret(t *testing.T) {
	f := newSettingServiceFixture()
	userID := uuid.New()
	ctx := context.Background()

	f.taskRepo.tasks[uuid.New()] = &models.Task{ID: uuid.New(), UserID: userID, Name: "victim"}

	if err := f.svc.SetParentLock(ctx, userID, &dto.SetParentLockRequest{Secret: "1234"}); err != nil {
		t.Fatalf("SetParentLock: %v", err)
	}

	err := f.svc.ClearData(ctx, userID, &dto.ClearDataRequest{Confirm: "DELETE"})
	if !errors.Is(err, ErrParentLockRequired) {
		t.Fatalf("err = %v, want ErrParentLockRequired", err)
	}

	err = f.svc.ClearData(ctx, userID, &dto.ClearDataRequest{Confirm: "DELETE", Secret: "wrong"})
	if !errors.Is(err, ErrParentLockInvalid) {
		t.Fatalf("err = %v, want ErrParentLockInvalid", err)
	}

	if err := f.svc.ClearData(ctx, userID, &dto.ClearDataRequest{Confirm: "DELETE", Secret: "1234"}); err != nil {
		t.Fatalf("ClearData with correct secret: %v", err)
	}
	if n, _ := f.taskRepo.CountByUserID(ctx, userID, repositories.TaskFilter{}); n != 0 {
		t.Errorf("%d tasks left after clear, want 0", n)
	}
}

func TestClearDataWithoutLockWipesEverything(t *testing.T) {
	f := newSettingServiceFixture()
	userID := uuid.New()
	ctx := context.Background()

	taskID := uuid.New()
	f.taskRepo.tasks[taskID] = &models.Task{ID: taskID, UserID: userID, Name: "t"}
	jar, _ := f.jars.GetActiveJar(ctx, userID)
	f.dailyRepo.rows[userID.String()+"|2026-01-01"] = &models.DailyCompletion{UserID: userID, DateISO: "2026-01-01"}
	f.weeklyRepo.dumps = append(f.weeklyRepo.dumps, &models.WeeklyDump{UserID: userID})

	if err := f.svc.ClearData(ctx, userID, &dto.ClearDataRequest{Confirm: "DELETE"}); err != nil {
		t.Fatalf("ClearData: %v", err)
	}

	if len(f.taskRepo.tasks) != 0 {
		t.Error("tasks survived clear")
	}
	if _, ok := f.jarRepo.jars[jar.ID]; ok {
		t.Error("jar survived clear")
	}
	fresh, err := f.jars.GetActiveJar(ctx, userID)
	if err != nil {
		t.Fatalf("GetActiveJar after clear: %v", err)
	}
	if fresh.ID == jar.ID || fresh.CurrentXP != 0 {
		t.Error("clear should leave one fresh empty jar")
	}
	if len(f.dailyRepo.rows) != 0 {
		t.Error("daily rows survived clear")
	}
	if len(f.weeklyRepo.dumps) != 0 {
		t.Error("weekly dumps survived clear")
	}

	// Settings themselves survive a data wipe.
	if f.settingRepo.settings[userID] == nil {
		t.Error("settings wiped, should persist")
	}
}

func TestParentLockDisable(t *testing.T) {
	f := newSettingServiceFixture()
	userID := uuid.New()
	ctx := context.Background()

	if err := f.svc.SetParentLock(ctx, userID, &dto.SetParentLockRequest{Secret: "abcd"}); err != nil {
		t.Fatalf("SetParentLock: %v", err)
	}
	if err := f.svc.DisableParentLock(ctx, userID, "nope"); !errors.Is(err, ErrParentLockInvalid) {
		t.Fatalf("err = %v, want ErrParentLockInvalid", err)
	}
	if err := f.svc.DisableParentLock(ctx, userID, "abcd"); err != nil {
		t.Fatalf("DisableParentLock: %v", err)
	}

	setting, _ := f.svc.GetSettings(ctx, userID)
	if setting.ParentLockEnabled || setting.ParentLockHash != "" {
		t.Error("parent lock still set after disable")
	}
}

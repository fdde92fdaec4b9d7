package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"taskjar/domain/models"
	"taskjar/domain/ports"
	"taskjar/domain/repositories"
)

// In-memory repository fakes. No locking: each test drives a single
// goroutine.

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) CreateBatch(_ context.Context, tasks []*models.Task) error {
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return t, nil
}

func (r *fakeTaskRepo) GetByUserID(_ context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	var out []*models.Task
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if filter.Status == "pending" && t.Completed {
			continue
		}
		if filter.Status == "completed" && !t.Completed {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, id uuid.UUID, task *models.Task) error {
	r.tasks[id] = task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) CountByUserID(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) (int64, error) {
	tasks, _ := r.GetByUserID(ctx, userID, filter)
	return int64(len(tasks)), nil
}

func (r *fakeTaskRepo) ListForWindow(_ context.Context, userID uuid.UUID, fromISO, toISO string) ([]*models.Task, error) {
	var out []*models.Task
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		day := t.DayKey(time.Local)
		if day >= fromISO && day <= toISO {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	for id, t := range r.tasks {
		if t.UserID == userID {
			delete(r.tasks, id)
		}
	}
	return nil
}

type fakeJarRepo struct {
	jars  map[uuid.UUID]*models.Jar
	links map[uuid.UUID][]uuid.UUID // jar -> tasks
}

func newFakeJarRepo() *fakeJarRepo {
	return &fakeJarRepo{
		jars:  make(map[uuid.UUID]*models.Jar),
		links: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *fakeJarRepo) Create(_ context.Context, jar *models.Jar) error {
	r.jars[jar.ID] = jar
	return nil
}

func (r *fakeJarRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Jar, error) {
	j, ok := r.jars[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return j, nil
}

func (r *fakeJarRepo) GetActive(_ context.Context, userID uuid.UUID) (*models.Jar, error) {
	for _, j := range r.jars {
		if j.UserID == userID && !j.Completed {
			return j, nil
		}
	}
	return nil, nil
}

func (r *fakeJarRepo) ListByUserID(_ context.Context, userID uuid.UUID, offset, limit int) ([]*models.Jar, error) {
	var out []*models.Jar
	for _, j := range r.jars {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeJarRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, j := range r.jars {
		if j.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeJarRepo) Update(_ context.Context, id uuid.UUID, jar *models.Jar) error {
	r.jars[id] = jar
	return nil
}

func (r *fakeJarRepo) GetTaskIDs(_ context.Context, jarID uuid.UUID) ([]uuid.UUID, error) {
	return r.links[jarID], nil
}

func (r *fakeJarRepo) SaveCompletion(_ context.Context, task *models.Task, credited *models.Jar, sealed []*models.Jar, created *models.Jar) error {
	for _, j := range append(append([]*models.Jar{credited}, sealed...), created) {
		if j != nil {
			r.jars[j.ID] = j
		}
	}
	r.links[credited.ID] = append(r.links[credited.ID], task.ID)
	return nil
}

func (r *fakeJarRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	for id, j := range r.jars {
		if j.UserID == userID {
			delete(r.jars, id)
			delete(r.links, id)
		}
	}
	return nil
}

type fakeSettingRepo struct {
	settings map[uuid.UUID]*models.UserSetting
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: make(map[uuid.UUID]*models.UserSetting)}
}

func (r *fakeSettingRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*models.UserSetting, error) {
	return r.settings[userID], nil
}

func (r *fakeSettingRepo) Upsert(_ context.Context, setting *models.UserSetting) error {
	r.settings[setting.UserID] = setting
	return nil
}

type fakeDailyRepo struct {
	rows map[string]*models.DailyCompletion // userID|date
}

func newFakeDailyRepo() *fakeDailyRepo {
	return &fakeDailyRepo{rows: make(map[string]*models.DailyCompletion)}
}

func (r *fakeDailyRepo) Upsert(_ context.Context, record *models.DailyCompletion) error {
	r.rows[record.UserID.String()+"|"+record.DateISO] = record
	return nil
}

func (r *fakeDailyRepo) ListRange(_ context.Context, userID uuid.UUID, fromISO, toISO string) ([]*models.DailyCompletion, error) {
	var out []*models.DailyCompletion
	for _, rec := range r.rows {
		if rec.UserID == userID && rec.DateISO >= fromISO && rec.DateISO <= toISO {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeDailyRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	for k, rec := range r.rows {
		if rec.UserID == userID {
			delete(r.rows, k)
		}
	}
	return nil
}

type fakeWeeklyRepo struct {
	dumps []*models.WeeklyDump
}

func (r *fakeWeeklyRepo) Create(_ context.Context, dump *models.WeeklyDump) error {
	r.dumps = append(r.dumps, dump)
	return nil
}

func (r *fakeWeeklyRepo) ListByUserID(_ context.Context, userID uuid.UUID, offset, limit int) ([]*models.WeeklyDump, error) {
	var out []*models.WeeklyDump
	for _, d := range r.dumps {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeWeeklyRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	kept := r.dumps[:0]
	for _, d := range r.dumps {
		if d.UserID != userID {
			kept = append(kept, d)
		}
	}
	r.dumps = kept
	return nil
}

type fakePublisher struct {
	completed []ports.TaskCompletedEvent
	sealed    []ports.JarSealedEvent
	daily     []ports.DailyUpdatedEvent
}

func (p *fakePublisher) PublishTaskCompleted(_ context.Context, ev *ports.TaskCompletedEvent) {
	p.completed = append(p.completed, *ev)
}

func (p *fakePublisher) PublishJarSealed(_ context.Context, ev *ports.JarSealedEvent) {
	p.sealed = append(p.sealed, *ev)
}

func (p *fakePublisher) PublishDailyUpdated(_ context.Context, ev *ports.DailyUpdatedEvent) {
	p.daily = append(p.daily, *ev)
}

type fakeGenerator struct {
	tasks []ports.GeneratedTask
	err   error
}

func (g *fakeGenerator) Generate(_ context.Context, _ string) ([]ports.GeneratedTask, error) {
	return g.tasks, g.err
}

func (g *fakeGenerator) GenerateWeekly(_ context.Context, _, _, _ string) ([]ports.GeneratedTask, error) {
	return g.tasks, g.err
}

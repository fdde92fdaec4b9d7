package dto

import (
	"github.com/google/uuid"

	"taskjar/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:           task.ID,
		Name:         task.Name,
		Description:  task.Description,
		Priority:     string(task.Priority),
		Difficulty:   string(task.Difficulty),
		XPValue:      task.XPValue,
		Completed:    task.Completed,
		CompletedAt:  task.CompletedAt,
		ScheduledFor: task.ScheduledFor,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

func TasksToTaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *TaskToTaskResponse(&tasks[i]))
	}
	return out
}

func CreateTaskRequestToTask(req *CreateTaskRequest) *models.Task {
	task := &models.Task{
		Name:        req.Name,
		Description: req.Description,
		Priority:    models.Priority(req.Priority),
		Difficulty:  models.Difficulty(req.Difficulty),
	}
	if req.ScheduledFor != "" {
		s := req.ScheduledFor
		task.ScheduledFor = &s
	}
	return task
}

func JarToJarResponse(jar *models.Jar) *JarResponse {
	if jar == nil {
		return nil
	}
	taskIDs := jar.TaskIDs
	if taskIDs == nil {
		taskIDs = []uuid.UUID{}
	}
	return &JarResponse{
		ID:          jar.ID,
		CurrentXP:   jar.CurrentXP,
		TargetXP:    jar.TargetXP,
		FillPct:     jar.FillPct(),
		Completed:   jar.Completed,
		CompletedAt: jar.CompletedAt,
		TaskIDs:     taskIDs,
		CreatedAt:   jar.CreatedAt,
	}
}

func JarsToJarResponses(jars []models.Jar) []JarResponse {
	out := make([]JarResponse, 0, len(jars))
	for i := range jars {
		out = append(out, *JarToJarResponse(&jars[i]))
	}
	return out
}

func SettingToSettingsResponse(s *models.UserSetting) *SettingsResponse {
	if s == nil {
		return nil
	}
	return &SettingsResponse{
		StudentName:       s.StudentName,
		XPLight:           s.XPLight,
		XPStandard:        s.XPStandard,
		XPChallenging:     s.XPChallenging,
		JarTarget:         s.JarTarget,
		SoundEnabled:      s.SoundEnabled,
		Theme:             s.Theme,
		ParentLockEnabled: s.ParentLockEnabled,
	}
}

func WeeklyDumpToResponse(d *models.WeeklyDump) *WeeklyDumpResponse {
	if d == nil {
		return nil
	}
	return &WeeklyDumpResponse{
		ID:             d.ID.String(),
		WeekStart:      d.WeekStart,
		WeekEnd:        d.WeekEnd,
		Prompt:         d.Prompt,
		TasksGenerated: d.TasksGenerated,
		CreatedAt:      d.CreatedAt,
	}
}

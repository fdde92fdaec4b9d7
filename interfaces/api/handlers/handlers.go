package handlers

import (
	"taskjar/domain/services"
)

// Services groups everything the HTTP layer depends on.
type Services struct {
	UserService       services.UserService
	TaskService       services.TaskService
	JarService        services.JarService
	AnalyticsService  services.AnalyticsService
	GenerationService services.GenerationService
	SettingService    services.SettingService
	JWTSecret         string
}

// Handlers groups all HTTP handlers for route registration.
type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Task      *TaskHandler
	Jar       *JarHandler
	Analytics *AnalyticsHandler
	Generate  *GenerateHandler
	Setting   *SettingHandler
	JWTSecret string
}

func NewHandlers(svc *Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(svc.UserService),
		User:      NewUserHandler(svc.UserService),
		Task:      NewTaskHandler(svc.TaskService),
		Jar:       NewJarHandler(svc.JarService),
		Analytics: NewAnalyticsHandler(svc.AnalyticsService),
		Generate:  NewGenerateHandler(svc.GenerationService),
		Setting:   NewSettingHandler(svc.SettingService),
		JWTSecret: svc.JWTSecret,
	}
}

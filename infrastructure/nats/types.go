package nats

// Stream and subject names
const (
	StreamName = "TASKJAR_EVENTS"

	// All event subjects live under taskjar.>
	SubjectTaskCompleted = "taskjar.task.completed"
	SubjectJarSealed     = "taskjar.jar.sealed"
	SubjectDailyUpdated  = "taskjar.daily.updated"

	SubjectWildcard = "taskjar.>"
)

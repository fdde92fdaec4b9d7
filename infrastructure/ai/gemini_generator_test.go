package ai

import (
	"testing"

	"taskjar/domain/ports"
)

func TestDecodeTasksWrapper(t *testing.T) {
	raw := `{"tasks":[{"name":"Read chapter 3","description":"Biology textbook","priority":"medium","difficulty":"moderate"}]}`

	tasks, err := DecodeTasks(raw)
	if err != nil {
		t.Fatalf("DecodeTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Name != "Read chapter 3" || tasks[0].Priority != "medium" {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
}

func TestDecodeTasksBareArray(t *testing.T) {
	raw := `[{"name":"Tidy desk","priority":"low","difficulty":"easy"}]`

	tasks, err := DecodeTasks(raw)
	if err != nil {
		t.Fatalf("DecodeTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Tidy desk" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestDecodeTasksFenced(t *testing.T) {
	raw := "```json\n{\"tasks\":[{\"name\":\"Practice piano\"}]}\n```"

	tasks, err := DecodeTasks(raw)
	if err != nil {
		t.Fatalf("DecodeTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Practice piano" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestDecodeTasksSkipsBlankNames(t *testing.T) {
	raw := `{"tasks":[{"name":"  "},{"name":"Real task"}]}`

	tasks, err := DecodeTasks(raw)
	if err != nil {
		t.Fatalf("DecodeTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Real task" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestDecodeTasksAllBlank(t *testing.T) {
	if _, err := DecodeTasks(`{"tasks":[{"name":""}]}`); err == nil {
		t.Fatal("expected error for response with no usable tasks")
	}
}

func TestDecodeTasksInvalidJSON(t *testing.T) {
	if _, err := DecodeTasks("not json at all"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDistributeWeekKeepsValidDates(t *testing.T) {
	tasks := []ports.GeneratedTask{
		{Name: "a", ScheduledFor: "2026-03-03"},
		{Name: "b", ScheduledFor: "2026-03-20"}, // out of window
		{Name: "c"},                             // missing
	}

	out := DistributeWeek(tasks, "2026-03-02", "2026-03-08")
	if out[0].ScheduledFor != "2026-03-03" {
		t.Fatalf("in-window date rewritten: %s", out[0].ScheduledFor)
	}
	if out[1].ScheduledFor != "2026-03-02" {
		t.Fatalf("out-of-window date not reassigned to first day: %s", out[1].ScheduledFor)
	}
	if out[2].ScheduledFor != "2026-03-03" {
		t.Fatalf("missing date not round-robined: %s", out[2].ScheduledFor)
	}
}

func TestDistributeWeekRoundRobinWraps(t *testing.T) {
	tasks := make([]ports.GeneratedTask, 4)
	for i := range tasks {
		tasks[i].Name = "t"
	}

	out := DistributeWeek(tasks, "2026-03-02", "2026-03-04")
	want := []string{"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-02"}
	for i, w := range want {
		if out[i].ScheduledFor != w {
			t.Fatalf("task %d scheduled %s, want %s", i, out[i].ScheduledFor, w)
		}
	}
}

func TestStripJSONFence(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n[1,2]\n```", "[1,2]"},
	}
	for _, c := range cases {
		if got := StripJSONFence(c.in); got != c.want {
			t.Fatalf("StripJSONFence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

package session_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apiHandler "github.com/fastygo/lys/api/handler"
	"github.com/fastygo/lys/api/transport"
	"github.com/fastygo/lys/internal/router"
	"github.com/fastygo/lys/internal/session"
	"github.com/fastygo/lys/repository/flatfile"
	taskUC "github.com/fastygo/lys/usecase/task"
)

// runSession feeds input to a fresh session backed by the file at path and returns stdout.
func runSession(t *testing.T, path string, input string) (string, *session.Session) {
	t.Helper()

	uc := taskUC.New(flatfile.NewTaskRepository(path), nil)
	uc.Load(context.Background())
	dispatcher := router.New(router.Handlers{
		Task:    apiHandler.NewTaskHandler(uc, nil),
		Session: apiHandler.NewSessionHandler(nil),
	})

	var out bytes.Buffer
	sess := session.New("Lys", strings.NewReader(input), &out, dispatcher, nil)
	if err := sess.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := sess.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return out.String(), sess
}

func dataFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data", "tasks.txt")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestGreetingAndBye(t *testing.T) {
	out, sess := runSession(t, dataFile(t), "bye\ntodo never reached\n")

	if !strings.HasPrefix(out, transport.Separator+"\nHello! I'm Lys.\nWhat can I do for you?\n") {
		t.Errorf("Expected framed greeting, got %q", out)
	}
	if !strings.Contains(out, "Bye. Hope to see you again soon!") {
		t.Errorf("Expected farewell, got %q", out)
	}
	if strings.Contains(out, "never reached") {
		t.Errorf("Expected loop to stop after bye, got %q", out)
	}
	if sess.State() != session.Terminated {
		t.Errorf("Expected terminated state, got %v", sess.State())
	}
}

func TestAddTodo(t *testing.T) {
	out, _ := runSession(t, dataFile(t), "todo buy milk\nbye\n")

	if !strings.Contains(out, "[T][ ] buy milk") {
		t.Errorf("Expected todo rendering, got %q", out)
	}
	if !strings.Contains(out, "Now you have 1 tasks in the list.") {
		t.Errorf("Expected task count, got %q", out)
	}
}

func TestAddDeadlinePersists(t *testing.T) {
	path := dataFile(t)
	out, _ := runSession(t, path, "deadline submit report /by Friday\nbye\n")

	if !strings.Contains(out, "Got it. I've added this task:\n  [D][ ] submit report (by: Friday)\nNow you have 1 tasks in the list.") {
		t.Errorf("Expected deadline confirmation, got %q", out)
	}
	if got := readFile(t, path); got != "D | 0 | submit report | Friday\n" {
		t.Errorf("Expected stored deadline record, got %q", got)
	}
}

func TestAddEvent(t *testing.T) {
	out, _ := runSession(t, dataFile(t), "event trip /from Mon /to Wed\nbye\n")

	if !strings.Contains(out, "[E][ ] trip (from: Mon to: Wed)") {
		t.Errorf("Expected event rendering, got %q", out)
	}
}

func TestDeleteShiftsPositions(t *testing.T) {
	out, _ := runSession(t, dataFile(t), "todo a\ntodo b\ndelete 1\nlist\nbye\n")

	if !strings.Contains(out, "Noted. I've removed this task:\n  [T][ ] a\nNow you have 1 tasks in the list.") {
		t.Errorf("Expected delete confirmation, got %q", out)
	}
	if !strings.Contains(out, "Here are the tasks in your list:\n1.[T][ ] b\n") {
		t.Errorf("Expected b at position 1, got %q", out)
	}
}

func TestFindWithoutMatches(t *testing.T) {
	path := dataFile(t)
	out, _ := runSession(t, path, "todo read book\nfind movie\nlist\nbye\n")

	if !strings.Contains(out, "No matching tasks found.") {
		t.Errorf("Expected no matches message, got %q", out)
	}
	if !strings.Contains(out, "1.[T][ ] read book") {
		t.Errorf("Expected list unchanged, got %q", out)
	}
}

func TestFindMatches(t *testing.T) {
	out, _ := runSession(t, dataFile(t), "todo read book\ntodo walk\ndeadline return book /by Sun\nfind book\nbye\n")

	want := "Here are the matching tasks in your list:\n1.[T][ ] read book\n2.[D][ ] return book (by: Sun)\n"
	if !strings.Contains(out, want) {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestMarkAndUnmark(t *testing.T) {
	path := dataFile(t)
	out, _ := runSession(t, path, "todo a\nmark 1\nlist\nunmark 1\nbye\n")

	if !strings.Contains(out, "Nice! I've marked this task as done:\n  [T][X] a") {
		t.Errorf("Expected mark confirmation, got %q", out)
	}
	if !strings.Contains(out, "1.[T][X] a") {
		t.Errorf("Expected list to show done flag, got %q", out)
	}
	if !strings.Contains(out, "OK, I've marked this task as not done yet:\n  [T][ ] a") {
		t.Errorf("Expected unmark confirmation, got %q", out)
	}
	if got := readFile(t, path); got != "T | 0 | a\n" {
		t.Errorf("Expected undone record, got %q", got)
	}
}

func TestErrorsDoNotStopTheLoop(t *testing.T) {
	input := strings.Join([]string{
		"mark 0",
		"todo a",
		"mark 2",
		"mark abc",
		"unmark",
		"delete 5",
		"todo",
		"todo    ",
		"deadline report",
		"deadline /by Friday",
		"event party /from 8pm",
		"event party /to 9pm",
		"find",
		"blah",
		"",
		"list",
		"bye",
	}, "\n")
	out, _ := runSession(t, dataFile(t), input)

	for _, want := range []string{
		"Error: Invalid task number.",
		"Error: Invalid task number: abc",
		"Error: Please provide a task number.",
		"Error: The description of a todo cannot be empty.",
		"Error: Deadline format should be: deadline [task] /by [date]",
		"Error: Event format should be: event [task] /from [start] /to [end]",
		"Error: Please provide a keyword to search.",
		"Error: Unknown command.",
		"1.[T][ ] a",
		"Bye. Hope to see you again soon!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got %q", want, out)
		}
	}
	if n := strings.Count(out, "Error: Invalid task number."); n != 3 {
		t.Errorf("Expected 3 out-of-range errors, got %d", n)
	}
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	out, _ := runSession(t, dataFile(t), "TODO shout\nLiSt\nBYE\n")

	if !strings.Contains(out, "1.[T][ ] shout") {
		t.Errorf("Expected upper-case commands to work, got %q", out)
	}
}

func TestEmptyList(t *testing.T) {
	out, _ := runSession(t, dataFile(t), "list\nbye\n")

	if !strings.Contains(out, "Your task list is empty.") {
		t.Errorf("Expected empty list message, got %q", out)
	}
}

func TestTasksSurviveRestart(t *testing.T) {
	path := dataFile(t)
	runSession(t, path, "todo a\ndeadline b /by Fri\nevent c /from 1 /to 2\nmark 2\nbye\n")

	out, _ := runSession(t, path, "list\nbye\n")
	want := "1.[T][ ] a\n2.[D][X] b (by: Fri)\n3.[E][ ] c (from: 1 to: 2)\n"
	if !strings.Contains(out, want) {
		t.Errorf("Expected restored list %q, got %q", want, out)
	}
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	path := dataFile(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("T | 0 | good\nX | bad\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, _ := runSession(t, path, "list\nbye\n")
	if !strings.Contains(out, "Here are the tasks in your list:\n1.[T][ ] good\n"+transport.Separator) {
		t.Errorf("Expected only the good task, got %q", out)
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, _ := runSession(t, filepath.Join(blocker, "tasks.txt"), "todo a\nlist\nbye\n")
	if !strings.Contains(out, "Now you have 1 tasks in the list.") {
		t.Errorf("Expected confirmation despite save failure, got %q", out)
	}
	if !strings.Contains(out, "Error: could not save tasks") {
		t.Errorf("Expected save error, got %q", out)
	}
	if !strings.Contains(out, "1.[T][ ] a") {
		t.Errorf("Expected task kept in memory, got %q", out)
	}
}

func TestEndOfInputEndsSession(t *testing.T) {
	out, sess := runSession(t, dataFile(t), "todo a")

	if !strings.Contains(out, "[T][ ] a") {
		t.Errorf("Expected last line without newline to run, got %q", out)
	}
	if strings.Contains(out, "Bye.") {
		t.Errorf("Expected no farewell without bye, got %q", out)
	}
	if sess.State() != session.Terminated {
		t.Errorf("Expected Close to terminate, got %v", sess.State())
	}
}

func TestLongInputLineKeepsSessionRunning(t *testing.T) {
	long := strings.Repeat("y", 1024*1024+10)
	out, sess := runSession(t, dataFile(t), "todo "+long+"\nlist\nbye\n")

	if !strings.Contains(out, "Now you have 1 tasks in the list.") {
		t.Errorf("Expected the long todo to be added")
	}
	if !strings.Contains(out, "Bye. Hope to see you again soon!") {
		t.Errorf("Expected the session to reach bye after a long line")
	}
	if sess.State() != session.Terminated {
		t.Errorf("Expected terminated state, got %v", sess.State())
	}
}

func TestLongTaskSurvivesRestart(t *testing.T) {
	path := dataFile(t)
	long := strings.Repeat("x", 1024*1024-7)
	runSession(t, path, "todo keep me\ntodo "+long+"\nbye\n")

	out, _ := runSession(t, path, "list\ntodo after\nbye\n")
	if !strings.Contains(out, "1.[T][ ] keep me\n2.[T][ ] "+long+"\n") {
		t.Errorf("Expected both saved tasks to be restored")
	}
	if !strings.Contains(out, "Now you have 3 tasks in the list.") {
		t.Errorf("Expected the new task to be appended to the restored list")
	}
	if got := readFile(t, path); !strings.HasPrefix(got, "T | 0 | keep me\n") || !strings.HasSuffix(got, "T | 0 | after\n") {
		t.Errorf("Expected the file to keep earlier tasks, got %d bytes", len(got))
	}
}

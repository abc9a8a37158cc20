package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"

	"VenuePOS/internal/config"
)

// helper: перенастройка конфиг‑каталога в temp, чтобы тесты не трогали
// реальную сессию пользователя
func setTempCfg(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := Out
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

func TestDispatch_UnknownCommand(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"frobnicate"})
	if code != 2 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(buf.String(), "Unknown command: frobnicate") {
		t.Fatalf("output: %s", buf.String())
	}
}

func TestDispatch_UsageErrorShowsUsage(t *testing.T) {
	buf := captureOut(t)
	// login без аргументов — ErrUsage
	code := Dispatch(context.Background(), &config.Config{}, []string{"login"})
	if code != 2 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(buf.String(), "login <username> <password>") {
		t.Fatalf("output: %s", buf.String())
	}
}

func TestDispatch_HelpListsCommands(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"help"})
	if code != 0 {
		t.Fatalf("exit code: %d", code)
	}
	for _, name := range []string{"login", "rooms", "items", "orders", "open"} {
		if !strings.Contains(buf.String(), name) {
			t.Fatalf("help misses %q: %s", name, buf.String())
		}
	}
}

func TestDispatch_HelpForCommand(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"help", "login"})
	if code != 0 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(buf.String(), "Usage: login <username> <password>") {
		t.Fatalf("output: %s", buf.String())
	}

	// --help на месте команды эквивалентен help
	buf.Reset()
	code = Dispatch(context.Background(), &config.Config{}, []string{"--help"})
	if code != 0 {
		t.Fatalf("--help exit code: %d", code)
	}
	if !strings.Contains(buf.String(), "Commands:") {
		t.Fatalf("--help output: %s", buf.String())
	}
}

func TestDispatch_LoginAgainstServer(t *testing.T) {
	setTempCfg(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/login" {
			t.Fatalf("path: %s", r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok"})
		_, _ = w.Write([]byte(`{"id":1,"username":"alice","role":"Manager"}`))
	}))
	defer ts.Close()

	buf := captureOut(t)
	cfg := &config.Config{ServerURL: ts.URL}
	code := Dispatch(context.Background(), cfg, []string{"login", "alice", "pw"})
	if code != 0 {
		t.Fatalf("exit code: %d (%s)", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Logged in as alice (Manager)") {
		t.Fatalf("output: %s", buf.String())
	}

	// после логина whoami читает восстановленную запись
	buf.Reset()
	code = Dispatch(context.Background(), cfg, []string{"whoami"})
	if code != 0 {
		t.Fatalf("whoami exit code: %d", code)
	}
	if !strings.Contains(buf.String(), "username: alice") {
		t.Fatalf("whoami output: %s", buf.String())
	}
}

func TestDispatch_InvalidCredentials(t *testing.T) {
	setTempCfg(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer ts.Close()

	buf := captureOut(t)
	cfg := &config.Config{ServerURL: ts.URL}
	code := Dispatch(context.Background(), cfg, []string{"login", "alice", "bad"})
	if code != 1 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(buf.String(), "invalid username or password") {
		t.Fatalf("output: %s", buf.String())
	}
}

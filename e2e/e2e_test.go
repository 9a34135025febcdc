//go:build e2e

package e2e_test

import (
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	panelctlBinary string
	panelServer    *httptest.Server
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "panelctl-e2e-*")
	if err != nil {
		panic(err)
	}

	panelctlBinary = filepath.Join(tmpDir, "panelctl")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", panelctlBinary, "./cmd/panelctl")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build panelctl binary: " + err.Error())
	}

	panelServer = httptest.NewServer(newStubPanel())

	exitCode := m.Run()

	panelServer.Close()
	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	binDir := filepath.Dir(panelctlBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	env.Setenv("PANELCTL_ENDPOINT", panelServer.URL)
	env.Setenv("PANELCTL_LOGIN", "alice")
	env.Setenv("PANELCTL_PASSWORD", "hunter2")

	return nil
}

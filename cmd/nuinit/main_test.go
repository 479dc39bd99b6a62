package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"nuinit": func() int { main(); return 0 },
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "script"),
		RequireExplicitExec: true,
		Setup: func(e *testscript.Env) error {
			// Pin HOME to WORK so ~/.nuinit/ is created inside the temp dir
			e.Vars = append(e.Vars,
				"HOME="+e.WorkDir,
				"USERPROFILE="+e.WorkDir,
			)
			return nil
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			// fake-tool installs a stub binary under $WORK/bin that answers
			// --version with exit 0 and prints the payload for anything else.
			// Usage: fake-tool <name> [payload...]
			"fake-tool": cmdFakeTool,

			// fake-failing-tool installs a stub whose --version succeeds but
			// whose init invocation writes to stderr and exits non-zero.
			// Usage: fake-failing-tool <name> <stderr message>
			"fake-failing-tool": cmdFakeFailingTool,

			// fake-nu installs a stub nu binary that reports <dir>/config.nu
			// as its config path.
			// Usage: fake-nu <dir>
			"fake-nu": cmdFakeNu,
		},
	})
}

const fakeToolScript = `#!/bin/sh
case "$1" in
--version)
    echo '%s 1.0.0'
    ;;
*)
    cat <<'FAKE_EOF'
%s
FAKE_EOF
    ;;
esac
`

const fakeFailingToolScript = `#!/bin/sh
case "$1" in
--version)
    echo '%s 1.0.0'
    ;;
*)
    echo '%s' >&2
    exit 2
    ;;
esac
`

const fakeNuScript = `#!/bin/sh
case "$1" in
--version)
    echo '0.97.1'
    ;;
-c)
    echo '%s/config.nu'
    ;;
esac
`

func cmdFakeTool(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("fake-tool does not support negation")
	}
	if len(args) < 1 {
		ts.Fatalf("usage: fake-tool <name> [payload...]")
	}
	payload := strings.Join(args[1:], " ")
	writeFake(ts, args[0], fmt.Sprintf(fakeToolScript, args[0], payload))
}

func cmdFakeFailingTool(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("fake-failing-tool does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: fake-failing-tool <name> <stderr message>")
	}
	writeFake(ts, args[0], fmt.Sprintf(fakeFailingToolScript, args[0], args[1]))
}

func cmdFakeNu(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("fake-nu does not support negation")
	}
	if len(args) != 1 {
		ts.Fatalf("usage: fake-nu <dir>")
	}
	writeFake(ts, "nu", fmt.Sprintf(fakeNuScript, ts.MkAbs(args[0])))
}

func writeFake(ts *testscript.TestScript, name, script string) {
	dir := filepath.Join(ts.Getenv("WORK"), "bin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		ts.Fatalf("creating %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
		ts.Fatalf("writing fake %s: %v", name, err)
	}
}

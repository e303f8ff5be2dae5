package sysio

import (
	"bytes"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/fedesilva/minnieml/buffer"
	rterrors "github.com/fedesilva/minnieml/errors"
	"github.com/fedesilva/minnieml/value"
)

// Run spawns cmd with args, inheriting the standard streams, and blocks
// until the child terminates. It returns the child's exit status. Pending
// bytes in the default stdout buffer are not flushed; callers interleaving
// buffered output with a child's output must flush first.
func Run(cmd value.Str, args []value.Str) (int, error) {
	c := exec.Command(cmd.String(), argStrings(args)...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	logger().Debug("spawning process", zap.String("cmd", cmd.String()))
	return wait(c, cmd)
}

// RunCapture spawns cmd with args, redirecting the child's standard output
// into out, and blocks until the child terminates. It returns the child's
// exit status. Captured bytes are appended to out even when the child exits
// nonzero.
func RunCapture(cmd value.Str, args []value.Str, out *buffer.Buffer) (int, error) {
	var captured bytes.Buffer
	c := exec.Command(cmd.String(), argStrings(args)...)
	c.Stdout = &captured
	c.Stderr = os.Stderr

	logger().Debug("spawning process with capture", zap.String("cmd", cmd.String()))
	status, err := wait(c, cmd)

	if captured.Len() > 0 && out != nil {
		s := value.FromBytes(captured.Bytes())
		werr := out.Write(s)
		s.Release()
		if err == nil {
			err = werr
		}
	}
	return status, err
}

func wait(c *exec.Cmd, cmd value.Str) (int, error) {
	err := c.Run()
	if err == nil {
		return 0, nil
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode(), nil
	}
	return -1, rterrors.SpawnFailed(cmd.String(), err)
}

func argStrings(args []value.Str) []string {
	argv := make([]string, len(args))
	for i, a := range args {
		argv[i] = a.String()
	}
	return argv
}

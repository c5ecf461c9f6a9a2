package spinner

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_StartUpdateStop(t *testing.T) {
	var buf bytes.Buffer
	s := Start(&buf, "warming up")
	s.Update("cpu: run 1/3")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "cpu: run 1/3")
	// the final write clears the line
	assert.Contains(t, out, "\r")
}

func TestSpinner_StopTwice(t *testing.T) {
	var buf bytes.Buffer
	s := Start(&buf, "idle")
	s.Stop()
	s.Stop() // must not panic or deadlock
}

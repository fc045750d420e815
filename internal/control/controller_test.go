package control

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"dlagrow/internal/growth"
	"dlagrow/internal/sims/dla"

	"github.com/google/go-cmp/cmp"
	errgo "gopkg.in/errgo.v1"
)

const updateBudget = 5_000_000

func newTestController(t *testing.T, endNum int) (*Controller, string) {
	t.Helper()
	cfg := dla.DefaultConfig()
	cfg.Radius = 40
	cfg.Seed = 42
	cfg.Params.EndNum = endNum
	dir := t.TempDir()
	return New(dla.NewWithConfig(cfg), Options{Dir: dir}), dir
}

func runToCompletion(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < updateBudget && c.Running(); i++ {
		c.Update()
	}
	if c.Running() {
		t.Fatal("run did not complete within the update budget")
	}
}

func readRows(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestRunWritesOneRowPerParticle(t *testing.T) {
	c, dir := newTestController(t, 10)
	if err := c.SetRunning(); err != nil {
		t.Fatalf("SetRunning: %v", err)
	}
	runToCompletion(t, c)

	if !c.Done() || c.Engine().NumParticles() != 10 {
		t.Fatalf("done=%v particles=%d", c.Done(), c.Engine().NumParticles())
	}
	if want := filepath.Join(dir, "fractDim1.csv"); c.Filename() != want {
		t.Fatalf("Filename = %q, want %q", c.Filename(), want)
	}
	rows := readRows(t, c.Filename())
	if len(rows) != 10 {
		t.Fatalf("rows = %d, want 10:\n%s", len(rows), strings.Join(rows, "\n"))
	}
	if rows[0] != "1,0,NaN" {
		t.Fatalf("first row = %q, want the seed", rows[0])
	}
	for i, row := range rows {
		if idx := strings.SplitN(row, ",", 2)[0]; idx != strconv.Itoa(i+1) {
			t.Fatalf("row %d = %q has index %s", i, row, idx)
		}
	}
}

func TestPauseAndResumeAppendsToNewFile(t *testing.T) {
	c, dir := newTestController(t, 12)
	if err := c.SetRunning(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < updateBudget && c.Engine().NumParticles() < 5; i++ {
		c.Update()
	}
	c.PauseRunning()
	if c.Running() {
		t.Fatal("still running after pause")
	}
	if err := c.SetRunning(); err != nil {
		t.Fatal(err)
	}
	runToCompletion(t, c)

	if got := len(readRows(t, filepath.Join(dir, "fractDim1.csv"))); got != 5 {
		t.Fatalf("first file rows = %d, want 5", got)
	}
	if got := len(readRows(t, filepath.Join(dir, "fractDim2.csv"))); got != 12 {
		t.Fatalf("second file rows = %d, want the full history of 12", got)
	}
}

func TestResetPausesAndClears(t *testing.T) {
	c, dir := newTestController(t, 50)
	if err := c.SetRunning(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < updateBudget && c.Engine().NumParticles() < 4; i++ {
		c.Update()
	}
	c.Reset()
	if c.Running() {
		t.Fatal("reset must pause")
	}
	if c.Engine().NumParticles() != 1 {
		t.Fatalf("particles after reset = %d, want 1", c.Engine().NumParticles())
	}
	if got := len(readRows(t, filepath.Join(dir, "fractDim1.csv"))); got != 4 {
		t.Fatalf("closed file rows = %d, want 4", got)
	}
}

func TestUpdateAfterCompletionIsNoop(t *testing.T) {
	c, _ := newTestController(t, 3)
	c.SetRunning()
	runToCompletion(t, c)
	before := c.Engine().Occupied()
	if ev := c.Update(); ev != dla.EventNone {
		t.Fatalf("Update after completion = %v, want none", ev)
	}
	if diff := cmp.Diff(before, c.Engine().Occupied()); diff != "" {
		t.Fatalf("cluster changed after completion:\n%s", diff)
	}
	if err := c.SetRunning(); err != nil || c.Running() {
		t.Fatalf("SetRunning on a completed run: err=%v running=%v", err, c.Running())
	}
}

func TestExportFailureDoesNotStopRun(t *testing.T) {
	cfg := dla.DefaultConfig()
	cfg.Radius = 30
	cfg.Params.EndNum = 5
	c := New(dla.NewWithConfig(cfg), Options{Dir: filepath.Join(t.TempDir(), "missing")})
	if err := c.SetRunning(); err == nil {
		t.Fatal("expected an export error for a missing directory")
	}
	if !c.Running() {
		t.Fatal("run should start without export")
	}
	runToCompletion(t, c)
	if c.Engine().NumParticles() != 5 {
		t.Fatalf("particles = %d, want 5", c.Engine().NumParticles())
	}
}

func TestAdvancePacing(t *testing.T) {
	c, _ := newTestController(t, 2000)
	now := time.Unix(0, 0)
	if n := c.Advance(now); n != 0 {
		t.Fatalf("paused Advance ran %d updates", n)
	}
	c.SetRunning()
	if n := c.Advance(now); n != 1 {
		t.Fatalf("first slow Advance = %d, want 1", n)
	}
	if n := c.Advance(now.Add(35 * time.Millisecond)); n != 3 {
		t.Fatalf("slow Advance after 35ms = %d, want 3", n)
	}
	c.SetFast()
	if n := c.Advance(now.Add(36 * time.Millisecond)); n != c.pacer.Batch() {
		t.Fatalf("fast Advance = %d, want %d", n, c.pacer.Batch())
	}
	c.PauseRunning()
}

func TestRunHonoursContext(t *testing.T) {
	cfg := dla.DefaultConfig()
	cfg.Radius = 60
	c := New(dla.NewWithConfig(cfg), Options{NoExport: true})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Run(ctx)
	if errgo.Cause(err) != context.Canceled {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if c.Running() {
		t.Fatal("cancelled run left running")
	}
}

func TestRunCompletesAndNotifies(t *testing.T) {
	cfg := dla.DefaultConfig()
	cfg.Radius = 40
	cfg.Params.EndNum = 20
	c := New(dla.NewWithConfig(cfg), Options{NoExport: true})
	var seen []growth.Sample
	c.OnStick(func(s growth.Sample) { seen = append(seen, s) })
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seen) != 19 {
		t.Fatalf("observed %d sticks, want 19", len(seen))
	}
	for i, s := range seen {
		if s.Index != i+2 {
			t.Fatalf("sample %d index = %d, want %d", i, s.Index, i+2)
		}
	}
}

func TestPrintSize(t *testing.T) {
	c, _ := newTestController(t, 10)
	var buf bytes.Buffer
	c.PrintSize(&buf)
	if !strings.Contains(buf.String(), "particles: 1") {
		t.Fatalf("PrintSize = %q", buf.String())
	}
}

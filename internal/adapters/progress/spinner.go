package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// pipelineStages are the stages shown in the spinner line, in order
var pipelineStages = []usecase.ExecutionStage{
	usecase.StageDeploying,
	usecase.StageConfirming,
	usecase.StageVerifying,
	usecase.StagePersisting,
}

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
	stages  []stageInfo
	message string
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stdout)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// ReportStage reports the current execution stage
func (r *SpinnerProgressReporter) ReportStage(ctx context.Context, stage usecase.ExecutionStage) {
	r.completeCurrentStage()

	switch stage {
	case usecase.StageValidating:
		// Validation is instantaneous and has no network I/O
		return
	case usecase.StageCompleted:
		r.spinner.Stop()
		r.stages = append(r.stages, stageInfo{Stage: stage, StartTime: time.Now(), Status: "completed"})
		return
	}

	r.message = ""
	r.stages = append(r.stages, stageInfo{
		Stage:     stage,
		StartTime: time.Now(),
		Status:    "running",
	})
	r.updateSpinnerDisplay()
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.message = event.Message
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.updateSpinnerDisplay()
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.printAround(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.printAround(color.New(color.FgRed), message)
}

// Stages returns the stages seen so far
func (r *SpinnerProgressReporter) Stages() []usecase.ExecutionStage {
	out := make([]usecase.ExecutionStage, 0, len(r.stages))
	for _, s := range r.stages {
		out = append(out, s.Stage)
	}
	return out
}

// printAround stops the spinner while a line is printed
func (r *SpinnerProgressReporter) printAround(c *color.Color, message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) == 0 {
		return
	}
	idx := len(r.stages) - 1
	if r.stages[idx].Status == "running" {
		r.stages[idx].EndTime = time.Now()
		r.stages[idx].Status = "completed"
	}
}

// updateSpinnerDisplay updates the spinner suffix with stage information
func (r *SpinnerProgressReporter) updateSpinnerDisplay() {
	status := make(map[usecase.ExecutionStage]stageInfo, len(r.stages))
	for _, s := range r.stages {
		status[s.Stage] = s
	}

	var display string
	for i, stage := range pipelineStages {
		info, seen := status[stage]

		var icon string
		var stageColor *color.Color
		switch {
		case seen && info.Status == "completed":
			icon = "✓"
			stageColor = color.New(color.FgGreen)
		case seen:
			icon = "●"
			stageColor = color.New(color.FgYellow)
		default:
			icon = "○"
			stageColor = color.New(color.FgWhite)
		}

		duration := ""
		if seen && !info.EndTime.IsZero() {
			duration = fmt.Sprintf(" (%s)", info.EndTime.Sub(info.StartTime).Round(time.Millisecond))
		}

		if i > 0 {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(string(stage)), duration)
	}
	if r.message != "" {
		display += "  " + r.message
	}

	r.spinner.Suffix = " " + display
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)

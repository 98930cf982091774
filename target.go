package iro

import "fmt"

// ManagedSection is the begin/end marker pair that bounds iro's region inside
// a foreign config file. Markers are whole lines.
type ManagedSection struct {
	Begin string
	End   string
}

// CommentStyle is the line-comment syntax of a target file format.
type CommentStyle int

const (
	CommentHash  CommentStyle = iota // # ...
	CommentBlock                     // /* ... */
	CommentSlash                     // // ...
)

// SectionFor returns the marker pair for an application. Markers embed the
// application name so one file can host sections for several applications.
func SectionFor(app string, style CommentStyle) ManagedSection {
	begin := fmt.Sprintf(">>> iro %s >>>", app)
	end := fmt.Sprintf("<<< iro %s <<<", app)
	switch style {
	case CommentBlock:
		return ManagedSection{Begin: "/* " + begin + " */", End: "/* " + end + " */"}
	case CommentSlash:
		return ManagedSection{Begin: "// " + begin, End: "// " + end}
	default:
		return ManagedSection{Begin: "# " + begin, End: "# " + end}
	}
}

// Target is one application config file that receives a rendered template.
type Target struct {
	Name     string
	Path     string
	Template string
	Section  ManagedSection
}

// PatchStatus is the outcome of patching one target.
type PatchStatus int

const (
	// StatusFailed means the patch was attempted and failed; the file is intact.
	StatusFailed PatchStatus = iota
	// StatusPatched means an existing managed section was replaced.
	StatusPatched
	// StatusAppended means a new managed section was added at the end of the file.
	StatusAppended
	// StatusSkipped means the file or its directory does not exist.
	StatusSkipped
)

func (s PatchStatus) String() string {
	switch s {
	case StatusPatched:
		return "patched"
	case StatusAppended:
		return "appended"
	case StatusSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Succeeded reports whether the target file now carries the scheme.
func (s PatchStatus) Succeeded() bool {
	return s == StatusPatched || s == StatusAppended
}

// TargetResult is the outcome for one target.
type TargetResult struct {
	Target   Target
	Rendered string
	Status   PatchStatus
	Err      error // reason for skipped or failed
}

// String formats the result as "<status> <target>", followed by the reason
// when there is one.
func (r TargetResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s %s: %v", r.Status, r.Target.Name, r.Err)
	}
	return fmt.Sprintf("%s %s", r.Status, r.Target.Name)
}

// Problems returns the results that were skipped or failed, in target order.
func (r Report) Problems() []TargetResult {
	var out []TargetResult
	for _, res := range r.Results {
		if !res.Status.Succeeded() {
			out = append(out, res)
		}
	}
	return out
}

// Report collects the results of applying one scheme to all targets.
type Report struct {
	Results []TargetResult // in target order
}

// Succeeded returns how many targets were patched or appended.
func (r Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Status.Succeeded() {
			n++
		}
	}
	return n
}

// Total returns the number of targets.
func (r Report) Total() int { return len(r.Results) }

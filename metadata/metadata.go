// Package metadata captures the run environment alongside sampler output,
// so that any results file can be traced back to the exact parameters,
// seed, code revision, and platform that produced it.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/faiazparis/algebraic-moduli-sampler/jsonio"
)

// GitInfo describes the state of the enclosing git repository, if any.
// The string fields are empty when git is unavailable or the working
// directory is not inside a repository; capture is best-effort and never
// fails a run. Clean is always emitted: a dirty repository (Clean=false)
// must stay distinguishable from no repository at all, which is signalled
// by an empty CommitHash.
type GitInfo struct {
	Root       string `json:"git_root,omitempty"`
	CommitHash string `json:"commit_hash,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Clean      bool   `json:"working_directory_clean"`
}

// Environment describes the Go runtime and platform of the run.
type Environment struct {
	GoVersion        string `json:"go_version"`
	OS               string `json:"os"`
	Arch             string `json:"arch"`
	NumCPU           int    `json:"num_cpu"`
	WorkingDirectory string `json:"working_directory"`
}

// Metadata is the full record of one CLI invocation.
type Metadata struct {
	Timestamp        string         `json:"timestamp"`
	RunID            string         `json:"run_id"`
	Command          string         `json:"command"`
	ParamsFile       string         `json:"params_file,omitempty"`
	ParamsHash       string         `json:"params_hash,omitempty"`
	Seed             int64          `json:"seed,omitempty"`
	NSamples         int            `json:"n_samples,omitempty"`
	FamilyType       string         `json:"family_type,omitempty"`
	SamplingStrategy string         `json:"sampling_strategy,omitempty"`
	Invariants       []string       `json:"invariants_computed,omitempty"`
	Environment      Environment    `json:"environment"`
	Git              GitInfo        `json:"git_info"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// Capture assembles run metadata for the given command: a fresh run ID,
// RFC3339 timestamp, Go runtime/platform details, and best-effort git state.
func Capture(command string) Metadata {
	wd, _ := os.Getwd()
	return Metadata{
		Timestamp: time.Now().Format(time.RFC3339),
		RunID:     uuid.NewString(),
		Command:   command,
		Environment: Environment{
			GoVersion:        runtime.Version(),
			OS:               runtime.GOOS,
			Arch:             runtime.GOARCH,
			NumCPU:           runtime.NumCPU(),
			WorkingDirectory: wd,
		},
		Git: captureGit(),
	}
}

// captureGit shells out to git for the repository root, HEAD commit, branch,
// and dirty state. Any failure yields a zero GitInfo.
func captureGit() GitInfo {
	root, err := gitOutput("rev-parse", "--show-toplevel")
	if err != nil {
		return GitInfo{}
	}
	commit, err := gitOutput("rev-parse", "HEAD")
	if err != nil {
		return GitInfo{}
	}
	branch, err := gitOutput("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return GitInfo{}
	}
	status, err := gitOutput("status", "--porcelain")
	if err != nil {
		return GitInfo{}
	}
	return GitInfo{
		Root:       root,
		CommitHash: commit,
		Branch:     branch,
		Clean:      status == "",
	}
}

func gitOutput(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// HashParams returns the SHA-256 of the canonical (sorted-key, compact)
// JSON encoding of a parameter document, for reproducibility bookkeeping.
// encoding/json already sorts map keys, which gives the canonical form.
func HashParams(params any) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("metadata: hash params: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Save writes the metadata JSON to path and a short human-readable summary
// next to it as metadata_summary.txt.
func (m Metadata) Save(path string) error {
	if err := jsonio.Save(path, m); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("Algebraic Moduli Sampler - Run Metadata\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", m.Timestamp)
	fmt.Fprintf(&b, "Run ID: %s\n", m.RunID)
	fmt.Fprintf(&b, "Command: %s\n", m.Command)
	if m.FamilyType != "" {
		fmt.Fprintf(&b, "Family Type: %s\n", m.FamilyType)
	}
	if m.Seed != 0 {
		fmt.Fprintf(&b, "Seed: %d\n", m.Seed)
	}
	if m.NSamples != 0 {
		fmt.Fprintf(&b, "Samples: %d\n", m.NSamples)
	}
	if m.SamplingStrategy != "" {
		fmt.Fprintf(&b, "Strategy: %s\n", m.SamplingStrategy)
	}
	if m.Git.CommitHash != "" {
		short := m.Git.CommitHash
		if len(short) > 8 {
			short = short[:8]
		}
		fmt.Fprintf(&b, "Git Commit: %s\n", short)
		fmt.Fprintf(&b, "Git Branch: %s\n", m.Git.Branch)
		fmt.Fprintf(&b, "Working Directory Clean: %t\n", m.Git.Clean)
	}
	fmt.Fprintf(&b, "\nEnvironment:\n")
	fmt.Fprintf(&b, "  Go: %s\n", m.Environment.GoVersion)
	fmt.Fprintf(&b, "  Platform: %s/%s\n", m.Environment.OS, m.Environment.Arch)
	if m.ParamsHash != "" {
		fmt.Fprintf(&b, "\nParameters Hash: %s\n", m.ParamsHash)
	}

	summaryPath := filepath.Join(filepath.Dir(path), "metadata_summary.txt")
	if err := os.WriteFile(summaryPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("metadata: write summary %s: %w", summaryPath, err)
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish commits and pushes refreshed artifacts to the local git
// working tree. Publishing is best-effort glue around the pipeline: its
// failures are reported, never fatal to a run.
package publish

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/chombe87/vrtic/pkg/types"
)

const binGit = "git"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(dir, name string, args ...string) (string, error)
	Run(dir, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

func (o *osExecutor) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.Run()
}

// now returns the commit timestamp. Tests substitute a fixed clock.
var now = time.Now

// Publisher commits and pushes the output directory.
type Publisher struct {
	cfg  types.PublishConfig
	exec executor
}

// New builds a Publisher for the given working tree settings.
func New(cfg types.PublishConfig) *Publisher {
	return &Publisher{cfg: cfg, exec: &osExecutor{}}
}

// Publish stages, commits, and pushes pending changes, writing progress to w.
// Two cases skip the commit: no changes at all, and changes confined to the
// metadata file, whose timestamp turns over on every run regardless of
// whether any menu content changed.
func (p *Publisher) Publish(w io.Writer) error {
	if _, err := p.exec.LookPath(binGit); err != nil {
		return fmt.Errorf("git not found on PATH: %w", err)
	}

	status, err := p.exec.Output(p.cfg.Dir, binGit, "status", "--porcelain")
	if err != nil {
		return fmt.Errorf("git status: %w", err)
	}

	changed := changedFiles(status)
	if len(changed) == 0 {
		fmt.Fprintln(w, "[git] nothing to commit")
		return nil
	}
	if onlyMetadata(changed, p.cfg.MetadataFile) {
		fmt.Fprintln(w, "[git] only metadata changed, skipping commit")
		return nil
	}

	msg := "json refresh " + now().Format("2006-01-02 15:04")
	if err := p.exec.Run(p.cfg.Dir, binGit, "add", "."); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	if err := p.exec.Run(p.cfg.Dir, binGit, "commit", "-am", msg); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	if err := p.exec.Run(p.cfg.Dir, binGit, "push"); err != nil {
		return fmt.Errorf("git push: %w", err)
	}

	fmt.Fprintf(w, "[git] committed and pushed (%q)\n", msg)
	return nil
}

// changedFiles parses `git status --porcelain` output into the list of
// changed paths.
func changedFiles(status string) []string {
	var files []string
	for _, line := range strings.Split(status, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		files = append(files, fields[len(fields)-1])
	}
	return files
}

// onlyMetadata reports whether every changed path is the metadata artifact.
func onlyMetadata(files []string, metadataFile string) bool {
	if metadataFile == "" {
		return false
	}
	for _, f := range files {
		if filepath.Base(f) != metadataFile {
			return false
		}
	}
	return true
}

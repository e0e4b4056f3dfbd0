package dp

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDP(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	writeDP(t, dir, "auth-core.yml", `
name: Authentication Core
nature: module
priority: 90
description: Session and credential handling
`)
	writeDP(t, dir, "billing.yaml", `
name: Billing
nature: standard
phase: rollout
priority: 40
dependencies:
  - auth-core
`)
	writeDP(t, dir, "notes.txt", "not a prescription")

	records, parseErrs, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(parseErrs) != 0 {
		t.Fatalf("Load() parse errors = %v, want none", parseErrs)
	}
	if len(records) != 2 {
		t.Fatalf("Load() loaded %d records, want 2", len(records))
	}

	// Sorted by display name: Authentication Core before Billing.
	if records[0].ID != "auth-core" {
		t.Errorf("records[0].ID = %s, want auth-core", records[0].ID)
	}
	if records[0].Nature != NatureModule {
		t.Errorf("records[0].Nature = %s, want module", records[0].Nature)
	}
	if records[1].ID != "billing" {
		t.Errorf("records[1].ID = %s, want billing", records[1].ID)
	}
	if len(records[1].DependsOn) != 1 || records[1].DependsOn[0] != "auth-core" {
		t.Errorf("records[1].DependsOn = %v, want [auth-core]", records[1].DependsOn)
	}
}

func TestLoadCollectsParseErrors(t *testing.T) {
	dir := t.TempDir()

	writeDP(t, dir, "good.yml", "name: Good\nnature: standard\n")
	writeDP(t, dir, "broken.yml", "name: [unterminated\n")

	records, parseErrs, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Load() loaded %d records, want 1", len(records))
	}
	if len(parseErrs) != 1 {
		t.Errorf("Load() parse errors = %d, want 1", len(parseErrs))
	}
}

func TestLoadMissingDir(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("Load() on missing directory should fail")
	}
}

func TestLoadDefaultsNameToID(t *testing.T) {
	dir := t.TempDir()
	writeDP(t, dir, "bare.yml", "nature: standard\n")

	records, _, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 1 || records[0].Name != "bare" {
		t.Fatalf("expected display name to default to identifier, got %+v", records)
	}
}

func TestSubDPOrderPreserved(t *testing.T) {
	dir := t.TempDir()
	writeDP(t, dir, "svc.yml", `
name: Service
nature: module
ordered: true
subdps:
  zeta:
    kind: specification
    steps:
      - design
      - build
  alpha:
    kind: dependency
    requirement: required
  mid:
    kind: specification
    steps: [review]
    depends_on:
      - zeta
`)

	records, parseErrs, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}

	subs := records[0].SubDPs
	if len(subs) != 3 {
		t.Fatalf("loaded %d subdps, want 3", len(subs))
	}

	// Document order, not lexical order.
	wantOrder := []string{"zeta", "alpha", "mid"}
	for i, want := range wantOrder {
		if subs[i].Name != want {
			t.Errorf("subs[%d].Name = %s, want %s", i, subs[i].Name, want)
		}
	}

	if subs[0].Kind != KindSpecification || len(subs[0].Steps) != 2 {
		t.Errorf("zeta decoded wrong: %+v", subs[0])
	}
	if subs[1].Requirement != RequirementRequired {
		t.Errorf("alpha requirement = %s, want required", subs[1].Requirement)
	}
	if !records[0].Ordered {
		t.Error("ordered flag not decoded")
	}
}

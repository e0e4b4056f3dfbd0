package dp

import (
	"strings"
	"testing"
)

func TestValidateCleanSet(t *testing.T) {
	records := []Prescription{
		{ID: "core", Name: "Core", Nature: NatureModule},
		{ID: "api", Name: "API", Nature: NatureStandard, DependsOn: []string{"core"}},
	}

	result := Validate(records)
	if !result.Valid {
		t.Fatalf("Validate() errors = %v, want none", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Validate() warnings = %v, want none", result.Warnings)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		records []Prescription
		want    string
	}{
		{
			name: "unknown dependency",
			records: []Prescription{
				{ID: "api", Name: "API", DependsOn: []string{"ghost"}},
			},
			want: `depends on unknown prescription "ghost"`,
		},
		{
			name: "duplicate display name",
			records: []Prescription{
				{ID: "one", Name: "Same"},
				{ID: "two", Name: "Same"},
			},
			want: `duplicate display name "Same"`,
		},
		{
			name: "duplicate identifier",
			records: []Prescription{
				{ID: "dup", Name: "First"},
				{ID: "dup", Name: "Second"},
			},
			want: `duplicate prescription identifier "dup"`,
		},
		{
			name: "duplicate subdp name",
			records: []Prescription{
				{ID: "svc", Name: "Svc", SubDPs: SubDPList{
					{Name: "setup", Kind: KindSpecification, Steps: []string{"x"}},
					{Name: "setup", Kind: KindSpecification, Steps: []string{"y"}},
				}},
			},
			want: `duplicate subdp name "setup"`,
		},
		{
			name: "unknown sibling reference",
			records: []Prescription{
				{ID: "svc", Name: "Svc", SubDPs: SubDPList{
					{Name: "setup", Kind: KindSpecification, Steps: []string{"x"}, DependsOn: []string{"missing"}},
				}},
			},
			want: `references unknown sibling "missing"`,
		},
		{
			name: "unknown cross reference",
			records: []Prescription{
				{ID: "svc", Name: "Svc", SubDPs: SubDPList{
					{Name: "setup", Kind: KindSpecification, Steps: []string{"x"}, DependsOn: []string{"other:sub"}},
				}},
			},
			want: `references unknown prescription "other"`,
		},
		{
			name: "unknown subdp kind",
			records: []Prescription{
				{ID: "svc", Name: "Svc", SubDPs: SubDPList{
					{Name: "setup", Kind: "mystery"},
				}},
			},
			want: `unknown kind "mystery"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.records)
			if result.Valid {
				t.Fatal("Validate() valid = true, want false")
			}
			if !containsSubstring(result.Errors, tt.want) {
				t.Errorf("errors %v should contain %q", result.Errors, tt.want)
			}
		})
	}
}

func TestValidateCrossReferenceResolves(t *testing.T) {
	records := []Prescription{
		{ID: "db", Name: "Database", SubDPs: SubDPList{
			{Name: "schema", Kind: KindSpecification, Steps: []string{"migrate"}},
		}},
		{ID: "api", Name: "API", SubDPs: SubDPList{
			{Name: "handlers", Kind: KindSpecification, Steps: []string{"write"}, DependsOn: []string{"db:schema"}},
		}},
	}

	result := Validate(records)
	if !result.Valid {
		t.Fatalf("Validate() errors = %v, want none", result.Errors)
	}
}

func TestValidateWarnings(t *testing.T) {
	records := []Prescription{
		{ID: "BadName", Name: "Bad"},
		{ID: "svc", Name: "Svc", SubDPs: SubDPList{
			{Name: "stepless", Kind: KindSpecification},
			{Name: "untagged", Kind: KindDependency},
		}},
	}

	result := Validate(records)
	if !result.Valid {
		t.Fatalf("warnings must not block validation, got errors %v", result.Errors)
	}
	if len(result.Warnings) != 3 {
		t.Fatalf("Validate() warnings = %v, want 3", result.Warnings)
	}
	if !containsSubstring(result.Warnings, "naming convention") {
		t.Errorf("expected naming convention warning, got %v", result.Warnings)
	}
	if !containsSubstring(result.Warnings, "without workflow steps") {
		t.Errorf("expected specification warning, got %v", result.Warnings)
	}
	if !containsSubstring(result.Warnings, "without a requirement tag") {
		t.Errorf("expected dependency warning, got %v", result.Warnings)
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

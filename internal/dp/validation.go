package dp

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationResult collects structural errors and advisory warnings from a
// validation pass. Errors block compilation; warnings never do.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// idPattern is the expected naming convention for prescription identifiers:
// lowercase, starting with a letter, hyphens and underscores allowed.
// Violations are advisory only.
var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Validate checks a set of prescriptions for structural problems:
// unresolvable dependency identifiers, duplicate display names, duplicate
// sub-prescription names, and dangling sub-prescription references.
// Advisory findings (identifier naming, missing companion fields) land in
// Warnings.
func Validate(records []Prescription) ValidationResult {
	result := ValidationResult{}

	byID := make(map[string]*Prescription, len(records))
	for i := range records {
		rec := &records[i]
		if _, dup := byID[rec.ID]; dup {
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate prescription identifier %q", rec.ID))
			continue
		}
		byID[rec.ID] = rec
	}

	seenNames := make(map[string]string, len(records))
	for i := range records {
		rec := &records[i]

		if prev, dup := seenNames[rec.Name]; dup {
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate display name %q shared by %q and %q", rec.Name, prev, rec.ID))
		} else {
			seenNames[rec.Name] = rec.ID
		}

		if !idPattern.MatchString(rec.ID) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("identifier %q does not match naming convention %s", rec.ID, idPattern.String()))
		}

		for _, dep := range rec.DependsOn {
			if _, ok := byID[dep]; !ok {
				result.Errors = append(result.Errors,
					fmt.Sprintf("prescription %q depends on unknown prescription %q", rec.ID, dep))
			}
		}

		validateSubDPs(rec, byID, &result)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func validateSubDPs(rec *Prescription, byID map[string]*Prescription, result *ValidationResult) {
	seen := make(map[string]bool, len(rec.SubDPs))
	for _, sub := range rec.SubDPs {
		if seen[sub.Name] {
			result.Errors = append(result.Errors,
				fmt.Sprintf("prescription %q has duplicate subdp name %q", rec.ID, sub.Name))
			continue
		}
		seen[sub.Name] = true

		switch sub.Kind {
		case KindSpecification:
			if len(sub.Steps) == 0 {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("subdp %q of %q is a specification without workflow steps", sub.Name, rec.ID))
			}
		case KindDependency:
			if sub.Requirement == "" {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("subdp %q of %q is a dependency without a requirement tag", sub.Name, rec.ID))
			}
		default:
			result.Errors = append(result.Errors,
				fmt.Sprintf("subdp %q of %q has unknown kind %q", sub.Name, rec.ID, sub.Kind))
		}
	}

	// Reference checks run after the name set is complete so forward sibling
	// references within one prescription resolve.
	for _, sub := range rec.SubDPs {
		for _, ref := range sub.DependsOn {
			if err := checkSubRef(rec, sub.Name, ref, seen, byID); err != "" {
				result.Errors = append(result.Errors, err)
			}
		}
	}
}

// checkSubRef resolves one sub-prescription dependency reference: either a
// sibling name or "<prescription-id>:<sub-name>". Returns an empty string
// when the reference resolves.
func checkSubRef(rec *Prescription, subName, ref string, siblings map[string]bool, byID map[string]*Prescription) string {
	if parent, target, isCross := strings.Cut(ref, ":"); isCross {
		other, ok := byID[parent]
		if !ok {
			return fmt.Sprintf("subdp %q of %q references unknown prescription %q", subName, rec.ID, parent)
		}
		if _, ok := other.SubDPs.ByName(target); !ok {
			return fmt.Sprintf("subdp %q of %q references unknown subdp %q of %q", subName, rec.ID, target, parent)
		}
		return ""
	}

	if !siblings[ref] {
		return fmt.Sprintf("subdp %q of %q references unknown sibling %q", subName, rec.ID, ref)
	}
	return ""
}

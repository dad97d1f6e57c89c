package project

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/freshmaven/cli/internal/errors"
)

// Messages printed for missing mandatory fields.
const (
	MsgGroupIDMandatory    = "Group id is mandatory."
	MsgArtifactIDMandatory = "Artifact id is mandatory."
)

// mavenIDRegex matches the characters Maven accepts in groupId and artifactId.
var mavenIDRegex = regexp.MustCompile(`^[A-Za-z0-9_\-.]+$`)

// javaPackageRegex matches a dotted Java package name.
var javaPackageRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)

// ValidateRequired checks the fields that must be given outside interactive
// mode. The first missing field is reported.
func ValidateRequired(groupID, artifactID string) error {
	if strings.TrimSpace(groupID) == "" {
		return oerrors.NewValidationError(MsgGroupIDMandatory, "")
	}
	if strings.TrimSpace(artifactID) == "" {
		return oerrors.NewValidationError(MsgArtifactIDMandatory, "")
	}
	return nil
}

// Validate checks the format of the identifiers in p.
func (p Parameters) Validate() error {
	if err := ValidateRequired(p.GroupID, p.ArtifactID); err != nil {
		return err
	}
	if !mavenIDRegex.MatchString(p.GroupID) {
		return oerrors.NewValidationError(
			fmt.Sprintf("Group id '%s' contains illegal characters.", p.GroupID),
			"use letters, digits, '.', '-' and '_'",
		)
	}
	if !mavenIDRegex.MatchString(p.ArtifactID) {
		return oerrors.NewValidationError(
			fmt.Sprintf("Artifact id '%s' contains illegal characters.", p.ArtifactID),
			"use letters, digits, '.', '-' and '_'",
		)
	}
	if name := p.ProjectName; name != "" && strings.ContainsAny(name, `/\`) {
		return oerrors.NewValidationError(
			fmt.Sprintf("Project name '%s' must not contain path separators.", name),
			"",
		)
	}
	if p.PackageName != "" && !javaPackageRegex.MatchString(p.PackageName) {
		return oerrors.NewValidationError(
			fmt.Sprintf("Package name '%s' is not a valid Java package name.", p.PackageName),
			"use dot separated identifiers, e.g. com.example.demo",
		)
	}
	return nil
}

// IsValidPackageName reports whether name is a dotted Java package name.
func IsValidPackageName(name string) bool {
	return javaPackageRegex.MatchString(name)
}

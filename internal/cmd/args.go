package cmd

import "strings"

// versionShortFlag is the two-letter short form of --versionOfProject.
// pflag only accepts single-letter shorthands, so it is rewritten before parsing.
const versionShortFlag = "-vp"

// NormalizeArgs rewrites -vp and -vp=<value> to their long form.
// Arguments after "--" are left untouched.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		switch {
		case arg == versionShortFlag:
			out = append(out, "--"+flagVersionOfProject)
		case strings.HasPrefix(arg, versionShortFlag+"="):
			out = append(out, "--"+flagVersionOfProject+"="+strings.TrimPrefix(arg, versionShortFlag+"="))
		default:
			out = append(out, arg)
		}
	}
	return out
}

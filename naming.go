package authreq

import (
	"path/filepath"
	"strings"
)

var unsafeChars = strings.NewReplacer(
	`\`, "", "/", "", "*", "", "?", "", ":", "", `"`, "", "<", "", ">", "", "|", "",
)

// Sanitize makes s usable as a file name component.
func Sanitize(s string) string {
	s = unsafeChars.Replace(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

func FileName(req Request) string {
	return fileStem(req) + ".pdf"
}

// PlanFileName is FileName with the plan appended, for patients with
// documents under more than one plan.
func PlanFileName(req Request) string {
	return fileStem(req) + "_" + Sanitize(req.Plan) + ".pdf"
}

func fileStem(req Request) string {
	if req.Kind == ABA {
		return Sanitize(req.Patient) + "_TERAPIA_ABA"
	}
	return Sanitize(req.Patient) + "_" + Sanitize(req.Label) + "_TIPICO"
}

// OutputPath places the document in a folder per branch below dir.
func OutputPath(dir string, req Request) string {
	return filepath.Join(branchDir(dir, req), FileName(req))
}

// PlanOutputPath is OutputPath using PlanFileName.
func PlanOutputPath(dir string, req Request) string {
	return filepath.Join(branchDir(dir, req), PlanFileName(req))
}

func branchDir(dir string, req Request) string {
	branch := unsafeChars.Replace(strings.TrimSpace(req.Branch))
	if branch == "" || branch == "." || branch == ".." {
		branch = DefaultBranch
	}
	return filepath.Join(dir, branch)
}

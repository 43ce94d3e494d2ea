package extract

import "strings"

// canonicalNames maps lower-cased skill variants to their canonical display
// form. The table is data: extend it rather than special-casing callers.
var canonicalNames = map[string]string{
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"next.js":    "Next.js",
	"nextjs":     "Next.js",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"postgresql": "PostgreSQL",
	"mongodb":    "MongoDB",
	"mysql":      "MySQL",
	"aws":        "AWS",
	"gcp":        "GCP",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
}

// NormalizeSkillName collapses internal whitespace and maps known variants
// to their canonical display form. Already-canonical names pass through
// unchanged, so the function is idempotent.
func NormalizeSkillName(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	if canonical, ok := canonicalNames[strings.ToLower(collapsed)]; ok {
		return canonical
	}
	return collapsed
}

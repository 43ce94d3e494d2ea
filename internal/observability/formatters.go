// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-skills-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentAnalysis outputs a human-readable summary of one document's skills.
func (p *Printer) PrintDocumentAnalysis(analysis *types.DocumentAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills found: %d\n", analysis.TotalSkillsFound))
	if analysis.Error != "" {
		sb.WriteString(fmt.Sprintf("Error: %s\n", analysis.Error))
	}
	sb.WriteString("\n")

	count := min(len(analysis.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := analysis.Skills[i]
		sb.WriteString(fmt.Sprintf("  %-24s x%-3d %.2f  %s\n",
			skill.Name, skill.Count, skill.Confidence, skill.Category))
	}
	if len(analysis.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Skills)-maxItemsToShow))
	}

	p.printBox("DOCUMENT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchReport outputs the cross-document ranking for a batch.
func (p *Printer) PrintBatchReport(batch *types.BatchAnalysis) {
	if batch == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Documents analyzed: %d\n", batch.TotalJobs))
	sb.WriteString(fmt.Sprintf("Distinct skills:    %d\n", len(batch.AggregatedSkills)))
	sb.WriteString("\n")

	if len(batch.TopSkills) > 0 {
		sb.WriteString("Top skills:\n")
		count := min(len(batch.TopSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := batch.TopSkills[i]
			sb.WriteString(fmt.Sprintf("  #%-2d %-20s %5.1f%%  in %d/%d jobs\n",
				i+1, skill.Name, skill.Percentage, skill.AppearedInJobs, batch.TotalJobs))
		}
		if len(batch.TopSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(batch.TopSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(batch.CategoryBreakdown) > 0 {
		sb.WriteString("Categories:\n")
		seen := make(map[string]bool)
		// Iterate skills to keep category output in ranking order.
		for _, skill := range batch.AggregatedSkills {
			if seen[skill.Category] {
				continue
			}
			seen[skill.Category] = true
			sb.WriteString(fmt.Sprintf("  %-24s %d\n",
				skill.Category, batch.CategoryBreakdown[skill.Category]))
		}
	}

	p.printBox("BATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

package prompt

import (
	"fmt"
	"strings"
)

// PlagiarismScan renders the internet-scan instruction. The request
// that carries it must enable the web-search tool.
func PlagiarismScan(text string) string {
	var b strings.Builder
	b.WriteString("Analyze the following text for plagiarism.\n\n")
	fmt.Fprintf(&b, "Text to analyze:\n\"%s\"\n\n", text)
	b.WriteString("Tasks:\n")
	b.WriteString("1. Search the internet to see if this text or significant parts of it appear online.\n")
	b.WriteString("2. Provide a \"Plagiarism Risk Score\" (Low, Medium, High) based on how much content matches online sources.\n")
	b.WriteString("3. Briefly summarize the findings.\n")
	b.WriteString("4. If the text seems original, explicitly state that.\n")
	return b.String()
}

// CompareSubmissions renders the peer-comparison instruction.
func CompareSubmissions(a, b string) string {
	var buf strings.Builder
	buf.WriteString("Compare the following two student submissions for plagiarism or excessive collaboration.\n\n")
	fmt.Fprintf(&buf, "Student A Submission:\n%s\n\n", a)
	fmt.Fprintf(&buf, "Student B Submission:\n%s\n\n", b)
	buf.WriteString("Task:\n")
	buf.WriteString("1. Identify similarities in phrasing, structure, and specific errors.\n")
	buf.WriteString("2. Determine a \"Similarity Score\" (0-100%).\n")
	buf.WriteString("3. Conclude whether this looks like independent work, collaboration, or direct copying.\n\n")
	buf.WriteString("Output in Markdown.\n")
	return buf.String()
}

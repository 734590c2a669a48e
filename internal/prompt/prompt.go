// Package prompt holds the study-summary instructions sent to the model.
package prompt

const preamble = "You are a knowledgeable and precise educational AI. A technical YouTube transcript is provided.\n\n" +
	"Your job is to generate a well-structured, human-friendly enriched summary in **Markdown** with clean **LaTeX** math formatting.\n\n" +
	"**Output Structure:**\n" +
	"### 1. Overview\n" +
	"- List all key topics discussed in bullet points.\n\n" +
	"### 2. Detailed Explanation\n" +
	"- For each topic:\n" +
	"  - Use proper headings and subheadings.\n" +
	"  - Define key terms and formulas.\n" +
	"  - Show clean math using `$$...$$` (not inline `$...$` unless very short).\n" +
	"  - Use clean matrix formatting. For example:\n" +
	"    $$\n" +
	"    \\begin{bmatrix} a & b \\\\ c & d \\end{bmatrix}\n" +
	"    $$\n" +
	"  - Provide full and readable examples.\n" +
	"  - Avoid messy LaTeX or line-breaking errors.\n\n" +
	"### 3. Extra Notes\n" +
	"- Include assumptions, tips, and real-world links.\n\n" +
	"Here is the full transcript:\n"

const closing = "\n\nNow generate the structured enriched summary as described."

// Build wraps transcript in the fixed instructions. Only the transcript varies between calls.
func Build(transcript string) string {
	return preamble + transcript + closing
}

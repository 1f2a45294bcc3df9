package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Darin2/monitor-public/internal/audit"
	"github.com/Darin2/monitor-public/internal/config"
	"github.com/Darin2/monitor-public/internal/output"
	"github.com/Darin2/monitor-public/jsonld"
	"github.com/Darin2/monitor-public/templates"
)

const scriptOpen = `<script type="application/ld+json">`

const schemasYAML = `
schemas:
  - type: faq
    items:
      - question: What is AIEO?
        answer: AI engine optimization.
      - question: Unanswered?
  - type: organization
    name: My Company
    url: https://mycompany.com
`

// parseBlock unwraps a single script block and returns its entities.
func parseBlock(block string) []jsonld.Document {
	block = strings.TrimSpace(block)
	ExpectWithOffset(1, block).To(HavePrefix(scriptOpen))
	body := strings.TrimSuffix(strings.TrimPrefix(block, scriptOpen), "</script>")
	docs, err := jsonld.Parse(body)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return docs
}

var _ = Describe("Commands", func() {
	var (
		tmpDir  string
		logFile string
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		logFile = filepath.Join(tmpDir, "aieo.log")
		GinkgoT().Setenv(config.FormatEnv, "")
	})

	writeFile := func(name, content string) string {
		path := filepath.Join(tmpDir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Describe("generate", func() {
		var schemasFile string

		BeforeEach(func() {
			schemasFile = writeFile("schemas.yaml", schemasYAML)
		})

		It("should print one block per entry and summarize skipped items", func() {
			stdout, stderr, err := execute("generate", "--file", schemasFile, "--log", logFile)

			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(stdout, scriptOpen)).To(Equal(2))
			Expect(stdout).To(ContainSubstring(`"name": "What is AIEO?"`))
			Expect(stdout).NotTo(ContainSubstring("Unanswered?"))

			Expect(stderr).To(ContainSubstring("Generated 2 schema blocks"))
			Expect(stderr).To(ContainSubstring("Skipped in entry 0: mainEntity[1]: missing answer"))

			logged, err := os.ReadFile(logFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(logged)).To(ContainSubstring("Entry 0 (faq): skipped mainEntity[1]: missing answer"))
		})

		It("should write a single combined block to a file", func() {
			outFile := filepath.Join(tmpDir, "schema.html")

			stdout, stderr, err := execute("generate", "--file", schemasFile, "--combine", "--out", outFile, "--log", logFile)

			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(BeEmpty())
			Expect(stderr).To(ContainSubstring("Entries combined into a single block"))
			Expect(stderr).To(ContainSubstring("Written to " + outFile))

			content, err := os.ReadFile(outFile)
			Expect(err).NotTo(HaveOccurred())
			docs := parseBlock(string(content))
			Expect(docs).To(HaveLen(2))
			Expect(docs[0].Type()).To(Equal("FAQPage"))
			Expect(docs[1].Type()).To(Equal("Organization"))
		})

		It("should combine when the schemas file asks for it", func() {
			schemasFile = writeFile("combined.yaml", "combine: true\n"+schemasYAML)

			stdout, _, err := execute("generate", "--file", schemasFile, "--log", logFile)

			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(stdout, scriptOpen)).To(Equal(1))
			Expect(parseBlock(stdout)).To(HaveLen(2))
		})

		It("should print a json summary", func() {
			_, stderr, err := execute("generate", "--file", schemasFile, "--format", "json", "--log", logFile)

			Expect(err).NotTo(HaveOccurred())
			var summary output.GenerateSummary
			Expect(json.Unmarshal([]byte(stderr), &summary)).To(Succeed())
			Expect(summary.Source).To(Equal(schemasFile))
			Expect(summary.Blocks).To(Equal(2))
			Expect(summary.Entries).To(HaveLen(2))
			Expect(summary.Entries[0].Type).To(Equal("FAQPage"))
			Expect(summary.Entries[0].Skipped).To(Equal([]string{"mainEntity[1]: missing answer"}))
			Expect(summary.Entries[1].Kind).To(Equal("organization"))
		})

		It("should take the summary format from the environment", func() {
			GinkgoT().Setenv(config.FormatEnv, "json")

			_, stderr, err := execute("generate", "--file", schemasFile, "--log", logFile)

			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(stderr)).To(HavePrefix("{"))
		})

		It("should require the file flag", func() {
			_, _, err := execute("generate", "--log", logFile)
			Expect(err).To(MatchError(ContainSubstring(`required flag(s) "file" not set`)))
		})

		It("should reject an unsupported format", func() {
			_, _, err := execute("generate", "--file", schemasFile, "--format", "csv", "--log", logFile)
			Expect(err).To(MatchError("invalid flags: csv output is only supported by audit"))
		})

		It("should reject an unknown format taken from the environment", func() {
			GinkgoT().Setenv(config.FormatEnv, "XML")

			_, _, err := execute("generate", "--file", schemasFile, "--log", logFile)
			Expect(err).To(MatchError(`invalid flags: invalid output format "xml": must be text, json, or csv`))
		})

		It("should fail on a schemas file without entries", func() {
			empty := writeFile("empty.json", `{"schemas": []}`)
			_, _, err := execute("generate", "--file", empty, "--log", logFile)
			Expect(err).To(MatchError(ContainSubstring("no schemas defined in")))
		})

		It("should report load errors", func() {
			broken := writeFile("broken.json", `{"schemas": [{"type": "recipe"}]}`)
			_, _, err := execute("generate", "--file", broken, "--log", logFile)
			Expect(err).To(MatchError(ContainSubstring("failed to load schemas")))
			Expect(err).To(MatchError(ContainSubstring(`unknown schema type "recipe"`)))
		})
	})

	Describe("combine", func() {
		It("should flatten blocks from every file in order", func() {
			stdout, stderr, err := execute("combine", filepath.Join("testdata", "blocks.html"), filepath.Join("testdata", "article.json"))

			Expect(err).NotTo(HaveOccurred())
			docs := parseBlock(stdout)
			Expect(docs).To(HaveLen(4))
			types := make([]string, 0, len(docs))
			for _, d := range docs {
				types = append(types, d.Type())
			}
			Expect(types).To(Equal([]string{"FAQPage", "Organization", "Person", "Article"}))
			Expect(stderr).To(ContainSubstring("Warning: skipping block 3 of testdata/blocks.html"))
		})

		It("should write to a file", func() {
			outFile := filepath.Join(tmpDir, "combined.html")

			stdout, stderr, err := execute("combine", filepath.Join("testdata", "article.json"), "--out", outFile)

			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(BeEmpty())
			Expect(stderr).To(ContainSubstring("Combined 1 entities into " + outFile))
			content, err := os.ReadFile(outFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(parseBlock(string(content))).To(HaveLen(1))
		})

		It("should print nothing when no input parses", func() {
			notJSON := writeFile("notes.txt", "not json")

			stdout, stderr, err := execute("combine", notJSON)

			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(BeEmpty())
			Expect(stderr).To(ContainSubstring("no structured data found"))
		})

		It("should fail on a missing file", func() {
			_, _, err := execute("combine", filepath.Join(tmpDir, "missing.html"))
			Expect(err).To(MatchError(ContainSubstring("failed to read")))
		})

		It("should require at least one file", func() {
			_, _, err := execute("combine")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("audit", func() {
		good := filepath.Join("testdata", "good.html")
		bad := filepath.Join("testdata", "bad.html")

		It("should pass a page that follows every recommendation", func() {
			stdout, _, err := execute("audit", good, "--log", logFile)

			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(ContainSubstring("Target: " + good))
			Expect(stdout).To(ContainSubstring("Overall Score: 14/14 (100%)"))
			Expect(stdout).NotTo(ContainSubstring("Total targets"))
		})

		It("should fail when any target fails and print a summary table", func() {
			stdout, _, err := execute("audit", good, bad, "--concurrency", "2", "--log", logFile)

			Expect(err).To(MatchError("1 of 2 targets failed the audit"))
			Expect(strings.Count(stdout, "AIEO Audit Report")).To(Equal(2))
			Expect(stdout).To(ContainSubstring("Total targets: 2"))
		})

		It("should print csv rows", func() {
			stdout, _, err := execute("audit", bad, "--format", "csv", "--log", logFile)

			Expect(err).To(HaveOccurred())
			lines := strings.Split(strings.TrimSpace(stdout), "\n")
			Expect(lines[0]).To(Equal("target,score,status,message"))
			Expect(lines).To(ContainElement(bad + ",0.0,failed,No JSON-LD schema found"))
		})

		It("should report unreadable targets", func() {
			stdout, _, err := execute("audit", filepath.Join(tmpDir, "missing.html"), "--format", "json", "--log", logFile)

			Expect(err).To(MatchError("1 of 1 targets failed the audit"))
			Expect(stdout).To(ContainSubstring("failed to read file"))
		})

		It("should validate flags", func() {
			_, _, err := execute("audit", good, "--concurrency", "0", "--log", logFile)
			Expect(err).To(MatchError("invalid flags: concurrency must be greater than 0"))
		})

		It("should reject an unknown format", func() {
			stdout, _, err := execute("audit", good, "--format", "table", "--log", logFile)
			Expect(err).To(MatchError(`invalid flags: invalid output format "table": must be text, json, or csv`))
			Expect(stdout).To(BeEmpty())
		})

		It("should take the report format from the environment", func() {
			GinkgoT().Setenv(config.FormatEnv, "json")

			stdout, _, err := execute("audit", good, "--log", logFile)

			Expect(err).NotTo(HaveOccurred())
			var reports []audit.PageReport
			Expect(json.Unmarshal([]byte(stdout), &reports)).To(Succeed())
			Expect(reports).To(HaveLen(1))
			Expect(reports[0].Score).To(Equal(100.0))
		})
	})

	Describe("init", func() {
		It("should print the starter descriptor", func() {
			stdout, _, err := execute("init", "--type", "FAQPage")

			Expect(err).NotTo(HaveOccurred())
			starter, err := templates.Starter("faq")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(Equal(string(starter)))
		})

		It("should write a file that generate accepts", func() {
			path := filepath.Join(tmpDir, "howto.yaml")

			_, _, err := execute("init", "--type", "howto", "--out", path)
			Expect(err).NotTo(HaveOccurred())

			stdout, _, err := execute("generate", "--file", path, "--log", logFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(ContainSubstring(`"totalTime": "PT10M"`))
		})

		It("should not overwrite a file without force", func() {
			path := writeFile("person.yaml", "keep me")

			_, _, err := execute("init", "--type", "person", "--out", path)
			Expect(err).To(MatchError("refusing to overwrite " + path + ": use --force"))

			_, _, err = execute("init", "--type", "person", "--out", path, "--force")
			Expect(err).NotTo(HaveOccurred())
			content, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("type: person"))
		})

		It("should reject an unknown type", func() {
			_, _, err := execute("init", "--type", "recipe")
			Expect(err).To(MatchError(ContainSubstring(`unknown schema type "recipe"`)))
		})
	})
})

package config

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	validSchemasFile = "schemas.yaml"
	validLogFile     = "app.log"
	validTimeout     = 10 * time.Second

	errSchemasFileRequiredMsg = "schemas file is required: use --file flag"
	errConcurrencyMsg         = "concurrency must be greater than 0"
	errTimeoutMsg             = "timeout must be greater than 0"
	errLogFileMsg             = "log file must be specified"
	errTypeRequiredMsg        = "entity type is required: use --type flag"
)

var _ = Describe("ValidateGenerateFlags", func() {

	DescribeTable("flag validation scenarios",
		func(flags GenerateFlags, expectedErr string) {
			err := ValidateGenerateFlags(flags)

			if expectedErr != "" {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(Equal(expectedErr))
			} else {
				Expect(err).ToNot(HaveOccurred())
			}
		},

		// Valid cases
		Entry("text output to stdout",
			GenerateFlags{File: validSchemasFile, Format: "text", LogFile: validLogFile},
			"",
		),
		Entry("combined json output to a file",
			GenerateFlags{File: validSchemasFile, Format: "json", Combine: true, OutputFile: "page.html", LogFile: validLogFile},
			"",
		),
		// Error cases
		Entry("missing schemas file",
			GenerateFlags{Format: "text", LogFile: validLogFile},
			errSchemasFileRequiredMsg,
		),
		Entry("empty log file",
			GenerateFlags{File: validSchemasFile, Format: "text"},
			errLogFileMsg,
		),
	)
})

var _ = Describe("ValidateAuditFlags", func() {

	DescribeTable("flag validation scenarios",
		func(flags AuditFlags, expectedErr string) {
			err := ValidateAuditFlags(flags)

			if expectedErr != "" {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(Equal(expectedErr))
			} else {
				Expect(err).ToNot(HaveOccurred())
			}
		},

		Entry("text format",
			AuditFlags{Format: "text", Concurrency: 4, Timeout: validTimeout, LogFile: validLogFile},
			"",
		),
		Entry("csv format with a single worker",
			AuditFlags{Format: "csv", Concurrency: 1, Timeout: validTimeout, LogFile: validLogFile},
			"",
		),
		Entry("zero concurrency",
			AuditFlags{Format: "json", Concurrency: 0, Timeout: validTimeout, LogFile: validLogFile},
			errConcurrencyMsg,
		),
		Entry("negative concurrency",
			AuditFlags{Format: "json", Concurrency: -2, Timeout: validTimeout, LogFile: validLogFile},
			errConcurrencyMsg,
		),
		Entry("zero timeout",
			AuditFlags{Format: "json", Concurrency: 4, LogFile: validLogFile},
			errTimeoutMsg,
		),
		Entry("empty log file",
			AuditFlags{Format: "json", Concurrency: 4, Timeout: validTimeout},
			errLogFileMsg,
		),
	)
})

var _ = Describe("ValidateInitFlags", func() {
	It("should accept every known kind", func() {
		for _, kind := range Kinds() {
			Expect(ValidateInitFlags(InitFlags{Type: string(kind)})).To(Succeed())
		}
	})

	It("should require a type", func() {
		err := ValidateInitFlags(InitFlags{})
		Expect(err).To(MatchError(errTypeRequiredMsg))
	})

	It("should reject an unknown type", func() {
		err := ValidateInitFlags(InitFlags{Type: "recipe"})
		Expect(err).To(MatchError(ContainSubstring(`unknown schema type "recipe"`)))
	})
})

var _ = Describe("ResolveFormat", func() {
	BeforeEach(func() {
		GinkgoT().Setenv(FormatEnv, "")
	})

	It("should prefer the flag value", func() {
		GinkgoT().Setenv(FormatEnv, "csv")
		Expect(ResolveFormat("json")).To(Equal("json"))
	})

	It("should fall back to the environment", func() {
		GinkgoT().Setenv(FormatEnv, "CSV")
		Expect(ResolveFormat("")).To(Equal("csv"))
	})

	It("should lowercase the value", func() {
		Expect(ResolveFormat("JSON")).To(Equal("json"))
	})

	It("should default to text", func() {
		Expect(ResolveFormat("")).To(Equal("text"))
	})
})

var _ = Describe("ParseKind", func() {
	DescribeTable("accepted names",
		func(name string, expected Kind) {
			kind, err := ParseKind(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(kind).To(Equal(expected))
		},
		Entry("faq", "faq", KindFAQ),
		Entry("schema.org FAQ name", "FAQPage", KindFAQ),
		Entry("mixed case", "HowTo", KindHowTo),
		Entry("schema.org application name", "SoftwareApplication", KindProduct),
		Entry("padded", " person ", KindPerson),
	)

	It("should require a name", func() {
		_, err := ParseKind("")
		Expect(err).To(MatchError("schema type is required"))
	})
})

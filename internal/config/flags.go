package config

import (
	"fmt"
	"os"
	"strings"
)

// FormatEnv supplies the output format when no --format flag is given.
const FormatEnv = "AIEO_OUTPUT_FORMAT"

const defaultFormat = "text"

// ResolveFormat picks the output format: the flag value first, then the
// AIEO_OUTPUT_FORMAT environment variable, then text. The result is parsed by
// the output package.
func ResolveFormat(flagValue string) string {
	format := flagValue
	if format == "" {
		format = os.Getenv(FormatEnv)
	}
	if format == "" {
		format = defaultFormat
	}
	return strings.ToLower(format)
}

// ValidateGenerateFlags ensures the generate command received a usable combination of flags
func ValidateGenerateFlags(flags GenerateFlags) error {
	if flags.File == "" {
		return fmt.Errorf("schemas file is required: use --file flag")
	}

	if flags.LogFile == "" {
		return fmt.Errorf("log file must be specified")
	}

	return nil
}

// ValidateAuditFlags ensures the audit command received a usable combination of flags
func ValidateAuditFlags(flags AuditFlags) error {
	if flags.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be greater than 0")
	}

	if flags.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than 0")
	}

	if flags.LogFile == "" {
		return fmt.Errorf("log file must be specified")
	}

	if flags.InsecureTLS {
		fmt.Fprintln(os.Stderr, "WARNING: TLS certificate verification is disabled. Use only against sites you trust.")
	}

	return nil
}

// ValidateInitFlags ensures the init command names a known entity type
func ValidateInitFlags(flags InitFlags) error {
	if flags.Type == "" {
		return fmt.Errorf("entity type is required: use --type flag")
	}

	if _, err := ParseKind(flags.Type); err != nil {
		return err
	}

	return nil
}

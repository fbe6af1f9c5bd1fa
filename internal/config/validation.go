package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// SupportedDialects lists the source dialects tablestats can query.
var SupportedDialects = []string{"bigquery", "mysql", "postgres", "sqlserver", "sqlite"}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if err := c.validateSource(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateReport(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateSource() ValidationErrors {
	var errors ValidationErrors
	src := &c.Source

	known := false
	for _, d := range SupportedDialects {
		if src.Dialect == d {
			known = true
			break
		}
	}
	if !known {
		errors = append(errors, ValidationError{
			Field:   "source.dialect",
			Message: fmt.Sprintf("dialect must be one of %s", strings.Join(SupportedDialects, ", ")),
		})
		return errors
	}

	switch src.Dialect {
	case "bigquery":
		// Project may be empty: the client then detects it from the credentials.
		return errors
	case "sqlite":
		if src.DSN == "" && src.Database == "" {
			errors = append(errors, ValidationError{
				Field:   "source.database",
				Message: "database file path (or dsn) is required for sqlite",
			})
		}
		return errors
	}

	if src.DSN != "" {
		return errors
	}

	if src.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "source.host",
			Message: "host is required",
		})
	}

	if src.Port <= 0 || src.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "source.port",
			Message: "port must be between 1 and 65535",
		})
	}

	if src.User == "" {
		errors = append(errors, ValidationError{
			Field:   "source.user",
			Message: "user is required",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[src.TLS] {
		errors = append(errors, ValidationError{
			Field:   "source.tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if src.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   "source.max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateReport() ValidationErrors {
	var errors ValidationErrors

	if c.Report.TopValues <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.top_values",
			Message: "top_values must be positive",
		})
	}

	if c.Report.MaxLabelLength <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.max_label_length",
			Message: "max_label_length must be positive",
		})
	}

	if c.Report.ChartWidth <= 0 || c.Report.ChartHeight <= 0 {
		errors = append(errors, ValidationError{
			Field:   "report.chart_width",
			Message: "chart_width and chart_height must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}

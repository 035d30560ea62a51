package config

import (
	"fmt"
)

type InvalidYAMLError struct {
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("fwtool.yml is not a valid yaml document: %v", e.Wrapped)
}

type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("fwtool.yml is missing required property: %s", e.Property)
}

type InvalidSuffixError struct {
	Suffix string
}

func (e *InvalidSuffixError) Error() string {
	return fmt.Sprintf("fwtool.yml sourceSuffixes entry '%s' must be a bare extension without '.'", e.Suffix)
}

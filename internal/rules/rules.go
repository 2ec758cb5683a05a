// Package rules pulls in every built-in rule package for its registration
// side effects. Importers get the full rule set with one blank import.
package rules

import (
	_ "github.com/phobologic/widgetlint/internal/rules/access"
	_ "github.com/phobologic/widgetlint/internal/rules/layout"
	_ "github.com/phobologic/widgetlint/internal/rules/style"
)

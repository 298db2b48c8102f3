// Package database provides the SQLite-backed study progress store.
package database

import "time"

// Module identifies one of the calendar-system study modules the site
// teaches.
type Module string

const (
	ModuleGregorian Module = "gregorian"
	ModuleJulian    Module = "julian"
	ModuleHebrew    Module = "hebrew"
	ModuleIslamic   Module = "islamic"
	ModuleHindu     Module = "hindu"
	ModuleMaya      Module = "maya"
)

// ValidModules returns all study modules in course order.
func ValidModules() []Module {
	return []Module{
		ModuleGregorian,
		ModuleJulian,
		ModuleHebrew,
		ModuleIslamic,
		ModuleHindu,
		ModuleMaya,
	}
}

// IsValid checks if a module name is one of the known study modules.
func (m Module) IsValid() bool {
	for _, valid := range ValidModules() {
		if m == valid {
			return true
		}
	}
	return false
}

// StudyProgress records a user's completion of one study module.
// A user completes each module at most once; repeat completions are
// rejected with ErrDuplicate.
type StudyProgress struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Module      Module    `json:"module"`
	Notes       *string   `json:"notes"` // nullable
	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProgressStats summarizes a user's progress through the course.
type ProgressStats struct {
	TotalModules      int     `json:"total_modules"`
	CompletedModules  int     `json:"completed_modules"`
	CompletionPercent float64 `json:"completion_percent"`
}

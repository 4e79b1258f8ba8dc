package models

// StudentStatus represents the enrollment state of a student record.
type StudentStatus string

const (
	StatusActive    StudentStatus = "active"
	StatusInactive  StudentStatus = "inactive"
	StatusGraduated StudentStatus = "graduated"
	StatusSuspended StudentStatus = "suspended"
)

// StudentStatuses lists every valid student status, in display order.
var StudentStatuses = []StudentStatus{
	StatusActive,
	StatusInactive,
	StatusGraduated,
	StatusSuspended,
}

// IsValid reports whether the status is one of the known values.
func (s StudentStatus) IsValid() bool {
	for _, known := range StudentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Majors is the enumerated list of majors a student can be registered under.
var Majors = []string{
	"Computer Science",
	"Information Technology",
	"Software Engineering",
	"Information Systems",
	"Cybersecurity",
	"Data Science",
	"Business Administration",
}

// IsKnownMajor reports whether major is one of the enumerated majors.
func IsKnownMajor(major string) bool {
	for _, m := range Majors {
		if m == major {
			return true
		}
	}
	return false
}

// DateLayout is the calendar date format used by enrollment and grade dates.
const DateLayout = "2006-01-02"

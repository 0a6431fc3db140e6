package vo

type ValidationLevel string

const (
	ValidationLevelError   ValidationLevel = "error"
	ValidationLevelWarning ValidationLevel = "warning"
	ValidationLevelInfo    ValidationLevel = "info"
)

// Validation is a finding about one document of a location
type Validation struct {
	Level   ValidationLevel
	Message string
	// Location the finding belongs to, including a #n suffix for
	// documents embedded in html
	Location string
}

type Validations []Validation

func (v *Validations) add(level ValidationLevel, location, msg string) {
	*v = append(*v, Validation{Level: level, Location: location, Message: msg})
}

func (v *Validations) Error(location, msg string) {
	v.add(ValidationLevelError, location, msg)
}

func (v *Validations) Warning(location, msg string) {
	v.add(ValidationLevelWarning, location, msg)
}

func (v *Validations) Info(location, msg string) {
	v.add(ValidationLevelInfo, location, msg)
}

// Location returns loggers bound to one location
func (v *Validations) Location(location string) (err func(msg string), warning func(msg string), info func(msg string)) {
	err = func(msg string) { v.Error(location, msg) }
	warning = func(msg string) { v.Warning(location, msg) }
	info = func(msg string) { v.Info(location, msg) }
	return
}

// Count validations of a level
func (v Validations) Count(level ValidationLevel) int {
	count := 0
	for _, validation := range v {
		if validation.Level == level {
			count++
		}
	}
	return count
}

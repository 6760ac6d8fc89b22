package command

import "github.com/sirupsen/logrus"

// OutputType is the severity of a prompt output message.
type OutputType int

const (
	OutputNone OutputType = iota
	OutputSuccess
	OutputWarning
	OutputFailure
	// OutputAction marks informational messages about performed actions
	// such as mode switches.
	OutputAction
)

// String returns the prefix rendered before the prompt message.
func (t OutputType) String() string {
	switch t {
	case OutputSuccess:
		return "(i) "
	case OutputWarning:
		return "(w) "
	case OutputFailure:
		return "(e) "
	default:
		return ""
	}
}

// OutputTypeFrom maps a severity token to an output type. Unknown
// tokens map to OutputNone.
func OutputTypeFrom(s string) OutputType {
	switch s {
	case "success":
		return OutputSuccess
	case "warning":
		return OutputWarning
	case "failure":
		return OutputFailure
	case "action":
		return OutputAction
	default:
		return OutputNone
	}
}

// LogLevel returns the logrus level prompt messages of this type are
// logged at.
func (t OutputType) LogLevel() logrus.Level {
	switch t {
	case OutputSuccess, OutputAction:
		return logrus.InfoLevel
	case OutputWarning:
		return logrus.WarnLevel
	case OutputFailure:
		return logrus.ErrorLevel
	default:
		return logrus.TraceLevel
	}
}

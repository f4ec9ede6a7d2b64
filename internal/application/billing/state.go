package billing

// Outcome resultado de una acción sobre facturas.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeValidationFailed
	OutcomeStorageFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeStorageFailed:
		return "storage_failed"
	default:
		return "unknown"
	}
}

// ActionState estado que se devuelve al formulario en cada envío.
// Errors solo viene con OutcomeValidationFailed; RedirectTo solo con OutcomeOK
// cuando la acción navega.
type ActionState struct {
	Outcome    Outcome     `json:"-"`
	Errors     FieldErrors `json:"errors,omitempty"`
	Message    string      `json:"message,omitempty"`
	RedirectTo string      `json:"-"`
}

// OK indica si la mutación se aplicó.
func (s ActionState) OK() bool { return s.Outcome == OutcomeOK }

func validationFailed(errs FieldErrors, msg string) ActionState {
	return ActionState{Outcome: OutcomeValidationFailed, Errors: errs, Message: msg}
}

func storageFailed(msg string) ActionState {
	return ActionState{Outcome: OutcomeStorageFailed, Message: msg}
}

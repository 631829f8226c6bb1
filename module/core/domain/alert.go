package domain

type AlertType string

const (
	AlertFuel  AlertType = "fuel"
	AlertRoute AlertType = "route"
	AlertTemp  AlertType = "temp"
)

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

type AlertStatus string

// AlertStatusNew is the only status this service ever writes; the
// acknowledgement lifecycle lives outside it.
const AlertStatusNew AlertStatus = "new"

// Alert is created by an evaluator and never mutated afterwards.
type Alert struct {
	VehicleID string
	Type      AlertType
	Severity  AlertSeverity
	Message   string
	Status    AlertStatus
}

func NewAlert(vehicleID string, t AlertType, severity AlertSeverity, message string) *Alert {
	return &Alert{
		VehicleID: vehicleID,
		Type:      t,
		Severity:  severity,
		Message:   message,
		Status:    AlertStatusNew,
	}
}

package services

// Event types published by the services for connected clients.
const (
	EventProductionDone   = "production_done"
	EventLowStock         = "low_stock"
	EventSaleRecorded     = "sale_recorded"
	EventScheduleReminder = "schedule_reminder"
)

// Publisher pushes domain events to whoever is listening (the websocket
// hub in production, a stub in tests). A nil Publisher is valid and
// drops everything.
type Publisher interface {
	Publish(eventType string, data interface{})
}

func publish(p Publisher, eventType string, data interface{}) {
	if p != nil {
		p.Publish(eventType, data)
	}
}

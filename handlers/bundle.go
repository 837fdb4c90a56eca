package handlers

// HandlerBundle aggregates all HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Slot         *SlotHandler
	Assignment   *AssignmentHandler
	Availability *AvailabilityHandler
	Wizard       *WizardHandler
}

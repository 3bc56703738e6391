package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// StatusResponse reports a slot's persisted reservation state, used by the
// payment collaborator to verify before and after a transition.
type StatusResponse struct {
	SlotID int    `json:"slot_id" example:"42"`
	Status string `json:"status" example:"pending"`
	Paid   bool   `json:"paid" example:"false"`
}

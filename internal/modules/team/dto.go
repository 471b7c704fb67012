package team

type JoinRequestBody struct {
	Message string `json:"message,omitempty"`
}

type ManageRequestBody struct {
	RequestID int64  `json:"request_id" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=accept reject"`
}
